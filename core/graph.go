package core

import (
	"fmt"
	"math/rand"
)

// Graph is an undirected simple graph over vertices 0..n-1.
//
// It owns two parallel structures: the edge slice (position = edge id)
// and the per-vertex incident edge-id lists. Both are sized once at
// construction; Graph itself is treated as immutable structure apart
// from incident-list reordering.
type Graph struct {
	n        int
	edges    []Edge
	incident [][]int // vertex index -> edge ids, insertion order
}

// NewGraph builds a graph with n vertices from the given endpoint
// pairs. Pairs are canonicalized so that the smaller index comes
// first; the pair's slice position becomes the edge index. Each edge
// is appended to both endpoints' incident lists, in input order.
//
// Returns ErrVertexRange, ErrSelfLoop or ErrParallelEdge on invalid
// input, with the offending pair attached.
//
// Complexity: O(n + m) time and space.
func NewGraph(n int, pairs [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrVertexRange)
	}

	g := &Graph{
		n:        n,
		edges:    make([]Edge, 0, len(pairs)),
		incident: make([][]int, n),
	}

	seen := make(map[Edge]struct{}, len(pairs))
	var u, v int
	for i, p := range pairs {
		u, v = p[0], p[1]
		if u > v {
			u, v = v, u
		}
		if u < 0 || v >= n {
			return nil, fmt.Errorf("edge %d = (%d,%d): %w", i, p[0], p[1], ErrVertexRange)
		}
		if u == v {
			return nil, fmt.Errorf("edge %d = (%d,%d): %w", i, p[0], p[1], ErrSelfLoop)
		}
		e := Edge{U: u, V: v}
		if _, dup := seen[e]; dup {
			return nil, fmt.Errorf("edge %d = (%d,%d): %w", i, p[0], p[1], ErrParallelEdge)
		}
		seen[e] = struct{}{}

		id := len(g.edges)
		g.edges = append(g.edges, e)
		g.incident[u] = append(g.incident[u], id)
		g.incident[v] = append(g.incident[v], id)
	}

	return g, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of edges.
func (g *Graph) M() int { return len(g.edges) }

// Edge returns the edge with the given id.
func (g *Graph) Edge(id int) Edge { return g.edges[id] }

// Edges returns the edge slice. Callers must treat it as read-only.
func (g *Graph) Edges() []Edge { return g.edges }

// Degree returns the degree of vertex v.
func (g *Graph) Degree(v int) int { return len(g.incident[v]) }

// IncidentEdges returns the edge ids incident to v in their current
// list order. Callers must not append; reordering in place is allowed
// via ShuffleIncidentEdges.
func (g *Graph) IncidentEdges(v int) []int { return g.incident[v] }

// Neighbors returns the vertices adjacent to v, one per incident edge,
// in the incident list's current order. Allocates the result.
//
// Complexity: O(deg v).
func (g *Graph) Neighbors(v int) []int {
	ids := g.incident[v]
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = g.edges[id].Other(v)
	}

	return out
}

// EdgeIndex returns the id of the edge {u,v} and true, or -1 and false
// when no such edge exists. Scans the shorter incident list.
//
// Complexity: O(min(deg u, deg v)).
func (g *Graph) EdgeIndex(u, v int) (int, bool) {
	if u < 0 || v < 0 || u >= g.n || v >= g.n || u == v {
		return -1, false
	}
	w := u
	if g.Degree(v) < g.Degree(u) {
		w = v
	}
	other := u + v - w
	for _, id := range g.incident[w] {
		if g.edges[id].Other(w) == other {
			return id, true
		}
	}

	return -1, false
}

// ShuffleIncidentEdges permutes v's incident edge-id list in place
// using r; adjacency invariants are unaffected. The module's
// heuristics do not call it: they shuffle local copies of the list.
func (g *Graph) ShuffleIncidentEdges(v int, r *rand.Rand) {
	ids := g.incident[v]
	for i := len(ids) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
}

// Density returns m / (n choose 2), the fraction of possible edges.
func (g *Graph) Density() float64 {
	maxM := g.n * (g.n - 1) / 2
	if maxM == 0 {
		return 0
	}

	return float64(g.M()) / float64(maxM)
}

// Clone returns a structurally identical graph with freshly allocated
// storage. Edge ids and incident-list order are preserved.
//
// Complexity: O(n + m).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		n:        g.n,
		edges:    make([]Edge, len(g.edges)),
		incident: make([][]int, g.n),
	}
	copy(c.edges, g.edges)
	for v, ids := range g.incident {
		c.incident[v] = make([]int, len(ids))
		copy(c.incident[v], ids)
	}

	return c
}

// Validate checks the structural invariants:
//   - every edge has in-range, distinct endpoints with U < V
//   - no unordered pair occurs twice
//   - every incident list entry references an edge touching its vertex
//   - the degree sum equals 2m
//
// Returns nil or ErrInvalidGraph with a diagnostic describing the
// offending state.
func (g *Graph) Validate() error {
	if g == nil {
		return ErrNilGraph
	}

	seen := make(map[Edge]struct{}, len(g.edges))
	for id, e := range g.edges {
		if e.U < 0 || e.V >= g.n {
			return fmt.Errorf("edge %d = (%d,%d) out of range: %w", id, e.U, e.V, ErrInvalidGraph)
		}
		if e.U >= e.V {
			return fmt.Errorf("edge %d = (%d,%d) not canonical: %w", id, e.U, e.V, ErrInvalidGraph)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("edge %d = (%d,%d) duplicated: %w", id, e.U, e.V, ErrInvalidGraph)
		}
		seen[e] = struct{}{}
	}

	sumDegree := 0
	for v, ids := range g.incident {
		for _, id := range ids {
			if id < 0 || id >= len(g.edges) {
				return fmt.Errorf("vertex %d references edge %d: %w", v, id, ErrInvalidGraph)
			}
			if !g.edges[id].Has(v) {
				return fmt.Errorf("vertex %d lists foreign edge %d: %w", v, id, ErrInvalidGraph)
			}
		}
		sumDegree += len(ids)
	}
	if sumDegree != 2*len(g.edges) {
		return fmt.Errorf("degree sum %d != 2m = %d: %w", sumDegree, 2*len(g.edges), ErrInvalidGraph)
	}

	return nil
}
