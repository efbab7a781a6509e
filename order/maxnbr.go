package order

import (
	"math/rand"
	"sort"

	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// MaxNbr repeatedly takes the unprocessed vertex of highest degree,
// assigns it the next position, and then assigns its unprocessed
// neighbors in increasing degree order. Ties are broken by an initial
// random permutation. Assumes a connected graph for sensible results
// (it still yields a valid permutation otherwise).
type MaxNbr struct {
	Rand *rand.Rand
}

// Apply implements Algorithm.
func (a MaxNbr) Apply(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}

	return a.ApplyWindow(emb, 0, emb.N())
}

// ApplyWindow implements Windowed. All vertices are processed; only
// in-window vertices receive new positions.
//
// Complexity: O(n log n + m log Δ).
func (a MaxNbr) ApplyWindow(emb *embedding.Embedding, begin, end int) error {
	if err := checkWindow(emb, begin, end); err != nil {
		return err
	}
	if windowSize(emb.N(), begin, end) <= 1 {
		return nil
	}

	g := emb.Graph()
	n := emb.N()
	r := a.Rand
	if r == nil {
		r = rng.New(0)
	}

	spine := emb.Spine()
	vertexOnSpine := emb.VertexOnSpine()
	clearWindow(spine, vertexOnSpine, begin, end)

	// random permutation first, stable sort after: equal degrees stay
	// randomly ordered
	queue := rng.Perm(n, r)
	sort.SliceStable(queue, func(x, y int) bool {
		return g.Degree(queue[x]) > g.Degree(queue[y])
	})

	visited := make([]bool, n)
	idx := begin
	assign := func(v int) {
		if vertexOnSpine[v] == -1 {
			vertexOnSpine[v] = idx
			idx = (idx + 1) % n
		}
	}

	for _, v := range queue {
		if visited[v] {
			continue
		}
		visited[v] = true
		assign(v)

		neighbors := make([]int, 0, g.Degree(v))
		for _, u := range g.Neighbors(v) {
			if !visited[u] {
				neighbors = append(neighbors, u)
			}
		}
		sort.SliceStable(neighbors, func(x, y int) bool {
			return g.Degree(neighbors[x]) < g.Degree(neighbors[y])
		})

		for _, u := range neighbors {
			assign(u)
			visited[u] = true
		}
	}

	emb.SetVertexOnSpine(vertexOnSpine)

	return nil
}

// MaxNbrRemoving is the MaxNbr variant that maintains an "effective
// degree" per vertex: each processed neighbor decrements the effective
// degrees of its own neighbors (clamped at zero), and the pending list
// is re-sorted after every expansion. Whether the resulting order
// matches recomputing degrees eagerly every round is deliberately left
// unasserted, as in the reference behavior.
type MaxNbrRemoving struct{}

// Apply implements Algorithm.
//
// Complexity: O(n² log n) in the worst case from the per-round sort.
func (a MaxNbrRemoving) Apply(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}

	g := emb.Graph()
	n := emb.N()
	if n <= 1 {
		return nil
	}

	vertexOnSpine := emb.VertexOnSpine()
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		vertexOnSpine[v] = -1
		degree[v] = g.Degree(v)
	}

	pending := make([]int, n)
	for i := range pending {
		pending[i] = i
	}
	byEffectiveDegreeDesc := func(x, y int) bool {
		return degree[pending[x]] > degree[pending[y]]
	}
	sort.SliceStable(pending, byEffectiveDegreeDesc)

	visited := make([]bool, n)
	idx := 0
	for len(pending) > 0 {
		v := pending[0]
		pending = pending[1:]
		visited[v] = true
		degree[v] = 0

		if vertexOnSpine[v] == -1 {
			vertexOnSpine[v] = idx
			idx = (idx + 1) % n
		}

		neighbors := make([]int, 0, g.Degree(v))
		for _, u := range g.Neighbors(v) {
			if !visited[u] {
				neighbors = append(neighbors, u)
			}
		}
		sort.SliceStable(neighbors, func(x, y int) bool {
			return degree[neighbors[x]] < degree[neighbors[y]]
		})

		for _, u := range neighbors {
			if vertexOnSpine[u] == -1 {
				vertexOnSpine[u] = idx
				idx = (idx + 1) % n
			}
			pending = removeValue(pending, u)
			visited[u] = true

			for _, w := range g.Neighbors(u) {
				if degree[w] > 0 {
					degree[w]--
				}
			}
		}

		sort.SliceStable(pending, byEffectiveDegreeDesc)
	}

	emb.SetVertexOnSpine(vertexOnSpine)

	return nil
}

// removeValue deletes the first occurrence of v, preserving order.
func removeValue(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
