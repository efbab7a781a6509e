package order

import (
	"math/rand"

	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// maxPathRestarts bounds the whole-path reversals the walk may use
// once it is stuck with more than half the vertices covered.
const maxPathRestarts = 2

// HamiltonPath tries to order the vertices along a Hamiltonian path
// found by the Angluin–Valiant random walk: extend from the current
// endpoint over an unused edge; when the walk hits a vertex already on
// the path, short-circuit by rotating (reversing the suffix behind the
// hit) and continue from the displaced endpoint. Finding such a path
// is NP-complete, so the walk may fail even when a path exists; the
// covered prefix is then kept and the rest is ordered by a random DFS.
type HamiltonPath struct {
	Rand *rand.Rand
}

// Apply implements Algorithm.
func (a HamiltonPath) Apply(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}

	r := a.Rand
	if r == nil {
		r = rng.New(0)
	}

	n := emb.N()
	path := findPath(emb.Graph(), r)

	if len(path) == n {
		emb.SetSpine(path)
		return nil
	}

	// Partial path: keep it as the prefix, fill the rest with the
	// remaining vertices, then reorder the suffix with a random DFS.
	spine := make([]int, 0, n)
	onPath := make([]bool, n)
	for _, v := range path {
		onPath[v] = true
	}
	spine = append(spine, path...)
	for v := 0; v < n; v++ {
		if !onPath[v] {
			spine = append(spine, v)
		}
	}
	emb.SetSpine(spine)

	return RandomDFS{Rand: r}.ApplyWindow(emb, len(path), n)
}

// findPath runs the random never-reuse-an-edge walk and returns the
// vertices it covered, in path order.
func findPath(g *core.Graph, r *rand.Rand) []int {
	n := g.N()
	if g.M() == 0 {
		return nil
	}

	inPath := make([]bool, n)
	edgeVisited := make([]bool, g.M())
	restarts := 0

	start := r.Intn(n)
	for g.Degree(start) == 0 {
		start = (start + 1) % n
	}
	current := start
	target := start

	path := make([]int, 0, n)
	path = append(path, current)
	inPath[current] = true

	for {
		// draw an unused incident edge; scan cyclically from a random slot
		edges := g.IncidentEdges(current)
		slot := r.Intn(len(edges))
		id := edges[slot]
		for i := 1; i < len(edges) && edgeVisited[id]; i++ {
			slot = (slot + 1) % len(edges)
			id = edges[slot]
		}

		if edgeVisited[id] {
			if len(path) > n/2 && restarts < maxPathRestarts {
				reverseInts(path)
				current = path[len(path)-1]
				restarts++
				continue
			}

			return path // stuck: return the partial path
		}
		edgeVisited[id] = true
		next := g.Edge(id).Other(current)

		if next != target {
			if !inPath[next] {
				current = next
				path = append(path, current)
				inPath[current] = true
			} else {
				// short-circuit: next sits at path[idx]; replace its
				// successor with the current endpoint, reverse the
				// suffix behind it and continue from the displaced one
				idx := len(path) - 1
				for path[idx] != next {
					idx--
				}
				displaced := path[idx+1]
				path[idx+1] = current
				path = path[:len(path)-1]
				reverseInts(path[idx+2:])
				current = displaced
				path = append(path, current)
				inPath[current] = true
			}
		}

		if len(path) >= n {
			return path
		}
	}
}

// reverseInts reverses s in place.
func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
