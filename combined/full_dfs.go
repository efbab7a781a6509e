package combined

import (
	"math/rand"
	"sort"

	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// FullRandomDFS orders vertices by a random depth-first traversal and
// distributes every edge the moment its second endpoint is reached,
// onto the page where it crosses the fewest already placed edges.
type FullRandomDFS struct {
	Rand *rand.Rand
}

// Embed implements Algorithm.
//
// Complexity: O(n + m·m̄) where m̄ is the placed-edge count per step.
func (a FullRandomDFS) Embed(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}
	if emb.K() == 1 {
		return ErrSinglePage
	}

	r := a.Rand
	if r == nil {
		r = rng.New(0)
	}

	return fullDFS(emb, r.Intn(emb.N()), r)
}

// FullSmallestDegreeDFS is the smallest-degree DFS with simultaneous
// edge distribution: rooted at the smallest-degree vertex, neighbors
// explored smallest degree first.
type FullSmallestDegreeDFS struct{}

// Embed implements Algorithm.
func (a FullSmallestDegreeDFS) Embed(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}
	if emb.K() == 1 {
		return ErrSinglePage
	}

	g := emb.Graph()
	rootPosition := 0
	smallestDegree := int(^uint(0) >> 1)
	for pos := 0; pos < emb.N(); pos++ {
		if d := g.Degree(emb.VertexAt(pos)); d < smallestDegree {
			smallestDegree = d
			rootPosition = pos
		}
	}

	return fullDFS(emb, rootPosition, nil)
}

// fullDFS is the shared traversal: vertices get positions in visit
// order; an edge is placed when its later endpoint processes it and
// finds the other endpoint visited. With an RNG the incident edges and
// neighbor pushes are shuffled (random discipline); without one the
// neighbors are pushed by descending degree so the smallest is
// explored first (smallest-degree discipline).
func fullDFS(emb *embedding.Embedding, rootPosition int, r *rand.Rand) error {
	g := emb.Graph()
	n := emb.N()

	b := newBuilder(emb)
	spine := emb.Spine()

	rootIndex := spine[rootPosition]
	visited := make([]bool, n)
	stack := make([]int, 0, n)
	localEdges := make([]int, 0, 8)

	idx := 0
	for idx < n {
		// the graph may be disconnected: advance to a pending vertex
		for b.position[rootIndex] != -1 {
			rootPosition = (rootPosition + 1) % n
			rootIndex = spine[rootPosition]
		}

		stack = append(stack, rootIndex)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[v] {
				continue
			}
			visited[v] = true

			if b.position[v] == -1 {
				b.position[v] = idx
				idx++
			}

			localEdges = localEdges[:0]
			localEdges = append(localEdges, g.IncidentEdges(v)...)
			if r != nil {
				rng.Shuffle(localEdges, r)
			}

			neighbors := make([]int, 0, len(localEdges))
			for _, e := range localEdges {
				u := g.Edge(e).Other(v)
				if !visited[u] {
					neighbors = append(neighbors, u)
				} else {
					b.placeEdgeOnBestPage(e)
				}
			}

			if r != nil {
				rng.Shuffle(neighbors, r)
			} else {
				// descending degree, so the smallest ends on top
				sort.SliceStable(neighbors, func(x, y int) bool {
					return g.Degree(neighbors[x]) > g.Degree(neighbors[y])
				})
			}
			stack = append(stack, neighbors...)
		}
	}

	return b.commit(emb)
}
