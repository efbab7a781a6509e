package combined

import (
	"math/rand"

	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// FullRandomBFS orders vertices by a random breadth-first traversal
// and distributes every edge when its second endpoint is dequeued,
// onto the page where it crosses the fewest already placed edges.
type FullRandomBFS struct {
	Rand *rand.Rand
}

// Embed implements Algorithm.
//
// Complexity: O(n + m·m̄) where m̄ is the placed-edge count per step.
func (a FullRandomBFS) Embed(emb *embedding.Embedding) error {
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

	g := emb.Graph()
	n := emb.N()
	b := newBuilder(emb)

	listed := make([]bool, n)
	dequeued := make([]bool, n)
	queue := make([]int, 0, n)
	localEdges := make([]int, 0, 8)

	position := 0
	start := r.Intn(n)
	for position < n {
		for b.position[start] != -1 {
			start = (start + 1) % n
		}

		queue = append(queue, start)
		listed[start] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]

			dequeued[v] = true
			b.position[v] = position
			position++

			localEdges = localEdges[:0]
			localEdges = append(localEdges, g.IncidentEdges(v)...)
			rng.Shuffle(localEdges, r)

			for _, e := range localEdges {
				u := g.Edge(e).Other(v)
				if !listed[u] {
					listed[u] = true
					queue = append(queue, u)
				} else if dequeued[u] {
					// both endpoints placed: the edge gets its page now
					b.placeEdgeOnBestPage(e)
				}
				// listed but not dequeued: u's own turn places it
			}
		}
	}

	return b.commit(emb)
}
