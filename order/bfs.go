package order

import (
	"math/rand"

	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// RandomBFS orders vertices by a breadth-first traversal from a
// uniformly random root; the neighbors of each dequeued vertex are
// enqueued in random order. Disconnected graphs are handled by
// advancing the start cyclically.
type RandomBFS struct {
	Rand *rand.Rand
}

// Apply implements Algorithm.
//
// Complexity: O(n + m) plus the neighbor shuffles.
func (a RandomBFS) Apply(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}

	g := emb.Graph()
	n := emb.N()
	r := a.Rand
	if r == nil {
		r = rng.New(0)
	}

	spine := make([]int, n)
	placedAt := make([]int, n)
	for i := range placedAt {
		placedAt[i] = -1
	}
	listed := make([]bool, n)
	queue := make([]int, 0, n)

	position := 0
	start := r.Intn(n)
	for position < n {
		for placedAt[start] != -1 {
			start = (start + 1) % n
		}

		queue = append(queue, start)
		listed[start] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]

			placedAt[v] = position
			spine[position] = v
			position++

			neighbors := g.Neighbors(v)
			perm := rng.Perm(len(neighbors), r)
			for _, i := range perm {
				u := neighbors[i]
				if !listed[u] {
					listed[u] = true
					queue = append(queue, u)
				}
			}
		}
	}

	emb.SetSpine(spine)

	return nil
}
