package order

import (
	"math/rand"

	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// GreedyConnectivity selects vertices like SelectConnectivity but,
// instead of choosing a spine end, inserts each new vertex at the
// internal position minimizing the crossings between its edges to
// placed neighbors and the set of already fully placed edges.
type GreedyConnectivity struct {
	Rand *rand.Rand
}

// Apply implements Algorithm. Assumes a connected graph for sensible
// results.
//
// Complexity: O(n² · m̄) where m̄ is the placed-edge count per step.
func (a GreedyConnectivity) Apply(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}

	r := a.Rand
	if r == nil {
		r = rng.New(0)
	}

	g := emb.Graph()
	n := emb.N()
	st := newPlacementState(g)

	start := SelectConnectivity.selectVertex(st, r)
	st.markPlaced(start)
	spine := make([]int, 0, n)
	spine = append(spine, start)

	// placedEdges collects edges with both endpoints on the spine.
	placedEdges := make([]int, 0, g.M())
	posOf := make([]int, n)

	for i := 1; i < n; i++ {
		v := SelectConnectivity.selectVertex(st, r)

		position := bestInsertPosition(emb, spine, st, v, placedEdges, posOf)
		spine = append(spine, 0)
		copy(spine[position+1:], spine[position:])
		spine[position] = v

		placedEdges = appendEdgesToPlacedNeighbors(st, v, placedEdges)
		st.markPlaced(v)
	}

	emb.SetSpine(spine)

	return nil
}

// bestInsertPosition scores every gap of the partial spine: for each
// placed edge xy and each new edge uv (u placed), positions inside
// [posX,posY] are bad when u lies outside and vice versa. The last
// position attaining the minimum wins.
func bestInsertPosition(emb *embedding.Embedding, spine []int, st *placementState,
	vertex int, placedEdges []int, posOf []int) int {
	g := emb.Graph()
	crossingsAt := make([]int, len(spine)+1)

	for i := range posOf {
		posOf[i] = -1
	}
	for i, w := range spine {
		posOf[w] = i
	}

	newEdges := appendEdgesToPlacedNeighbors(st, vertex, nil)

	for _, xy := range placedEdges {
		e := g.Edge(xy)
		posX, posY := posOf[e.U], posOf[e.V]
		if posX > posY {
			posX, posY = posY, posX
		}

		for _, uv := range newEdges {
			posU := posOf[g.Edge(uv).Other(vertex)]
			if posU == posX || posU == posY {
				continue
			}
			if posU < posX || posU > posY {
				// u outside xy: inserting inside crosses it
				for i := posX + 1; i <= posY; i++ {
					crossingsAt[i]++
				}
			} else {
				// u inside xy: inserting outside crosses it
				for i := 0; i <= posX; i++ {
					crossingsAt[i]++
				}
				for i := posY + 1; i < len(crossingsAt); i++ {
					crossingsAt[i]++
				}
			}
		}
	}

	best, min := 0, int(^uint(0)>>1)
	for i, c := range crossingsAt {
		if c <= min {
			min = c
			best = i
		}
	}

	return best
}

// appendEdgesToPlacedNeighbors appends the ids of vertex's edges whose
// other endpoint is already placed.
func appendEdgesToPlacedNeighbors(st *placementState, vertex int, edges []int) []int {
	for _, id := range st.g.IncidentEdges(vertex) {
		if st.placed[st.g.Edge(id).Other(vertex)] {
			edges = append(edges, id)
		}
	}

	return edges
}
