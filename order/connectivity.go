package order

import (
	"math/rand"

	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// VertexSelector picks which unplaced vertex to insert next.
type VertexSelector int

// The selection strategies.
const (
	// SelectNext takes the unplaced vertex with the smallest index.
	SelectNext VertexSelector = iota
	// SelectRandom takes a uniformly random unplaced vertex.
	SelectRandom
	// SelectInCon takes the vertex with the most placed neighbors.
	SelectInCon
	// SelectOutCon takes the vertex with the fewest unplaced neighbors.
	SelectOutCon
	// SelectConnectivity takes the vertex with the most placed
	// neighbors, ties broken by fewer unplaced neighbors.
	SelectConnectivity
)

// VertexPlacer decides at which spine end the selected vertex goes.
type VertexPlacer int

// The placement strategies.
const (
	// PlaceFixed always appends at the end.
	PlaceFixed VertexPlacer = iota
	// PlaceRandom prepends or appends with equal probability.
	PlaceRandom
	// PlaceCrossings picks the end minimizing new crossings between
	// the vertex's closed edges and edges still to be closed.
	PlaceCrossings
	// PlaceELen picks the end minimizing the total length of the
	// newly closed edges.
	PlaceELen
)

// Connectivity is the placement heuristic of Baur and Brandes: grow
// the spine one vertex at a time, choosing the vertex by a selector
// and the end of the spine by a placer. Assumes a connected graph for
// sensible results.
type Connectivity struct {
	// InitialSelector picks the first vertex; usually the same
	// strategy as Selector.
	InitialSelector VertexSelector
	Selector        VertexSelector
	Placer          VertexPlacer

	Rand *rand.Rand
}

// NewConnectivity builds a Connectivity heuristic using the given
// strategy for both the initial and all subsequent selections.
func NewConnectivity(selector VertexSelector, placer VertexPlacer) Connectivity {
	return Connectivity{InitialSelector: selector, Selector: selector, Placer: placer}
}

// Apply implements Algorithm.
//
// Complexity: O(n·(n + Δ)) for the counting placers.
func (a Connectivity) Apply(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}

	r := a.Rand
	if r == nil {
		r = rng.New(0)
	}

	st := newPlacementState(emb.Graph())
	n := emb.N()

	st.place(a.InitialSelector.selectVertex(st, r), true)
	for i := 1; i < n; i++ {
		v := a.Selector.selectVertex(st, r)
		st.place(v, a.Placer.placeAtEnd(v, st, r))
	}

	emb.SetSpine(st.spine)

	return nil
}

// placementState tracks the growing spine plus, per vertex, how many
// of its neighbors are already placed and how many are not.
type placementState struct {
	g                 *core.Graph
	spine             []int
	placedNeighbors   []int
	unplacedNeighbors []int
	placed            []bool
	placedCount       int
}

func newPlacementState(g *core.Graph) *placementState {
	n := g.N()
	st := &placementState{
		g:                 g,
		spine:             make([]int, 0, n),
		placedNeighbors:   make([]int, n),
		unplacedNeighbors: make([]int, n),
		placed:            make([]bool, n),
	}
	for v := 0; v < n; v++ {
		st.unplacedNeighbors[v] = g.Degree(v)
	}

	return st
}

// place inserts v at the chosen spine end and maintains the per-vertex
// neighbor counts.
func (st *placementState) place(v int, atEnd bool) {
	if atEnd {
		st.spine = append(st.spine, v)
	} else {
		st.spine = append(st.spine, 0)
		copy(st.spine[1:], st.spine)
		st.spine[0] = v
	}
	for _, u := range st.g.Neighbors(v) {
		st.placedNeighbors[u]++
		st.unplacedNeighbors[u]--
	}
	st.placed[v] = true
	st.placedCount++
}

// markPlaced maintains the selector state without touching the spine;
// GreedyConnectivity keeps its own spine with internal insertions.
func (st *placementState) markPlaced(v int) {
	for _, u := range st.g.Neighbors(v) {
		st.placedNeighbors[u]++
		st.unplacedNeighbors[u]--
	}
	st.placed[v] = true
	st.placedCount++
}

func (s VertexSelector) selectVertex(st *placementState, r *rand.Rand) int {
	n := st.g.N()
	switch s {
	case SelectNext:
		for v := 0; v < n; v++ {
			if !st.placed[v] {
				return v
			}
		}

		return -1

	case SelectRandom:
		skip := r.Intn(n - st.placedCount)
		for v := 0; v < n; v++ {
			if st.placed[v] {
				continue
			}
			if skip == 0 {
				return v
			}
			skip--
		}

		return -1

	case SelectInCon:
		best, most := -1, -1
		for v := 0; v < n; v++ {
			if !st.placed[v] && st.placedNeighbors[v] > most {
				most = st.placedNeighbors[v]
				best = v
			}
		}

		return best

	case SelectOutCon:
		best := -1
		fewest := int(^uint(0) >> 1)
		for v := 0; v < n; v++ {
			if !st.placed[v] && st.unplacedNeighbors[v] < fewest {
				fewest = st.unplacedNeighbors[v]
				best = v
			}
		}

		return best

	default: // SelectConnectivity
		best, most, unplaced := -1, -1, -1
		for v := 0; v < n; v++ {
			if st.placed[v] {
				continue
			}
			if st.placedNeighbors[v] > most ||
				(st.placedNeighbors[v] == most && st.unplacedNeighbors[v] < unplaced) {
				most = st.placedNeighbors[v]
				unplaced = st.unplacedNeighbors[v]
				best = v
			}
		}

		return best
	}
}

func (p VertexPlacer) placeAtEnd(v int, st *placementState, r *rand.Rand) bool {
	switch p {
	case PlaceFixed:
		return true
	case PlaceRandom:
		return r.Float64() < 0.5
	case PlaceCrossings:
		return !placeAtBeginningByCrossings(v, st)
	default: // PlaceELen
		return !placeAtBeginningByEdgeLength(v, st)
	}
}

// placeAtBeginningByCrossings estimates, for both ends, the crossings
// the new vertex's closed edges would form with edges that are still
// open (placed endpoint, unplaced endpoint), and reports whether the
// beginning wins strictly.
func placeAtBeginningByCrossings(v int, st *placementState) bool {
	neighbors := make([]bool, st.g.N())
	for _, u := range st.g.Neighbors(v) {
		neighbors[u] = true
	}

	var beginningCrossings, endCrossings int64

	unseen := st.placedNeighbors[v]
	for i := 0; i < len(st.spine) && unseen > 0; i++ {
		w := st.spine[i]
		crossingEdges := st.unplacedNeighbors[w]
		if neighbors[w] {
			unseen--
			crossingEdges--
		}
		beginningCrossings += int64(unseen) * int64(crossingEdges)
	}

	unseen = st.placedNeighbors[v]
	for i := len(st.spine) - 1; i >= 0 && unseen > 0; i-- {
		w := st.spine[i]
		crossingEdges := st.unplacedNeighbors[w]
		if neighbors[w] {
			unseen--
			crossingEdges--
		}
		endCrossings += int64(unseen) * int64(crossingEdges)
	}

	return beginningCrossings < endCrossings
}

// placeAtBeginningByEdgeLength compares the total spine length of the
// newly closed edges for both ends.
func placeAtBeginningByEdgeLength(v int, st *placementState) bool {
	neighbors := make([]bool, st.g.N())
	for _, u := range st.g.Neighbors(v) {
		neighbors[u] = true
	}

	beginningLength := 0
	unseen := st.placedNeighbors[v]
	for i := 0; i < len(st.spine) && unseen > 0; i++ {
		beginningLength += unseen
		if neighbors[st.spine[i]] {
			unseen--
		}
	}

	endLength := st.placedNeighbors[v]*(len(st.spine)+1) - beginningLength

	return beginningLength < endLength
}
