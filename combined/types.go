// Package combined provides the full-embedding heuristics: traversals
// that compute a vertex order and distribute the edges in the same
// pass, placing each edge on its locally best page at the moment both
// endpoints are placed.
//
// All of them need at least two pages; with k == 1 there is nothing to
// distribute and they return ErrSinglePage — use an order heuristic
// alone instead.
package combined

import (
	"errors"

	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/embedding"
)

// Sentinel errors for full-embedding heuristics.
var (
	// ErrNilEmbedding indicates a nil embedding was passed.
	ErrNilEmbedding = errors.New("combined: embedding is nil")

	// ErrSinglePage indicates a full-embedding heuristic was invoked
	// with k == 1.
	ErrSinglePage = errors.New("combined: heuristic needs more than one page")

	// ErrIncompleteDistribution indicates the traversal finished with
	// unplaced edges — the input graph violated the heuristic's
	// assumptions.
	ErrIncompleteDistribution = errors.New("combined: not all edges distributed")
)

// Algorithm computes a vertex order and an edge distribution together
// and stores both in the embedding.
type Algorithm interface {
	Embed(emb *embedding.Embedding) error
}

// builder is the working state the traversal heuristics share: the
// vertex positions and the page distribution under construction,
// tracked locally and written into the embedding once complete.
type builder struct {
	g        *core.Graph
	k        int
	position []int // vertex -> position, -1 pending
	pages    []int // edge -> page, embedding.PendingPage pending
	placed   []int // edge ids already paged, in placement order
}

func newBuilder(emb *embedding.Embedding) *builder {
	b := &builder{
		g:        emb.Graph(),
		k:        emb.K(),
		position: make([]int, emb.N()),
		pages:    make([]int, emb.M()),
		placed:   make([]int, 0, emb.M()),
	}
	for i := range b.position {
		b.position[i] = -1
	}
	for i := range b.pages {
		b.pages[i] = embedding.PendingPage
	}

	return b
}

// placeEdgeOnBestPage puts the edge on the page where it crosses the
// fewest already placed edges (ties to the lowest page). Both
// endpoints must have positions.
func (b *builder) placeEdgeOnBestPage(edge int) {
	e := b.g.Edge(edge)
	crossingsPerPage := make([]int, b.k)
	for _, other := range b.placed {
		o := b.g.Edge(other)
		if embedding.CanPositionsCross(
			b.position[e.U], b.position[e.V],
			b.position[o.U], b.position[o.V]) {
			crossingsPerPage[b.pages[other]]++
		}
	}

	bestPage := 0
	min := crossingsPerPage[0]
	for p := 1; p < b.k; p++ {
		if crossingsPerPage[p] < min {
			min = crossingsPerPage[p]
			bestPage = p
		}
	}

	b.pages[edge] = bestPage
	b.placed = append(b.placed, edge)
}

// commit validates completeness and writes both results into the
// embedding.
func (b *builder) commit(emb *embedding.Embedding) error {
	if len(b.placed) != emb.M() {
		return ErrIncompleteDistribution
	}
	emb.SetVertexOnSpine(b.position)
	emb.SetDistribution(b.pages)

	return nil
}
