// Package distribute provides the edge-distribution heuristics: each
// one writes a page assignment for every edge into an embedding whose
// spine is already fixed.
//
// With a single page (k == 1) every heuristic degenerates to putting
// all edges on page 0, which they all handle up front.
//
// All stochastic heuristics draw from an explicit *rand.Rand (nil ⇒
// the deterministic default stream).
package distribute

import (
	"errors"

	"github.com/avermeer/pagecross/embedding"
)

// ErrNilEmbedding indicates a nil embedding was passed.
var ErrNilEmbedding = errors.New("distribute: embedding is nil")

// Algorithm computes an edge distribution for the embedding's current
// spine and stores it in the embedding.
type Algorithm interface {
	Distribute(emb *embedding.Embedding) error
}

// singlePage assigns everything to page 0 when k == 1 and reports
// whether it did.
func singlePage(emb *embedding.Embedding) bool {
	if emb.K() != 1 {
		return false
	}
	emb.FillDistribution(0)

	return true
}
