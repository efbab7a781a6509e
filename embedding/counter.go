package embedding

import "fmt"

// Counter counts same-page crossings of an embedding. The three
// implementations (Pairwise, Sweep, DivideAndConquer) are required to
// return identical values on every valid embedding; they differ only
// in complexity.
type Counter interface {
	// Count returns the total number of crossings over all pages.
	Count(emb *Embedding) int64

	// CountPage returns the number of crossings on one page.
	CountPage(emb *Embedding, page int) int64
}

// Crossings returns the number of crossings of this embedding,
// computing it with the configured counter when the cache is stale.
//
// A negative counter result is an invariant violation (a bug in the
// counter or corrupted state) and fails fast with a diagnostic.
func (emb *Embedding) Crossings() int64 {
	if emb.crossings < 0 {
		out := emb.counter.Count(emb)
		if out < 0 {
			panic(fmt.Sprintf("embedding: counter %T returned %d on\n%v", emb.counter, out, emb))
		}
		emb.crossings = out
	}

	return emb.crossings
}

// CrossingsOnPage counts the crossings on a single page; the cache is
// not consulted or updated.
func (emb *Embedding) CrossingsOnPage(page int) int64 {
	return emb.counter.CountPage(emb, page)
}

// CrossingsValid reports whether the cached crossing count is current.
// After any mutator it is false until the next Crossings call or an
// explicit SetCrossings.
func (emb *Embedding) CrossingsValid() bool { return emb.crossings >= 0 }

// SetCrossings stores a crossing count maintained by the caller (the
// greedy optimizers track gains in closed form instead of recounting).
func (emb *Embedding) SetCrossings(crossings int64) { emb.crossings = crossings }

// InvalidateCrossings marks the cached count stale. Mutators call it;
// callers only need it after touching state through a copy round-trip.
func (emb *Embedding) InvalidateCrossings() { emb.crossings = crossingsInvalid }
