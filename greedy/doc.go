// Package greedy implements the greedy local-search machinery: the
// O(Δ²) swap-gain kernel, best-page-for-edge and
// best-position-for-vertex primitives, per-round loops over random
// orders, and the two optimizers built from them.
//
// TwoStep alternates full rounds of vertex placement and edge
// re-paging; Combined re-pages a vertex's incident edges at every
// candidate position while moving it, and is the strongest
// local-search operator in the module.
//
// Gains are tracked in closed form. TwoStep cross-checks its bookkept
// round gain against the counter at the end of each round; a mismatch
// is an invariant violation and aborts the run with
// optimize.ErrGainMismatch. Combined performs no such check, and its
// vertex swaps invalidate the cached crossing count, so each re-paging
// of an edge recounts.
package greedy
