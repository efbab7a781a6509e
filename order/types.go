// Package order provides the vertex-order heuristics: each one writes
// a full permutation into an embedding's spine arrays, and several
// support reordering only a window of spine positions.
//
// Windows are half-open position ranges [begin,end). A window with
// end < begin wraps around the spine end: it covers [begin,n) ∪
// [0,end). Vertices outside the window keep their positions; position
// assignment inside the window uses modular arithmetic uniformly, so
// the wrapping case takes no special branches per iteration.
//
// All stochastic heuristics draw from an explicit *rand.Rand (nil ⇒
// the deterministic default stream), so runs are reproducible.
//
// MaxNbr and the connectivity-family heuristics assume a connected
// input graph; on disconnected graphs their orders degrade but remain
// valid permutations. The DFS/BFS heuristics handle disconnected
// graphs by advancing the root cyclically.
package order

import (
	"errors"

	"github.com/avermeer/pagecross/embedding"
)

// Sentinel errors for vertex-order heuristics.
var (
	// ErrNilEmbedding indicates a nil embedding was passed.
	ErrNilEmbedding = errors.New("order: embedding is nil")

	// ErrWindowRange indicates a window bound outside [0,n].
	ErrWindowRange = errors.New("order: window bound out of range")
)

// Algorithm computes a vertex order and stores it in the embedding.
type Algorithm interface {
	Apply(emb *embedding.Embedding) error
}

// Windowed is an Algorithm that can reorder just a spine window
// [begin,end), wrapping around the spine end when end < begin.
type Windowed interface {
	Algorithm

	// ApplyWindow reorders only the vertices at the window's
	// positions; everything else keeps its position.
	ApplyWindow(emb *embedding.Embedding, begin, end int) error
}

// checkWindow validates the embedding and window bounds shared by all
// windowed heuristics.
func checkWindow(emb *embedding.Embedding, begin, end int) error {
	if emb == nil {
		return ErrNilEmbedding
	}
	if n := emb.N(); begin < 0 || begin > n || end < 0 || end > n {
		return ErrWindowRange
	}

	return nil
}

// windowSize returns the number of positions covered by [begin,end)
// on a spine of length n, accounting for wrap-around.
func windowSize(n, begin, end int) int {
	if begin <= end {
		return end - begin
	}

	return n - begin + end
}

// clearWindow marks every in-window slot of vertexOnSpine as pending
// (-1), leaving out-of-window vertices at their positions.
func clearWindow(spine, vertexOnSpine []int, begin, end int) {
	n := len(spine)
	if begin < end {
		for i := begin; i < end; i++ {
			vertexOnSpine[spine[i]] = -1
		}
	} else {
		for i := begin; i < n; i++ {
			vertexOnSpine[spine[i]] = -1
		}
		for i := 0; i < end; i++ {
			vertexOnSpine[spine[i]] = -1
		}
	}
}
