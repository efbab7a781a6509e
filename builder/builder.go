// Package builder provides deterministic constructors for the graph
// families the rest of the module is exercised with: complete graphs,
// cycles, paths, and Erdős–Rényi random graphs.
//
// Contract (shared by all constructors):
//   - n ≥ 1, Cycle n ≥ 3 (else ErrTooFewVertices).
//   - Vertices are the indices 0..n-1.
//   - Edge emission order is deterministic: Complete, Path and
//     RandomSparse emit lexicographically by (i,j) with i<j
//     (RandomSparse keeps the same trial order, so outcomes are fully
//     determined by the supplied RNG); Cycle emits {i, i+1 mod n} for
//     ascending i, so its closing edge {0,n-1} comes last.
//   - Returns only sentinel errors; never panics at runtime.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/avermeer/pagecross/core"
)

// Sentinel errors for graph construction parameters.
var (
	// ErrTooFewVertices indicates that n is below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor got a nil RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")
)

// Complete returns the complete simple graph K_n.
//
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}

	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return core.NewGraph(n, pairs)
}

// Cycle returns the cycle C_n (n ≥ 3).
//
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
	}

	pairs := make([][2]int, n)
	for i := 0; i < n; i++ {
		pairs[i] = [2]int{i, (i + 1) % n}
	}

	return core.NewGraph(n, pairs)
}

// Path returns the path P_n on n vertices (n-1 edges).
//
// Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}

	pairs := make([][2]int, n-1)
	for i := 0; i+1 < n; i++ {
		pairs[i] = [2]int{i, i + 1}
	}

	return core.NewGraph(n, pairs)
}

// RandomSparse samples an Erdős–Rényi graph G(n,p): every unordered
// pair {i,j} is included independently with probability p. The trial
// order is fixed (i asc, then j asc), so a given RNG state determines
// the graph.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, r *rand.Rand) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if r == nil {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
	}

	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return core.NewGraph(n, pairs)
}
