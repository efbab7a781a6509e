// Package embedding holds the central mutable state of a k-page book
// drawing and the crossing counters that evaluate it.
//
// An Embedding stores a spine (position → vertex) together with its
// maintained inverse (vertex → position), the page distribution
// (edge → page), and a cached crossing count that every mutator
// invalidates. The two spine arrays are queried in the inner loop of
// every counter and heuristic, which is why the inverse is stored, not
// derived.
//
// Crossing counters are pluggable: Pairwise (the O(m²) reference),
// Sweep (open-edge stacks, O(m log m + crossings)), and DivideAndConquer
// (upper bound minus bipartite inversions, O(m log m + X), the
// default). All three are required to return bit-identical results on
// every valid embedding, and all three answer per-page queries.
//
// Errors:
//
//	ErrNilEmbedding     - nil embedding passed to an operation.
//	ErrNilProblem       - embedding requested for a nil problem.
//	ErrProblemMismatch  - CopyFrom across different problems.
//	ErrInvalidEmbedding - Validate found a broken invariant.
package embedding
