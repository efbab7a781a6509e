// Package pagecross is a toolkit for k-page book embeddings: place the
// vertices of a graph on a spine, assign every edge to one of k pages,
// and drive the number of same-page crossings down.
//
// 🚀 What is pagecross?
//
//	A pure-Go library that brings together:
//		• Core primitives: index-addressed graphs, problems, embeddings
//		• Crossing counters: pairwise, open-edge sweep, divide-and-conquer
//		• Vertex-order heuristics: DFS/BFS variants, MaxNbr, BFS-tree,
//		  Hamilton-path, connectivity-driven placement
//		• Edge-distribution heuristics: slope binning, greedy orderings,
//		  conflict pairs, ear decomposition
//		• Optimizers: greedy hill-climbing with O(Δ²) swap gains and a
//		  four-move simulated-annealing loop
//
// ✨ Why choose pagecross?
//
//   - Deterministic – every stochastic component takes a seeded RNG
//   - Rock-solid guarantees – sentinel errors, validated invariants
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – pluggable crossing counters, composable heuristics
//
// Under the hood, everything is organized into small subpackages:
//
//	core/       — Graph, Edge, Problem types and validation
//	builder/    — deterministic test-graph constructors
//	rng/        — seeded randomness with derived substreams
//	embedding/  — the central Embedding state and crossing counters
//	order/      — vertex-order heuristics (full and windowed)
//	distribute/ — edge-distribution heuristics
//	combined/   — heuristics computing order and distribution together
//	greedy/     — greedy local-search optimizers
//	anneal/     — simulated annealing
//	optimize/   — harness: best-so-far snapshots, budgets, traces
//
// The usual pipeline: build a core.Problem, create an
// embedding.Embedding from it, run one initial heuristic (order and
// distribute, or a combined one), then hand the embedding to an
// optimizer and read the returned optimize.Solution.
package pagecross
