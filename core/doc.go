// Package core defines the graph model underlying every book-embedding
// computation: index-addressed vertices, canonicalized edge pairs, and
// the Problem (graph + page budget) type.
//
// Design:
//   - Vertices are plain indices in [0,n); there is no vertex object.
//   - Edges are primitive (U,V) index pairs with U < V, stored in a
//     single slice whose position is the edge index.
//   - Adjacency is a per-vertex slice of edge ids in insertion order.
//     The order is observable and can be rearranged with
//     ShuffleIncidentEdges; the heuristics shuffle local copies and
//     leave the stored order as inserted.
//
// This layout keeps counter hot loops free of pointer indirection:
// every query is an array lookup on ints.
//
// Errors:
//
//	ErrNilGraph          - nil graph pointer passed to an operation.
//	ErrVertexRange       - an endpoint index is outside [0,n).
//	ErrSelfLoop          - an edge connects a vertex to itself.
//	ErrParallelEdge      - the same unordered pair appears twice.
//	ErrTooFewPages       - a Problem was requested with k < 1.
//	ErrInvalidGraph      - Validate found a broken structural invariant.
package core
