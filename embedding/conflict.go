package embedding

import "github.com/avermeer/pagecross/core"

// Conflict-graph factory. The conflict graph C of an embedding over a
// graph G has V(C) = E(G) and an edge {e,f} iff e and f interleave on
// the current spine (they cross whenever they share a page). The
// edge-distribution heuristics color or decompose this graph.

// ConflictGraph builds the conflict graph of the embedding. Vertex i
// of the result is edge i of the underlying graph.
//
// Complexity: O(m²).
func ConflictGraph(emb *Embedding) (*core.Graph, error) {
	return conflictGraph(emb, false)
}

// ConflictGraphComplement builds the complement of the conflict graph:
// vertices are edges of G, adjacency means the two edges can share a
// page without crossing.
//
// Complexity: O(m²).
func ConflictGraphComplement(emb *Embedding) (*core.Graph, error) {
	return conflictGraph(emb, true)
}

func conflictGraph(emb *Embedding, complement bool) (*core.Graph, error) {
	if emb == nil {
		return nil, ErrNilEmbedding
	}

	m := emb.M()
	var pairs [][2]int
	for e1 := 0; e1 < m; e1++ {
		for e2 := e1 + 1; e2 < m; e2++ {
			if emb.CanEdgesCross(e1, e2) != complement {
				pairs = append(pairs, [2]int{e1, e2})
			}
		}
	}

	return core.NewGraph(m, pairs)
}
