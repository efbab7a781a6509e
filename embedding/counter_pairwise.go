package embedding

// Pairwise is the O(m²) reference counter: every same-page edge pair
// is tested with the interleave predicate. Use it in tests and as the
// ground truth the faster counters are checked against.
type Pairwise struct{}

// Count implements Counter.
//
// Complexity: O(m²).
func (Pairwise) Count(emb *Embedding) int64 {
	var sum int64
	m := emb.M()
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			if emb.distribution[i] == emb.distribution[j] && emb.CanEdgesCross(i, j) {
				sum++
			}
		}
	}

	return sum
}

// CountPage implements Counter.
//
// Complexity: O(m²) in the page size.
func (Pairwise) CountPage(emb *Embedding, page int) int64 {
	var sum int64
	m := emb.M()
	for i := 0; i < m; i++ {
		if emb.distribution[i] != page {
			continue
		}
		for j := i + 1; j < m; j++ {
			if emb.distribution[j] == page && emb.CanEdgesCross(i, j) {
				sum++
			}
		}
	}

	return sum
}

// CrossingsOfEdge counts the crossings edge e would contribute if it
// were on the given page, against the edges currently there.
//
// Complexity: O(m).
func (Pairwise) CrossingsOfEdge(emb *Embedding, edge, page int) int64 {
	var sum int64
	for other, p := range emb.distribution {
		if other != edge && p == page && emb.CanEdgesCross(edge, other) {
			sum++
		}
	}

	return sum
}

func (Pairwise) String() string { return "pairwise" }
