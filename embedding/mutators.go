package embedding

// Mutators. Every operation that changes the spine or the distribution
// either invalidates the cached crossing count or (SetCrossings) is an
// explicit statement by the caller that it maintained the count itself.

// MoveEdgeToPage assigns the edge to the given page and invalidates
// the crossing cache.
func (emb *Embedding) MoveEdgeToPage(edge, page int) {
	emb.distribution[edge] = page
	emb.InvalidateCrossings()
}

// SwapVertices exchanges the spine positions of two vertices (by
// vertex index) and invalidates the crossing cache. Swapping a vertex
// with itself is a no-op on both arrays.
func (emb *Embedding) SwapVertices(v1, v2 int) {
	emb.vertexOnSpine[v1], emb.vertexOnSpine[v2] = emb.vertexOnSpine[v2], emb.vertexOnSpine[v1]
	emb.spine[emb.vertexOnSpine[v1]] = v1
	emb.spine[emb.vertexOnSpine[v2]] = v2
	emb.InvalidateCrossings()
}

// SwapPositions exchanges the vertices at two spine positions.
func (emb *Embedding) SwapPositions(p1, p2 int) {
	emb.SwapVertices(emb.spine[p1], emb.spine[p2])
}

// MoveVertexTo shifts the vertex at oldPosition to newPosition via
// sequential adjacent swaps. The sequential-swap semantics (rather
// than a rotation) are kept for reproducibility of RNG-coupled
// callers. Moving to the same position is a no-op.
//
// Complexity: O(|newPosition - oldPosition|).
func (emb *Embedding) MoveVertexTo(oldPosition, newPosition int) {
	if newPosition < oldPosition {
		for i := oldPosition; i > newPosition; i-- {
			emb.SwapVertices(emb.spine[i], emb.spine[i-1])
		}
	} else {
		for i := oldPosition; i < newPosition; i++ {
			emb.SwapVertices(emb.spine[i], emb.spine[i+1])
		}
	}
	emb.InvalidateCrossings()
}

// SetSpine replaces the spine with the given values (position →
// vertex), recomputes the inverse and invalidates the crossing cache.
// The input must be a permutation of [0,n); it is copied.
func (emb *Embedding) SetSpine(spine []int) {
	copy(emb.spine, spine)
	for i, v := range emb.spine {
		emb.vertexOnSpine[v] = i
	}
	emb.InvalidateCrossings()
}

// SetVertexOnSpine replaces the inverse spine with the given values
// (vertex → position), recomputes the spine and invalidates the
// crossing cache. The input must be a permutation of [0,n); it is
// copied.
func (emb *Embedding) SetVertexOnSpine(vertexOnSpine []int) {
	copy(emb.vertexOnSpine, vertexOnSpine)
	for v, p := range emb.vertexOnSpine {
		emb.spine[p] = v
	}
	emb.InvalidateCrossings()
}

// SetDistribution replaces the page distribution (edge → page) and
// invalidates the crossing cache. The input is copied; PendingPage
// entries are allowed transiently during heuristic construction.
func (emb *Embedding) SetDistribution(distribution []int) {
	copy(emb.distribution, distribution)
	emb.InvalidateCrossings()
}

// MarkDistributionPending resets every edge to PendingPage. Used by
// heuristics that place edges incrementally.
func (emb *Embedding) MarkDistributionPending() {
	for i := range emb.distribution {
		emb.distribution[i] = PendingPage
	}
	emb.InvalidateCrossings()
}

// FillDistribution puts every edge on the given page.
func (emb *Embedding) FillDistribution(page int) {
	for i := range emb.distribution {
		emb.distribution[i] = page
	}
	emb.InvalidateCrossings()
}
