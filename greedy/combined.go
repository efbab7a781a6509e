package greedy

import "github.com/avermeer/pagecross/embedding"

// OptimizeVertexWithEdges finds the best position for the vertex at
// the given spine position while re-paging its incident edges at every
// candidate position, commits the best, and returns the gain.
//
// Complexity: O(n·(m + k + Δ²)).
func OptimizeVertexWithEdges(emb *embedding.Embedding, startPosition int) int64 {
	n := emb.N()
	vertex := emb.VertexAt(startPosition)
	bestPosition := startPosition

	// re-page at the current position first
	initialGain := RepageIncidentEdges(emb, vertex)
	gain := initialGain
	currentGain := initialGain

	// sweep right, re-paging at every stop
	for q := startPosition + 1; q < n; q++ {
		currentGain += SwapGain(emb, q-1, q)
		emb.SwapPositions(q-1, q)
		currentGain += RepageIncidentEdges(emb, vertex)

		if currentGain > gain {
			gain = currentGain
			bestPosition = q
		}
	}
	for q := n - 1; q > startPosition; q-- {
		emb.SwapPositions(q-1, q)
	}
	// re-page again so the gain accounting restarts from a clean state
	RepageIncidentEdges(emb, vertex)
	currentGain = initialGain

	// sweep left
	for q := startPosition - 1; q >= 0; q-- {
		currentGain += SwapGain(emb, q, q+1)
		emb.SwapPositions(q, q+1)
		currentGain += RepageIncidentEdges(emb, vertex)

		if currentGain > gain {
			gain = currentGain
			bestPosition = q
		}
	}
	for q := 0; q < startPosition; q++ {
		emb.SwapPositions(q, q+1)
	}

	// commit and settle the pages at the final position
	if bestPosition > startPosition {
		for q := startPosition + 1; q <= bestPosition; q++ {
			emb.SwapPositions(q-1, q)
		}
	} else if bestPosition < startPosition {
		for q := startPosition - 1; q >= bestPosition; q-- {
			emb.SwapPositions(q, q+1)
		}
	}
	RepageIncidentEdges(emb, vertex)

	return gain
}

// OptimizeAllVertices runs OptimizeVertexWithEdges once per vertex in
// the given order (vertex indices) and returns the total gain.
//
// Complexity: O(n²·m·Δ).
func OptimizeAllVertices(emb *embedding.Embedding, order []int) int64 {
	var gain int64
	for _, v := range order {
		gain += OptimizeVertexWithEdges(emb, emb.PositionOf(v))
	}

	return gain
}
