package greedy

import "github.com/avermeer/pagecross/embedding"

// BestPositionForVertex moves the vertex at the given spine position
// to its best position: sweep right accumulating swap gains, rewind,
// sweep left, rewind, then commit the swaps to the argmax position.
// The swap gains are closed-form, so the crossing cache is never
// recomputed along the way. Returns the gain (0 if the vertex stays).
//
// Complexity: O(n·Δ²).
func BestPositionForVertex(emb *embedding.Embedding, startPosition int) int64 {
	n := emb.N()
	bestPosition := startPosition
	var currentGain, gain int64

	// sweep right
	for q := startPosition + 1; q < n; q++ {
		currentGain += SwapGain(emb, q-1, q)
		emb.SwapPositions(q-1, q)
		if currentGain > gain {
			gain = currentGain
			bestPosition = q
		}
	}
	for q := n - 1; q > startPosition; q-- {
		emb.SwapPositions(q-1, q)
	}
	currentGain = 0

	// sweep left
	for q := startPosition - 1; q >= 0; q-- {
		currentGain += SwapGain(emb, q, q+1)
		emb.SwapPositions(q, q+1)
		if currentGain > gain {
			gain = currentGain
			bestPosition = q
		}
	}
	for q := 0; q < startPosition; q++ {
		emb.SwapPositions(q, q+1)
	}

	// commit
	if bestPosition > startPosition {
		for q := startPosition + 1; q <= bestPosition; q++ {
			emb.SwapPositions(q-1, q)
		}
	} else if bestPosition < startPosition {
		for q := startPosition - 1; q >= bestPosition; q-- {
			emb.SwapPositions(q, q+1)
		}
	}

	return gain
}

// BestPositionForVertices runs BestPositionForVertex once per vertex.
// order holds vertex indices (not spine positions); each vertex is
// looked up at its current position when its turn comes. Returns the
// total gain.
//
// Complexity: O(n²·Δ²).
func BestPositionForVertices(emb *embedding.Embedding, order []int) int64 {
	var gain int64
	for _, v := range order {
		gain += BestPositionForVertex(emb, emb.PositionOf(v))
	}

	return gain
}

// ExhaustiveSpineOptimization repeats BestPositionForVertices rounds
// until one yields no gain, updates the cached crossing count by the
// overall gain, and returns it.
func ExhaustiveSpineOptimization(emb *embedding.Embedding, order []int) int64 {
	startCrossings := emb.Crossings()

	var overallGain int64
	for {
		roundGain := BestPositionForVertices(emb, order)
		if roundGain <= 0 {
			break
		}
		overallGain += roundGain
	}

	emb.SetCrossings(startCrossings - overallGain)

	return overallGain
}
