package greedy

import "github.com/avermeer/pagecross/embedding"

// BestPageForEdge moves the edge to the page where it crosses the
// fewest other edges and returns the gain. The edge stays on its
// current page unless another page is strictly better; among strictly
// better pages with equal counts the lowest index wins. The cached
// crossing count is updated in closed form.
//
// Complexity: O(m + k).
func BestPageForEdge(emb *embedding.Embedding, edge int) int64 {
	startCrossings := emb.Crossings()

	crossingsPerPage := make([]int64, emb.K())
	for other := 0; other < emb.M(); other++ {
		if other == edge {
			continue
		}
		if emb.CanEdgesCross(other, edge) {
			crossingsPerPage[emb.PageOf(other)]++
		}
	}

	oldPage := emb.PageOf(edge)
	oldCrossings := crossingsPerPage[oldPage]

	bestPage := oldPage
	bestCrossings := oldCrossings
	for p, c := range crossingsPerPage {
		if c < bestCrossings {
			bestCrossings = c
			bestPage = p
		}
	}

	emb.MoveEdgeToPage(edge, bestPage)
	gain := oldCrossings - bestCrossings
	emb.SetCrossings(startCrossings - gain)

	return gain
}

// BestPageForEdges runs BestPageForEdge once per edge, in the given
// order (edge indices), and returns the total gain.
//
// Complexity: O(m² + m·k).
func BestPageForEdges(emb *embedding.Embedding, order []int) int64 {
	var gain int64
	for _, e := range order {
		gain += BestPageForEdge(emb, e)
	}

	return gain
}

// ExhaustiveDistributionOptimization repeats BestPageForEdges rounds
// until one yields no gain, and returns the overall gain.
func ExhaustiveDistributionOptimization(emb *embedding.Embedding, order []int) int64 {
	var overallGain int64
	for {
		roundGain := BestPageForEdges(emb, order)
		if roundGain <= 0 {
			break
		}
		overallGain += roundGain
	}

	return overallGain
}

// RepageIncidentEdges re-pages every edge incident to the vertex and
// returns the total gain.
//
// Complexity: O(Δ·(m + k)).
func RepageIncidentEdges(emb *embedding.Embedding, vertex int) int64 {
	var gain int64
	for _, e := range emb.Graph().IncidentEdges(vertex) {
		gain += BestPageForEdge(emb, e)
	}

	return gain
}
