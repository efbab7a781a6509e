package greedy

import (
	"fmt"

	"github.com/avermeer/pagecross/embedding"
)

// SwapGain computes the change in crossings caused by swapping the two
// adjacent spine positions left and right (right = left+1, or the
// wrap-around pair left = n-1, right = 0) — without touching the
// embedding or its crossing cache. A positive gain means the swap
// removes crossings.
//
// Only pairs of one edge per swapped vertex, on the same page, with
// distinct other endpoints can change: their relative order falls into
// one of seven cases, each crossing either before the swap or after.
// Edges incident to both swapped vertices contribute nothing.
//
// Passing non-adjacent positions is a programmer error and panics.
//
// Complexity: O(deg(left) · deg(right)).
func SwapGain(emb *embedding.Embedding, left, right int) int64 {
	n := emb.N()
	if left+1 != right && !(left == n-1 && right == 0) {
		panic(fmt.Sprintf("greedy: SwapGain on non-adjacent positions %d, %d", left, right))
	}

	g := emb.Graph()
	leftVertex := emb.VertexAt(left)
	rightVertex := emb.VertexAt(right)
	wraps := left == n-1 && right == 0

	var xBefore, xAfter int64

	for _, le := range g.IncidentEdges(leftVertex) {
		lPage := emb.PageOf(le)
		lOtherPos := emb.PositionOf(g.Edge(le).Other(leftVertex))
		if lOtherPos == right {
			continue // incident to both: no crossing possible
		}

		for _, re := range g.IncidentEdges(rightVertex) {
			if re == le || emb.PageOf(re) != lPage {
				continue
			}
			rOtherPos := emb.PositionOf(g.Edge(re).Other(rightVertex))
			if rOtherPos == left || rOtherPos == lOtherPos {
				continue // shared endpoint: no crossing possible
			}

			if wraps {
				// arcs l2–l1 and r1–r2 with l1 at the end, r1 at the front
				if lOtherPos < rOtherPos {
					xBefore++ // r1 … l2 … r2 … l1
				} else {
					xAfter++ // r1 … r2 … l2 … l1
				}
				continue
			}

			if lOtherPos < left {
				if rOtherPos < right {
					if rOtherPos < lOtherPos {
						xAfter++ // r2 … l2 … l1 r1
					} else {
						xBefore++ // l2 … r2 … l1 r1
					}
				} else {
					xAfter++ // l2 … l1 r1 … r2
				}
			} else {
				if rOtherPos < right {
					xBefore++ // r2 … l1 r1 … l2
				} else if rOtherPos < lOtherPos {
					xAfter++ // l1 r1 … r2 … l2
				} else {
					xBefore++ // l1 r1 … l2 … r2
				}
			}
		}
	}

	return xBefore - xAfter
}
