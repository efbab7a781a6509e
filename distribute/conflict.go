package distribute

import (
	"math/rand"

	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// Conflict enumerates every conflicting edge pair (two edges that
// interleave on the spine), shuffles the pairs, and walks them placing
// unplaced members on pages distinct from their partner's. Edges with
// no conflicts default to page 0.
type Conflict struct {
	Rand *rand.Rand
}

// Distribute implements Algorithm.
//
// Complexity: O(m²) pairs.
func (a Conflict) Distribute(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}
	if singlePage(emb) {
		return nil
	}

	r := a.Rand
	if r == nil {
		r = rng.New(0)
	}

	k := emb.K()
	m := emb.M()

	conflicts := make([][2]int, 0)
	for e1 := 0; e1 < m; e1++ {
		for e2 := e1 + 1; e2 < m; e2++ {
			if emb.CanEdgesCross(e1, e2) {
				conflicts = append(conflicts, [2]int{e1, e2})
			}
		}
	}
	shufflePairs(conflicts, r)

	distribution := make([]int, m)
	for i := range distribution {
		distribution[i] = embedding.PendingPage
	}

	for _, c := range conflicts {
		page1 := distribution[c[0]]
		page2 := distribution[c[1]]

		if page1 == embedding.PendingPage {
			page1 = rng.IntnExcluding(r, k, page2)
			distribution[c[0]] = page1
		}
		if page2 == embedding.PendingPage {
			distribution[c[1]] = rng.IntnExcluding(r, k, page1)
		}
	}

	for i := range distribution {
		if distribution[i] == embedding.PendingPage {
			distribution[i] = 0
		}
	}
	emb.SetDistribution(distribution)

	return nil
}

// shufflePairs is Fisher–Yates over the conflict list.
func shufflePairs(pairs [][2]int, r *rand.Rand) {
	for i := len(pairs) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		pairs[i], pairs[j] = pairs[j], pairs[i]
	}
}
