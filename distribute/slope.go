package distribute

import "github.com/avermeer/pagecross/embedding"

// Slope buckets edges by slope: drawing the spine positions on a
// circle, two edges have a similar slope iff the sums of their
// endpoint positions are close modulo n. The integer angle
//
//	angle(e) = smallerPos(e) + largerPos(e), folded into [1,n]
//
// avoids any trigonometry; a precomputed angle→page map splits [1,n]
// into k roughly equal contiguous ranges.
type Slope struct{}

// Distribute implements Algorithm.
//
// Complexity: O(n + m).
func (a Slope) Distribute(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}
	if singlePage(emb) {
		return nil
	}

	n := emb.N()
	angleToPage := buildAngleToPageMap(n, emb.K())

	distribution := emb.Distribution()
	for e := range distribution {
		angle := emb.SmallerEndpointPosition(e) + emb.LargerEndpointPosition(e)
		if angle > n {
			angle -= n
		}
		distribution[e] = angleToPage[angle-1]
	}
	emb.SetDistribution(distribution)

	return nil
}

// buildAngleToPageMap partitions the angles 1..n into k contiguous
// ranges of size n/k (up to rounding; the epsilon keeps exact
// multiples on the lower page).
func buildAngleToPageMap(n, k int) []int {
	const epsilon = 1e-9
	angleToPage := make([]int, n)
	sectionSize := float64(n)/float64(k) + epsilon
	currentSize := sectionSize
	currentPage := 0
	for i := 1; i <= n; i++ {
		if float64(i) < currentSize {
			angleToPage[i-1] = currentPage
		} else {
			currentPage++
			angleToPage[i-1] = currentPage
			currentSize += sectionSize
		}
	}

	return angleToPage
}
