package embedding

import "sort"

// DivideAndConquer is the default counter. Per page it computes, for
// every edge, the number of edges whose smaller endpoint lies strictly
// between its endpoints — an upper bound that counts each crossing
// pair once plus each nested (non-crossing) pair once — and then
// subtracts the nested pairs.
//
// Nested pairs on an arc drawing are exactly the pairs that cross when
// the page is redrawn as a two-layer bipartite graph (each vertex
// split into an outgoing and an incoming copy, edges directed from the
// smaller to the larger spine position). Those bipartite crossings are
// counted by a modified merge sort over the same sorted edge list:
// ordering is by larger endpoint position ascending with ties broken
// by smaller endpoint position descending, and every time a right-half
// edge is merged in, the remaining left-half edges are inversions.
type DivideAndConquer struct{}

// Count implements Counter.
//
// Complexity: O(m log m + X) where X is the total page size.
func (dc DivideAndConquer) Count(emb *Embedding) int64 {
	var sum int64
	for _, edges := range emb.EdgesGroupedByPage() {
		sum += dc.countOnePage(emb, edges)
	}

	return sum
}

// CountPage implements Counter.
func (dc DivideAndConquer) CountPage(emb *Embedding, page int) int64 {
	return dc.countOnePage(emb, emb.EdgeIndicesOnPage(page))
}

// countOnePage counts the crossings among the given edges, which must
// all lie on one page. The slice is resorted in place.
func (dc DivideAndConquer) countOnePage(emb *Embedding, edges []int) int64 {
	if len(edges) <= 1 {
		return 0
	}

	sort.Slice(edges, func(a, b int) bool {
		return emb.CompareEdges(edges[a], edges[b]) < 0
	})

	// startsBefore[p] = number of edges whose smaller endpoint lies at
	// a position <= p, after the prefix pass.
	startsBefore := make([]int64, emb.N())
	for _, e := range edges {
		startsBefore[emb.SmallerEndpointPosition(e)]++
	}
	for i := 1; i < len(startsBefore); i++ {
		startsBefore[i] += startsBefore[i-1]
	}

	// Upper bound: edges starting strictly between the endpoints.
	maxPosition := emb.N() - 1
	var count int64
	for _, e := range edges {
		s := emb.SmallerEndpointPosition(e)
		t := emb.LargerEndpointPosition(e)
		if s == maxPosition {
			continue
		}
		count += startsBefore[t-1] - startsBefore[s]
	}

	// Subtract the nested pairs via the bipartite inversion count.
	count -= dc.bipartiteInversions(emb, edges, make([]int, len(edges)))

	return count
}

// bipartiteInversions merge-sorts in (already sorted by
// (smaller,larger) ascending) into out under the bipartite order and
// returns the number of inversions between the two orders.
func (dc DivideAndConquer) bipartiteInversions(emb *Embedding, in, out []int) int64 {
	if len(in) == 1 {
		out[0] = in[0]
		return 0
	}

	leftSize := len(in) / 2
	rightSize := len(in) - leftSize
	leftChunk := make([]int, leftSize)
	rightChunk := make([]int, rightSize)

	count := dc.bipartiteInversions(emb, in[:leftSize], leftChunk)
	count += dc.bipartiteInversions(emb, in[leftSize:], rightChunk)

	i, j := 0, 0
	for i < leftSize && j < rightSize {
		leftEnd := emb.LargerEndpointPosition(leftChunk[i])
		rightEnd := emb.LargerEndpointPosition(rightChunk[j])
		if leftEnd < rightEnd ||
			(leftEnd == rightEnd &&
				emb.SmallerEndpointPosition(leftChunk[i]) >= emb.SmallerEndpointPosition(rightChunk[j])) {
			out[i+j] = leftChunk[i]
			i++
		} else {
			out[i+j] = rightChunk[j]
			j++
			count += int64(leftSize - i)
		}
	}
	for ; i < leftSize; i++ {
		out[rightSize+i] = leftChunk[i]
	}
	for ; j < rightSize; j++ {
		out[leftSize+j] = rightChunk[j]
	}

	return count
}

func (DivideAndConquer) String() string { return "divide-and-conquer" }
