package embedding

import "sort"

// Sweep is the open-edge counter: it walks the spine left to right,
// keeps a stack of open edges per page, and charges a closing edge one
// crossing for every edge still open above it on its page.
//
// Open edges are pushed in the "as embedded" outgoing order
// (CompareEdgesOutgoing), and the arriving edges of a vertex are
// closed shortest-first; together these make the pop-until-found scan
// count exactly the interleaving pairs.
type Sweep struct{}

// Count implements Counter.
//
// Complexity: O(m log m + crossings).
func (Sweep) Count(emb *Embedding) int64 {
	m := emb.M()
	if m == 0 {
		return 0
	}
	n := emb.N()
	k := emb.K()

	// Edges in outgoing "as embedded" order.
	sorted := make([]int, m)
	for i := range sorted {
		sorted[i] = i
	}
	sort.Slice(sorted, func(a, b int) bool {
		return emb.CompareEdgesOutgoing(sorted[a], sorted[b]) < 0
	})

	var crossings int64
	// open: per-page stacks of open edge ids;
	// toClose: per vertex, the edges ending there in opening order.
	open := make([][]int, k)
	toClose := make([][]int, n)
	next := 0
	for pos := 0; pos < n; pos++ {
		v := emb.spine[pos]

		// Close the edges arriving at v, shortest (latest opened) first.
		arriving := toClose[v]
		for i := len(arriving) - 1; i >= 0; i-- {
			e := arriving[i]
			stack := open[emb.distribution[e]]
			for j := len(stack) - 1; j >= 0; j-- {
				if stack[j] == e {
					open[emb.distribution[e]] = append(stack[:j], stack[j+1:]...)
					break
				}
				crossings++
			}
		}
		toClose[v] = nil

		// Open the edges starting at this position.
		for next < m && emb.SmallerEndpointPosition(sorted[next]) == pos {
			e := sorted[next]
			ge := emb.Graph().Edge(e)
			other := ge.U
			if emb.vertexOnSpine[ge.U] == pos {
				other = ge.V
			}
			toClose[other] = append(toClose[other], e)
			open[emb.distribution[e]] = append(open[emb.distribution[e]], e)
			next++
		}
	}

	return crossings
}

// CountPage implements Counter. It runs the same sweep restricted to
// one page, attaching each vertex's incident page edges in their
// cyclic order around the vertex (CompareEdgesSharingEndpoint).
//
// Complexity: O(n + m log Δ + crossings on the page).
func (Sweep) CountPage(emb *Embedding, page int) int64 {
	var crossings int64
	var open []int
	n := emb.N()
	g := emb.Graph()

	local := make([]int, 0, 8)
	for pos := 0; pos < n; pos++ {
		v := emb.spine[pos]

		local = local[:0]
		for _, e := range g.IncidentEdges(v) {
			if emb.distribution[e] == page {
				local = append(local, e)
			}
		}
		p := pos
		sort.Slice(local, func(a, b int) bool {
			return emb.CompareEdgesSharingEndpoint(local[a], local[b], p) < 0
		})

		for _, e := range local {
			if emb.vertexOnSpine[g.Edge(e).Other(v)] < pos {
				// e closes here and crosses every edge still open above it
				for j := len(open) - 1; j >= 0; j-- {
					if open[j] == e {
						open = append(open[:j], open[j+1:]...)
						break
					}
					crossings++
				}
			} else {
				open = append(open, e)
			}
		}
	}

	return crossings
}

func (Sweep) String() string { return "sweep" }
