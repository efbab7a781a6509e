package embedding

// Spine-geometry helpers: the interleave predicate, endpoint position
// accessors, edge lengths, and the three edge comparators the counters
// and greedy heuristics are built on.

// CanPositionsCross reports whether an edge spanning spine positions
// (u,v) and one spanning (x,y) interleave, i.e. would cross if drawn
// on the same page. Endpoint order within a pair does not matter.
// Negative (pending) positions never cross.
func CanPositionsCross(u, v, x, y int) bool {
	if u > v {
		u, v = v, u
	}
	if x > y {
		x, y = y, x
	}
	if u < 0 || x < 0 {
		return false
	}

	return (u < x && x < v && v < y) || (x < u && u < y && y < v)
}

// CanEdgesCross reports whether the two edges (by id) interleave on
// the current spine. Page assignment is ignored; pages are combined at
// the counter level.
func (emb *Embedding) CanEdgesCross(e1, e2 int) bool {
	g := emb.Graph()
	a := g.Edge(e1)
	b := g.Edge(e2)

	return CanPositionsCross(
		emb.vertexOnSpine[a.U], emb.vertexOnSpine[a.V],
		emb.vertexOnSpine[b.U], emb.vertexOnSpine[b.V])
}

// SmallerEndpointPosition returns the smaller spine position of the
// edge's two endpoints.
func (emb *Embedding) SmallerEndpointPosition(edge int) int {
	e := emb.Graph().Edge(edge)
	pu := emb.vertexOnSpine[e.U]
	pv := emb.vertexOnSpine[e.V]
	if pu < pv {
		return pu
	}

	return pv
}

// LargerEndpointPosition returns the larger spine position of the
// edge's two endpoints.
func (emb *Embedding) LargerEndpointPosition(edge int) int {
	e := emb.Graph().Edge(edge)
	pu := emb.vertexOnSpine[e.U]
	pv := emb.vertexOnSpine[e.V]
	if pu > pv {
		return pu
	}

	return pv
}

// EdgeLength returns the spine distance between the edge's endpoints.
func (emb *Embedding) EdgeLength(edge int) int {
	return emb.LargerEndpointPosition(edge) - emb.SmallerEndpointPosition(edge)
}

// EdgeChordLength returns the edge length measured as a chord of the
// circular spine, i.e. at most n/2.
func (emb *Embedding) EdgeChordLength(edge int) int {
	l := emb.EdgeLength(edge)
	if l > emb.N()/2 {
		return emb.N() - l
	}

	return l
}

// CompareEdges orders two edges by (smaller endpoint position, larger
// endpoint position), both ascending.
func (emb *Embedding) CompareEdges(e1, e2 int) int {
	s1, s2 := emb.SmallerEndpointPosition(e1), emb.SmallerEndpointPosition(e2)
	if s1 != s2 {
		if s1 < s2 {
			return -1
		}

		return 1
	}
	l1, l2 := emb.LargerEndpointPosition(e1), emb.LargerEndpointPosition(e2)
	if l1 < l2 {
		return -1
	}
	if l1 > l2 {
		return 1
	}

	return 0
}

// CompareEdgesOutgoing orders two edges by smaller endpoint position
// ascending; edges sharing the smaller endpoint are ordered with the
// LARGER larger-endpoint position first. The tie-break sign is the
// opposite of CompareEdges: it yields the cyclic "as embedded" order
// of the arcs leaving a shared endpoint, and the sweep counter's
// open-stack discipline depends on it.
func (emb *Embedding) CompareEdgesOutgoing(e1, e2 int) int {
	s1, s2 := emb.SmallerEndpointPosition(e1), emb.SmallerEndpointPosition(e2)
	if s1 != s2 {
		if s1 < s2 {
			return -1
		}

		return 1
	}
	l1, l2 := emb.LargerEndpointPosition(e1), emb.LargerEndpointPosition(e2)
	if l1 < l2 {
		return 1
	}
	if l1 > l2 {
		return -1
	}

	return 0
}

// CompareEdgesSharingEndpoint orders two edges incident to the vertex
// at the given spine position in the cyclic order in which their arcs
// are attached to that vertex: edges arriving from the left before
// edges leaving to the right, shorter arrivals before longer ones,
// longer departures before shorter ones.
func (emb *Embedding) CompareEdgesSharingEndpoint(e1, e2, endpointPosition int) int {
	s1, s2 := emb.SmallerEndpointPosition(e1), emb.SmallerEndpointPosition(e2)
	switch {
	case s1 < endpointPosition && s2 < endpointPosition:
		// both arrive from the left: farther start attaches later
		if s1 < s2 {
			return 1
		}
		if s1 > s2 {
			return -1
		}
	case s1 < endpointPosition || s2 < endpointPosition:
		// arrivals precede departures
		if s1 < s2 {
			return -1
		}
		if s1 > s2 {
			return 1
		}
	default:
		// both depart to the right: farther end attaches earlier
		l1, l2 := emb.LargerEndpointPosition(e1), emb.LargerEndpointPosition(e2)
		if l1 < l2 {
			return 1
		}
		if l1 > l2 {
			return -1
		}
	}

	return 0
}

// EdgeIndicesOnPage returns the ids of all edges on the given page,
// in ascending id order. Allocates the result.
func (emb *Embedding) EdgeIndicesOnPage(page int) []int {
	count := 0
	for _, p := range emb.distribution {
		if p == page {
			count++
		}
	}
	out := make([]int, 0, count)
	for e, p := range emb.distribution {
		if p == page {
			out = append(out, e)
		}
	}

	return out
}

// CountEdgesOnPage returns how many edges the given page holds.
func (emb *Embedding) CountEdgesOnPage(page int) int {
	count := 0
	for _, p := range emb.distribution {
		if p == page {
			count++
		}
	}

	return count
}

// EdgesGroupedByPage buckets all edge ids by page with one counting
// pass. Result slice i holds page i's edges in ascending id order.
func (emb *Embedding) EdgesGroupedByPage() [][]int {
	k := emb.K()
	sizes := make([]int, k)
	for _, p := range emb.distribution {
		sizes[p]++
	}
	out := make([][]int, k)
	for p := 0; p < k; p++ {
		out[p] = make([]int, 0, sizes[p])
	}
	for e, p := range emb.distribution {
		out[p] = append(out[p], e)
	}

	return out
}
