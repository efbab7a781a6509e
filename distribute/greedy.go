package distribute

import (
	"math/rand"
	"sort"

	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// Ordering selects the sequence in which Greedy processes the edges.
type Ordering int

// The edge orderings.
const (
	// RowMajor orders by smaller endpoint vertex index, then larger.
	RowMajor Ordering = iota
	// RowMajorBySpine is row-major over current spine positions.
	RowMajorBySpine
	// RandomOrder shuffles the edges uniformly.
	RandomOrder
	// ELen orders by decreasing spine length, random tie order.
	ELen
	// CeilFloor interleaves length buckets from the middle outward.
	CeilFloor
	// Circular is the Satsangi circular ordering over diameter pairs.
	Circular
)

// Greedy processes the edges in the configured order and puts each on
// the page where it crosses the fewest already placed edges (ties go
// to the lowest page index).
type Greedy struct {
	Order Ordering
	Rand  *rand.Rand
}

// Distribute implements Algorithm.
//
// Complexity: O(m² + m·k) plus the ordering.
func (a Greedy) Distribute(emb *embedding.Embedding) error {
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

	order := a.Order.edgeOrder(emb, r)
	k := emb.K()
	placed := make([]bool, emb.M())
	distribution := emb.Distribution()

	var totalCrossings int64
	crossingsOnPage := make([]int64, k)
	for _, e := range order {
		for p := range crossingsOnPage {
			crossingsOnPage[p] = 0
		}
		for other, isPlaced := range placed {
			if isPlaced && emb.CanEdgesCross(e, other) {
				crossingsOnPage[distribution[other]]++
			}
		}

		bestPage := 0
		minCrossings := crossingsOnPage[0]
		for p := 1; p < k; p++ {
			if crossingsOnPage[p] < minCrossings {
				minCrossings = crossingsOnPage[p]
				bestPage = p
			}
		}

		totalCrossings += minCrossings
		distribution[e] = bestPage
		placed[e] = true
	}

	emb.SetDistribution(distribution)
	emb.SetCrossings(totalCrossings)

	return nil
}

// edgeOrder materializes the edge id sequence for the ordering.
func (o Ordering) edgeOrder(emb *embedding.Embedding, r *rand.Rand) []int {
	switch o {
	case RowMajorBySpine:
		return rowMajorBySpineOrder(emb)
	case RandomOrder:
		order := sequence(emb.M())
		rng.Shuffle(order, r)

		return order
	case ELen:
		order := sequence(emb.M())
		rng.Shuffle(order, r)
		sort.SliceStable(order, func(x, y int) bool {
			return emb.EdgeLength(order[x]) > emb.EdgeLength(order[y])
		})

		return order
	case CeilFloor:
		return ceilFloorOrder(emb)
	case Circular:
		return circularOrder(emb)
	default: // RowMajor
		return rowMajorOrder(emb)
	}
}

func sequence(m int) []int {
	s := make([]int, m)
	for i := range s {
		s[i] = i
	}

	return s
}

// rowMajorOrder: all edges (0,·), then (1,·), ... by smaller endpoint
// vertex index, within a vertex by larger endpoint vertex index.
func rowMajorOrder(emb *embedding.Embedding) []int {
	g := emb.Graph()
	order := sequence(emb.M())
	sort.SliceStable(order, func(x, y int) bool {
		ex, ey := g.Edge(order[x]), g.Edge(order[y])
		if ex.U != ey.U {
			return ex.U < ey.U
		}

		return ex.V < ey.V
	})

	return order
}

// rowMajorBySpineOrder: per spine position, the edges leaving to the
// right sorted by the other endpoint's position.
func rowMajorBySpineOrder(emb *embedding.Embedding) []int {
	g := emb.Graph()
	order := make([]int, 0, emb.M())
	outgoing := make([]int, 0, 8)
	for pos := 0; pos < emb.N(); pos++ {
		v := emb.VertexAt(pos)
		outgoing = outgoing[:0]
		for _, e := range g.IncidentEdges(v) {
			if emb.PositionOf(g.Edge(e).Other(v)) > pos {
				outgoing = append(outgoing, e)
			}
		}
		sort.SliceStable(outgoing, func(x, y int) bool {
			return emb.PositionOf(g.Edge(outgoing[x]).Other(v)) <
				emb.PositionOf(g.Edge(outgoing[y]).Other(v))
		})
		order = append(order, outgoing...)
	}

	return order
}

// ceilFloorOrder: bucket edges by spine length, then emit the middle
// bucket first and alternate outward.
func ceilFloorOrder(emb *embedding.Embedding) []int {
	n := emb.N()
	if n <= 1 {
		return nil
	}

	buckets := make([][]int, n-1)
	for e := 0; e < emb.M(); e++ {
		buckets[emb.EdgeLength(e)-1] = append(buckets[emb.EdgeLength(e)-1], e)
	}

	order := make([]int, 0, emb.M())
	midBucket := n/2 - 1
	order = append(order, buckets[midBucket]...)
	for i := 1; i < n/2; i++ {
		order = append(order, buckets[midBucket-i]...)
		order = append(order, buckets[midBucket+i]...)
	}
	if n%2 != 0 {
		order = append(order, buckets[n-2]...)
	}

	return order
}

// circularOrder walks diameter pairs of the vertex circle: for each
// anchor, alternately step clockwise and counter-clockwise and emit
// the edges encountered. Each zigzag starts with the chord from the
// anchor to its clockwise neighbour and every later chord spans one
// more step, so shorter chords come first.
func circularOrder(emb *embedding.Embedding) []int {
	g := emb.Graph()
	n := g.N()
	nCeil := (n + 1) / 2

	used := make([]bool, emb.M())
	order := make([]int, 0, emb.M())
	take := func(u, v int) {
		if id, ok := g.EdgeIndex(u, v); ok && !used[id] {
			used[id] = true
			order = append(order, id)
		}
	}

	for anchor := 0; anchor < nCeil; anchor++ {
		v := anchor
		var u int
		for i := 1; i < nCeil; i++ {
			u = (anchor + i) % n
			take(v, u)
			v = (n + anchor - i) % n
			take(u, v)
		}
		if n%2 == 0 {
			take(v, (anchor+n/2)%n)
		}
	}

	// sweep up anything the chord walk skipped so every edge is placed
	for e := 0; e < emb.M(); e++ {
		if !used[e] {
			order = append(order, e)
		}
	}

	return order
}
