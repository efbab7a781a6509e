package combined

import "github.com/avermeer/pagecross/embedding"

// FullGreedyConnectivity grows the spine with the connectivity
// selector (most placed neighbors, ties broken by fewer unplaced
// neighbors), inserts each vertex at the internal position minimizing
// the crossings its new edges can be given across all pages, and
// immediately pages those edges greedily at the chosen position.
// The selector and placer are fully deterministic.
type FullGreedyConnectivity struct{}

// Embed implements Algorithm. Assumes a connected graph for sensible
// results.
//
// Complexity: O(n²·m̄·k) where m̄ is the placed-edge count per step.
func (a FullGreedyConnectivity) Embed(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}
	if emb.K() == 1 {
		return ErrSinglePage
	}

	g := emb.Graph()
	n := emb.N()
	k := emb.K()
	b := newBuilder(emb)

	placedNeighbors := make([]int, n)
	unplacedNeighbors := make([]int, n)
	placedVertex := make([]bool, n)
	for v := 0; v < n; v++ {
		unplacedNeighbors[v] = g.Degree(v)
	}
	markPlaced := func(v int) {
		for _, u := range g.Neighbors(v) {
			placedNeighbors[u]++
			unplacedNeighbors[u]--
		}
		placedVertex[v] = true
	}
	selectVertex := func() int {
		best, most, unplaced := -1, -1, -1
		for v := 0; v < n; v++ {
			if placedVertex[v] {
				continue
			}
			if placedNeighbors[v] > most ||
				(placedNeighbors[v] == most && unplacedNeighbors[v] < unplaced) {
				most = placedNeighbors[v]
				unplaced = unplacedNeighbors[v]
				best = v
			}
		}

		return best
	}

	spine := make([]int, 0, n)
	posOf := make([]int, n)

	start := selectVertex()
	markPlaced(start)
	spine = append(spine, start)

	for i := 1; i < n; i++ {
		vertex := selectVertex()

		for j := range posOf {
			posOf[j] = -1
		}
		for j, w := range spine {
			posOf[w] = j
		}

		newEdges := make([]int, 0, g.Degree(vertex))
		for _, e := range g.IncidentEdges(vertex) {
			if placedVertex[g.Edge(e).Other(vertex)] {
				newEdges = append(newEdges, e)
			}
		}

		position := bestPositionAndPages(emb, b, spine, posOf, vertex, newEdges, k)

		spine = append(spine, 0)
		copy(spine[position+1:], spine[position:])
		spine[position] = vertex
		markPlaced(vertex)
	}

	for i, v := range spine {
		b.position[v] = i
	}

	return b.commit(emb)
}

// bestPositionAndPages scores every insertion gap: for each new edge
// it accumulates, per page and gap, the crossings with placed edges,
// takes the per-gap minimum over pages, and sums over the new edges.
// The last gap attaining the minimum wins; the new edges are then
// paged greedily against the shifted positions. Positions in b are
// updated for the insertion shift by the caller at the end, so this
// works entirely on the local spine/posOf view.
func bestPositionAndPages(emb *embedding.Embedding, b *builder, spine, posOf []int,
	vertex int, newEdges []int, k int) int {
	g := emb.Graph()
	gaps := len(spine) + 1
	crossingsAt := make([]int, gaps)

	for _, uv := range newEdges {
		posU := posOf[g.Edge(uv).Other(vertex)]

		perPage := make([][]int, k)
		for p := range perPage {
			perPage[p] = make([]int, gaps)
		}

		for _, xy := range b.placed {
			e := g.Edge(xy)
			posX, posY := posOf[e.U], posOf[e.V]
			if posX > posY {
				posX, posY = posY, posX
			}
			page := b.pages[xy]

			if posU == posX || posU == posY {
				continue
			}
			if posU < posX || posU > posY {
				for i := posX + 1; i <= posY; i++ {
					perPage[page][i]++
				}
			} else {
				for i := 0; i <= posX; i++ {
					perPage[page][i]++
				}
				for i := posY + 1; i < gaps; i++ {
					perPage[page][i]++
				}
			}
		}

		for i := 0; i < gaps; i++ {
			min := perPage[0][i]
			for p := 1; p < k; p++ {
				if perPage[p][i] < min {
					min = perPage[p][i]
				}
			}
			crossingsAt[i] += min
		}
	}

	best, min := 0, int(^uint(0)>>1)
	for i, c := range crossingsAt {
		if c <= min {
			min = c
			best = i
		}
	}

	// page the new edges against the post-insertion positions
	for _, uv := range newEdges {
		posU := posOf[g.Edge(uv).Other(vertex)]
		if posU >= best {
			posU++
		}

		crossingsPerPage := make([]int, k)
		for _, xy := range b.placed {
			e := g.Edge(xy)
			posX, posY := posOf[e.U], posOf[e.V]
			if posX >= best {
				posX++
			}
			if posY >= best {
				posY++
			}
			if embedding.CanPositionsCross(posU, best, posX, posY) {
				crossingsPerPage[b.pages[xy]]++
			}
		}

		minPage, minCrossings := 0, int(^uint(0)>>1)
		for p, c := range crossingsPerPage {
			if c <= minCrossings {
				minCrossings = c
				minPage = p
			}
		}
		b.pages[uv] = minPage
		b.placed = append(b.placed, uv)
	}

	return best
}
