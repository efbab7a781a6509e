package distribute

import (
	"fmt"
	"math/rand"

	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// EarDecomposition distributes edges by decomposing the conflict
// graph into ears: a DFS is run over the conflict graph, every back
// edge closes an ear (the cycle through the unique tree path to the
// ancestor), and each ear's vertices — which are edges of the original
// graph — are paged along the ear. Interior ear vertices take the page
// with the fewest already-paged conflict neighbors; the end vertices
// take a random page distinct from the adjacent interior one.
// Isolated conflict vertices (edges that cross nothing) get uniform
// random pages.
type EarDecomposition struct {
	Rand *rand.Rand
}

// Distribute implements Algorithm.
//
// Complexity: O(m²) for the conflict graph plus O(m_c²) for the walk.
func (a EarDecomposition) Distribute(emb *embedding.Embedding) error {
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

	conflict, err := embedding.ConflictGraph(emb)
	if err != nil {
		return fmt.Errorf("distribute: conflict graph: %w", err)
	}

	w := &earWalker{
		conflict:       conflict,
		k:              emb.K(),
		rand:           r,
		visited:        make([]bool, conflict.N()),
		treeNode:       make([]bool, conflict.N()),
		edgeVisited:    make([]bool, conflict.M()),
		forward:        make([]bool, conflict.M()),
		currentDfsEdge: make([]int, conflict.N()),
		parent:         make([]int, conflict.N()),
		dependencies:   make([][]int, conflict.M()),
		distribution:   make([]int, conflict.N()),
	}
	for i := range w.currentDfsEdge {
		w.currentDfsEdge[i] = -1
		w.parent[i] = -1
		w.distribution[i] = embedding.PendingPage
	}

	connectedNodes := 0
	for v := 0; v < conflict.N(); v++ {
		if conflict.Degree(v) > 0 {
			connectedNodes++
		}
	}

	numVisited := 0
	for numVisited < connectedNodes {
		base := w.randomEdge()
		e := conflict.Edge(base)
		start, end := e.U, e.V

		w.visited[start] = true
		w.visited[end] = true
		if !w.treeNode[start] {
			w.treeNode[start] = true
			numVisited++
		}
		if !w.treeNode[end] {
			w.treeNode[end] = true
			numVisited++
		}
		w.forward[base] = true
		w.currentDfsEdge[start] = base
		w.parent[end] = base
		w.edgeVisited[base] = true
		w.paths = append(w.paths, []int{start, end})

		numVisited += w.dfs(end)

		w.placePaths()
		w.paths = w.paths[:0]
		copy(w.visited, w.treeNode)
		for i := range w.treeNode {
			if w.treeNode[i] {
				w.currentDfsEdge[i] = -1
			}
		}
		for i := range w.dependencies {
			w.dependencies[i] = w.dependencies[i][:0]
		}
	}

	// edges without conflicts can go anywhere
	for v := 0; v < conflict.N(); v++ {
		if conflict.Degree(v) == 0 {
			w.distribution[v] = r.Intn(w.k)
		}
	}

	emb.SetDistribution(w.distribution)

	return nil
}

// earWalker bundles the DFS state over the conflict graph. Vertices of
// the conflict graph are edge ids of the original graph.
type earWalker struct {
	conflict *core.Graph
	k        int
	rand     *rand.Rand

	visited        []bool
	treeNode       []bool
	edgeVisited    []bool
	forward        []bool  // per conflict edge: traversed U→V
	currentDfsEdge []int   // per vertex: tree edge the DFS left on, -1 if none
	parent         []int   // per vertex: tree edge it was discovered by, -1 if none
	dependencies   [][]int // per tree edge: back edges waiting on it
	paths          [][]int // collected ears (vertex sequences)
	distribution   []int
}

// startVertex returns the vertex the edge was traversed from.
func (w *earWalker) startVertex(edge int) int {
	e := w.conflict.Edge(edge)
	if w.forward[edge] {
		return e.U
	}

	return e.V
}

// randomEdge returns an incident edge of a random unvisited vertex
// with positive degree, advancing cyclically from a random start.
func (w *earWalker) randomEdge() int {
	v := w.rand.Intn(w.conflict.N())
	for w.visited[v] || w.conflict.Degree(v) == 0 {
		v = (v + 1) % w.conflict.N()
	}

	return w.conflict.IncidentEdges(v)[0]
}

// dfs explores from v; back edges are recorded as dependencies of the
// tree edge their ancestor is currently sitting on, and ears whose
// anchor already lies on processed tree structure are walked at once.
func (w *earWalker) dfs(v int) int {
	numVisited := 0

	for _, e := range w.conflict.IncidentEdges(v) {
		var next int
		if w.conflict.Edge(e).U == v {
			next = w.conflict.Edge(e).V
			if w.parent[v] != -1 && next == w.startVertex(w.parent[v]) {
				continue // the tree edge back to the parent
			}
			w.forward[e] = true
		} else {
			next = w.conflict.Edge(e).U
			if w.parent[v] != -1 && next == w.startVertex(w.parent[v]) {
				continue
			}
			w.forward[e] = false
		}

		if !w.visited[next] {
			w.parent[next] = e
			w.visited[next] = true
			w.currentDfsEdge[v] = e

			numVisited += w.dfs(next)
		} else if w.currentDfsEdge[next] != -1 {
			// back edge: an ear closes through next's outgoing tree edge
			wx := w.currentDfsEdge[next]
			w.dependencies[wx] = append(w.dependencies[wx], e)

			x := w.conflict.Edge(wx).Other(next)
			if w.treeNode[x] {
				numVisited += w.processEars(wx)
			}
		}
	}

	return numVisited
}

// processEars walks every ear waiting on the tree edge wx: from the
// back edge's start, follow parent edges until hitting processed tree
// structure, collecting the ear path, then recurse on the tree edges
// just consumed.
func (w *earWalker) processEars(wx int) int {
	numVisited := 0

	for _, vw := range w.dependencies[wx] {
		anchor := w.startVertex(wx)
		v := w.startVertex(vw)

		path := []int{anchor, v}
		var treeEdges []int
		if !w.treeNode[v] {
			w.treeNode[v] = true
			numVisited++
		}

		parentEdge := w.parent[v]
		u := w.startVertex(parentEdge)
		for !w.treeNode[u] {
			path = append(path, u)
			treeEdges = append(treeEdges, parentEdge)
			w.edgeVisited[parentEdge] = true
			w.treeNode[u] = true
			numVisited++

			parentEdge = w.parent[u]
			u = w.startVertex(parentEdge)
		}

		if !w.edgeVisited[parentEdge] {
			path = append(path, u)
			treeEdges = append(treeEdges, parentEdge)
			w.edgeVisited[parentEdge] = true
			if !w.treeNode[u] {
				w.treeNode[u] = true
				numVisited++
			}
		}
		w.paths = append(w.paths, path)

		for _, e := range treeEdges {
			numVisited += w.processEars(e)
		}
	}

	w.dependencies[wx] = w.dependencies[wx][:0]

	return numVisited
}

// placePaths pages the collected ears: interior vertices greedily,
// ends randomly but distinct from their interior neighbor.
func (w *earWalker) placePaths() {
	for _, path := range w.paths {
		p := w.rand.Intn(w.k)
		if w.distribution[path[0]] == embedding.PendingPage {
			for len(path) > 1 && w.distribution[path[1]] == p {
				p = (p + 1) % w.k
			}
			w.distribution[path[0]] = p
		}

		for i := 1; i < len(path)-1; i++ {
			if w.distribution[path[i]] == embedding.PendingPage {
				w.distribution[path[i]] = w.pickOptimalPage(path[i])
			}
		}

		last := len(path) - 1
		if w.distribution[path[last]] == embedding.PendingPage {
			p = w.rand.Intn(w.k)
			for p == w.distribution[path[last-1]] {
				p = (p + 1) % w.k
			}
			w.distribution[path[last]] = p
		}
	}
}

// pickOptimalPage returns the page with the fewest already-paged
// conflict neighbors of v.
func (w *earWalker) pickOptimalPage(v int) int {
	neighborsOnPage := make([]int, w.k)
	for _, u := range w.conflict.Neighbors(v) {
		if w.distribution[u] != embedding.PendingPage {
			neighborsOnPage[w.distribution[u]]++
		}
	}

	best := 0
	min := neighborsOnPage[0]
	for p := 1; p < w.k; p++ {
		if neighborsOnPage[p] < min {
			min = neighborsOnPage[p]
			best = p
		}
	}

	return best
}
