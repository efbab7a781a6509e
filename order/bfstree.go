package order

import (
	"fmt"
	"math/rand"

	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// BFSTree computes a BFS spanning tree (forest, for disconnected
// input) of the graph and orders the vertices with a smallest-degree
// DFS on that tree — the crossing-free circular drawing of the tree.
type BFSTree struct {
	Rand *rand.Rand
}

// Apply implements Algorithm.
//
// Complexity: O(n + m) for the tree, O(n log n) for its ordering.
func (a BFSTree) Apply(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}

	g := emb.Graph()
	n := emb.N()
	r := a.Rand
	if r == nil {
		r = rng.New(0)
	}

	// BFS with random neighbor order, collecting tree edges.
	treePairs := make([][2]int, 0, n-1)
	visited := make([]bool, n)
	queue := make([]int, 0, n)
	numVisited := 0
	start := r.Intn(n)

	for numVisited < n {
		for visited[start] {
			start = (start + 1) % n
		}

		visited[start] = true
		queue = append(queue, start)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			numVisited++

			neighbors := g.Neighbors(v)
			perm := rng.Perm(len(neighbors), r)
			for _, i := range perm {
				u := neighbors[i]
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
					treePairs = append(treePairs, [2]int{v, u})
				}
			}
		}
	}

	// Order the tree with smallest-degree DFS; vertex indices are
	// shared with the original graph, so its spine is ours.
	tree, err := core.NewGraph(n, treePairs)
	if err != nil {
		return fmt.Errorf("order: bfs tree construction: %w", err)
	}
	treeProblem, err := core.NewProblem(tree, 1)
	if err != nil {
		return fmt.Errorf("order: bfs tree problem: %w", err)
	}
	treeEmb, err := embedding.New(treeProblem)
	if err != nil {
		return fmt.Errorf("order: bfs tree embedding: %w", err)
	}
	if err = (SmallestDegreeDFS{}).Apply(treeEmb); err != nil {
		return fmt.Errorf("order: bfs tree ordering: %w", err)
	}

	emb.SetSpine(treeEmb.Spine())

	return nil
}
