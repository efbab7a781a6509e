package order

import (
	"math/rand"
	"sort"

	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// RandomDFS orders vertices by a stack-based depth-first traversal.
// The root position is chosen uniformly inside the window and the
// unvisited neighbors of each popped vertex are pushed in random
// order. Disconnected graphs are handled by advancing the root
// cyclically to the next pending vertex.
type RandomDFS struct {
	// Rand is the randomness source; nil means the deterministic
	// default stream.
	Rand *rand.Rand
}

// Apply implements Algorithm by reordering the whole spine.
func (a RandomDFS) Apply(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}

	return a.ApplyWindow(emb, 0, emb.N())
}

// ApplyWindow implements Windowed.
//
// Complexity: O(n + m) plus the neighbor shuffles.
func (a RandomDFS) ApplyWindow(emb *embedding.Embedding, begin, end int) error {
	if err := checkWindow(emb, begin, end); err != nil {
		return err
	}
	if windowSize(emb.N(), begin, end) <= 1 {
		return nil
	}

	r := a.Rand
	if r == nil {
		r = rng.New(0)
	}

	rootPosition := randomWindowPosition(emb.N(), begin, end, r)
	dfsWindow(emb, begin, end, rootPosition, func(neighbors []int) {
		rng.Shuffle(neighbors, r)
	})

	return nil
}

// SmallestDegreeDFS orders vertices by a depth-first traversal rooted
// at the smallest-degree vertex of the window; neighbors are pushed in
// decreasing degree order so smaller degrees are explored first.
type SmallestDegreeDFS struct{}

// Apply implements Algorithm by reordering the whole spine.
func (a SmallestDegreeDFS) Apply(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}

	return a.ApplyWindow(emb, 0, emb.N())
}

// ApplyWindow implements Windowed.
//
// Complexity: O(n + m log Δ).
func (a SmallestDegreeDFS) ApplyWindow(emb *embedding.Embedding, begin, end int) error {
	if err := checkWindow(emb, begin, end); err != nil {
		return err
	}
	if windowSize(emb.N(), begin, end) <= 1 {
		return nil
	}

	g := emb.Graph()
	rootPosition := smallestDegreePosition(emb, begin, end)
	dfsWindow(emb, begin, end, rootPosition, func(neighbors []int) {
		// descending degree, so the smallest ends on top of the stack
		sort.SliceStable(neighbors, func(x, y int) bool {
			return g.Degree(neighbors[x]) > g.Degree(neighbors[y])
		})
	})

	return nil
}

// IDFS keeps the spine prefix before a uniformly random position and
// reorders the rest with a random DFS rooted there.
type IDFS struct {
	Rand *rand.Rand
}

// Apply implements Algorithm.
func (a IDFS) Apply(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}

	r := a.Rand
	if r == nil {
		r = rng.New(0)
	}

	return RandomDFS{Rand: r}.ApplyWindow(emb, r.Intn(emb.N()), emb.N())
}

// randomWindowPosition draws a uniform position inside [begin,end),
// wrapping when end < begin.
func randomWindowPosition(n, begin, end int, r *rand.Rand) int {
	if begin < end {
		return begin + r.Intn(end-begin)
	}

	return (begin + r.Intn(n-begin+end)) % n
}

// smallestDegreePosition returns the window position holding the
// vertex of smallest degree.
func smallestDegreePosition(emb *embedding.Embedding, begin, end int) int {
	g := emb.Graph()
	n := emb.N()
	best := begin
	bestDegree := int(^uint(0) >> 1)

	scan := func(from, to int) {
		for i := from; i < to; i++ {
			if d := g.Degree(emb.VertexAt(i)); d < bestDegree {
				bestDegree = d
				best = i
			}
		}
	}
	if begin < end {
		scan(begin, end)
	} else {
		scan(begin, n)
		scan(0, end)
	}

	return best
}

// dfsWindow runs the shared stack-based traversal: in-window vertices
// are assigned positions in visit order starting at begin (modular
// when the window wraps); out-of-window vertices are traversed but
// keep their positions. arrange reorders the unvisited-neighbor slice
// before it is pushed.
func dfsWindow(emb *embedding.Embedding, begin, end, rootPosition int, arrange func([]int)) {
	g := emb.Graph()
	n := emb.N()
	spine := emb.Spine()
	vertexOnSpine := emb.VertexOnSpine()
	clearWindow(spine, vertexOnSpine, begin, end)

	rootIndex := spine[rootPosition]
	visited := make([]bool, n)
	stack := make([]int, 0, n)

	idx := begin
	for idx < end || (end < begin && begin <= idx) {
		// the graph may be disconnected: advance to a pending vertex
		for vertexOnSpine[rootIndex] != -1 {
			rootPosition = (rootPosition + 1) % n
			rootIndex = spine[rootPosition]
		}

		stack = append(stack, rootIndex)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[v] {
				continue
			}
			visited[v] = true

			if vertexOnSpine[v] == -1 {
				vertexOnSpine[v] = idx
				idx++
				if begin > end {
					idx %= n
				}
			}

			neighbors := make([]int, 0, g.Degree(v))
			for _, u := range g.Neighbors(v) {
				if !visited[u] {
					neighbors = append(neighbors, u)
				}
			}
			arrange(neighbors)
			stack = append(stack, neighbors...)
		}
	}

	emb.SetVertexOnSpine(vertexOnSpine)
}
