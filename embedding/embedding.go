package embedding

import (
	"errors"
	"fmt"

	"github.com/avermeer/pagecross/core"
)

// Sentinel errors for embedding state operations.
var (
	// ErrNilEmbedding indicates a nil *Embedding was passed to an operation.
	ErrNilEmbedding = errors.New("embedding: embedding is nil")

	// ErrNilProblem indicates New was called with a nil problem.
	ErrNilProblem = errors.New("embedding: problem is nil")

	// ErrProblemMismatch indicates CopyFrom across embeddings of
	// different problems.
	ErrProblemMismatch = errors.New("embedding: problems differ")

	// ErrInvalidEmbedding indicates a spine or distribution invariant
	// does not hold.
	ErrInvalidEmbedding = errors.New("embedding: invariant violated")
)

// PendingPage marks an edge whose page has not been assigned yet.
// It appears only transiently, while an incremental heuristic is
// constructing a distribution.
const PendingPage = -1

// crossingsInvalid is the cache sentinel: any negative value means the
// cached count is stale. Kept as a constant so the "invalid" load
// stays a simple sign test.
const crossingsInvalid int64 = -1

// Embedding is a candidate solution for a book-embedding problem:
// a spine order plus a page assignment for every edge.
//
// The embedding exclusively owns its arrays and its cached crossing
// count; it shares a read-only reference to the Problem. It is not
// safe for concurrent use — run parallel optimizers on disjoint
// embeddings.
type Embedding struct {
	prob *core.Problem

	// spine[i] = index of the vertex at position i.
	spine []int
	// vertexOnSpine[v] = position of vertex v; inverse of spine.
	vertexOnSpine []int
	// distribution[e] = page of edge e, or PendingPage.
	distribution []int

	crossings int64
	counter   Counter
}

// New creates an embedding for the given problem with the identity
// spine and every edge on page 0. The crossing counter defaults to
// DivideAndConquer.
func New(p *core.Problem) (*Embedding, error) {
	if p == nil {
		return nil, ErrNilProblem
	}

	n := p.N()
	emb := &Embedding{
		prob:          p,
		spine:         make([]int, n),
		vertexOnSpine: make([]int, n),
		distribution:  make([]int, p.M()),
		crossings:     crossingsInvalid,
		counter:       DivideAndConquer{},
	}
	for i := 0; i < n; i++ {
		emb.spine[i] = i
		emb.vertexOnSpine[i] = i
	}

	return emb, nil
}

// Problem returns the problem this embedding belongs to.
func (emb *Embedding) Problem() *core.Problem { return emb.prob }

// Graph returns the underlying graph.
func (emb *Embedding) Graph() *core.Graph { return emb.prob.Graph() }

// N returns the number of vertices.
func (emb *Embedding) N() int { return len(emb.spine) }

// M returns the number of edges.
func (emb *Embedding) M() int { return len(emb.distribution) }

// K returns the page budget.
func (emb *Embedding) K() int { return emb.prob.K() }

// VertexAt returns the vertex index at the given spine position.
func (emb *Embedding) VertexAt(position int) int { return emb.spine[position] }

// PositionOf returns the spine position of the given vertex index.
func (emb *Embedding) PositionOf(vertex int) int { return emb.vertexOnSpine[vertex] }

// PageOf returns the page of the given edge id (PendingPage while a
// heuristic is still placing edges).
func (emb *Embedding) PageOf(edge int) int { return emb.distribution[edge] }

// Spine returns a copy of the spine array (position → vertex).
func (emb *Embedding) Spine() []int {
	out := make([]int, len(emb.spine))
	copy(out, emb.spine)

	return out
}

// VertexOnSpine returns a copy of the inverse spine array
// (vertex → position).
func (emb *Embedding) VertexOnSpine() []int {
	out := make([]int, len(emb.vertexOnSpine))
	copy(out, emb.vertexOnSpine)

	return out
}

// Distribution returns a copy of the page distribution (edge → page).
func (emb *Embedding) Distribution() []int {
	out := make([]int, len(emb.distribution))
	copy(out, emb.distribution)

	return out
}

// SetCounter switches the crossing counter used by this embedding.
// All counters agree on results, so this only affects performance.
func (emb *Embedding) SetCounter(c Counter) {
	if c != nil {
		emb.counter = c
	}
}

// Clone returns a deep copy: arrays, cached count and counter choice.
// Mutations on the copy never affect the original.
func (emb *Embedding) Clone() *Embedding {
	c := &Embedding{
		prob:          emb.prob,
		spine:         make([]int, len(emb.spine)),
		vertexOnSpine: make([]int, len(emb.vertexOnSpine)),
		distribution:  make([]int, len(emb.distribution)),
		crossings:     emb.crossings,
		counter:       emb.counter,
	}
	copy(c.spine, emb.spine)
	copy(c.vertexOnSpine, emb.vertexOnSpine)
	copy(c.distribution, emb.distribution)

	return c
}

// CopyFrom overwrites this embedding's state with other's without
// reallocating. Both embeddings must belong to the same problem.
func (emb *Embedding) CopyFrom(other *Embedding) error {
	if other == nil {
		return ErrNilEmbedding
	}
	if emb.prob != other.prob {
		return ErrProblemMismatch
	}
	copy(emb.spine, other.spine)
	copy(emb.vertexOnSpine, other.vertexOnSpine)
	copy(emb.distribution, other.distribution)
	emb.crossings = other.crossings

	return nil
}

// Validate checks the embedding invariants: both spine arrays are
// permutations of [0,n), mutually inverse, and every page lies in
// [0,k). Returns ErrInvalidEmbedding with a diagnostic otherwise.
func (emb *Embedding) Validate() error {
	if emb == nil {
		return ErrNilEmbedding
	}
	n := len(emb.spine)

	seen := make([]int, n)
	for i, v := range emb.spine {
		if v < 0 || v >= n {
			return fmt.Errorf("spine[%d]=%d out of range: %w", i, v, ErrInvalidEmbedding)
		}
		seen[v]++
	}
	for v, c := range seen {
		if c != 1 {
			return fmt.Errorf("vertex %d appears %d times on spine: %w", v, c, ErrInvalidEmbedding)
		}
	}
	for i := 0; i < n; i++ {
		if emb.vertexOnSpine[emb.spine[i]] != i {
			return fmt.Errorf("spine arrays not inverse at position %d: %w", i, ErrInvalidEmbedding)
		}
	}

	k := emb.K()
	for e, page := range emb.distribution {
		if page < 0 || page >= k {
			return fmt.Errorf("distribution[%d]=%d not in [0,%d): %w", e, page, k, ErrInvalidEmbedding)
		}
	}

	return nil
}

// String renders the spine arrays and distribution; debugging aid, not
// part of any external contract.
func (emb *Embedding) String() string {
	return fmt.Sprintf("%v\nspine(p->v)\t%v\nspine(v->p)\t%v\ndistribution\t%v",
		emb.prob, emb.spine, emb.vertexOnSpine, emb.distribution)
}
