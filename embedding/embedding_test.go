package embedding_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avermeer/pagecross/builder"
	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// newEmbedding builds a K5 embedding on two pages for state tests.
func newEmbedding(t *testing.T) *embedding.Embedding {
	t.Helper()
	g, err := builder.Complete(5)
	require.NoError(t, err)
	p, err := core.NewProblem(g, 2)
	require.NoError(t, err)
	emb, err := embedding.New(p)
	require.NoError(t, err)

	return emb
}

// requireInverse asserts the mutual-inverse invariant of the two
// spine arrays on every reachable state.
func requireInverse(t *testing.T, emb *embedding.Embedding) {
	t.Helper()
	for i := 0; i < emb.N(); i++ {
		require.Equal(t, i, emb.PositionOf(emb.VertexAt(i)), "spine not inverse at position %d", i)
		require.Equal(t, i, emb.VertexAt(emb.PositionOf(i)), "vertexOnSpine not inverse at vertex %d", i)
	}
}

func TestNew_IdentitySpine(t *testing.T) {
	emb := newEmbedding(t)

	require.Equal(t, []int{0, 1, 2, 3, 4}, emb.Spine())
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, emb.Distribution())
	require.NoError(t, emb.Validate())
	requireInverse(t, emb)
}

// TestMutators_KeepInverse drives a random mutation sequence and
// checks the inverse invariant after every step.
func TestMutators_KeepInverse(t *testing.T) {
	emb := newEmbedding(t)
	r := rng.New(11)

	for step := 0; step < 200; step++ {
		switch step % 4 {
		case 0:
			emb.SwapVertices(r.Intn(5), r.Intn(5))
		case 1:
			emb.SwapPositions(r.Intn(5), r.Intn(5))
		case 2:
			emb.MoveVertexTo(r.Intn(5), r.Intn(5))
		default:
			emb.MoveEdgeToPage(r.Intn(10), r.Intn(2))
		}
		requireInverse(t, emb)
		require.NoError(t, emb.Validate())
	}
}

// Identity mutations are no-ops on all arrays.
func TestMutators_IdentityNoOps(t *testing.T) {
	emb := newEmbedding(t)
	emb.SetSpine([]int{4, 2, 0, 1, 3})
	spine := emb.Spine()

	emb.SwapVertices(3, 3)
	require.Equal(t, spine, emb.Spine())

	emb.MoveVertexTo(2, 2)
	require.Equal(t, spine, emb.Spine())
	requireInverse(t, emb)
}

func TestSetters_RebuildInverse(t *testing.T) {
	emb := newEmbedding(t)

	emb.SetSpine([]int{4, 3, 2, 1, 0})
	require.Equal(t, 4, emb.PositionOf(0))
	requireInverse(t, emb)

	emb.SetVertexOnSpine([]int{2, 0, 1, 3, 4})
	require.Equal(t, 1, emb.VertexAt(0))
	requireInverse(t, emb)
}

// Cache discipline: mutators leave the cache invalid or callers set it
// explicitly; Crossings always equals the fresh count either way.
func TestCrossingCache_Invalidation(t *testing.T) {
	emb := newEmbedding(t)

	require.Equal(t, embedding.Pairwise{}.Count(emb), emb.Crossings())
	require.True(t, emb.CrossingsValid())

	emb.SwapPositions(0, 3)
	require.False(t, emb.CrossingsValid())
	require.Equal(t, embedding.Pairwise{}.Count(emb), emb.Crossings())

	emb.MoveEdgeToPage(4, 1)
	require.False(t, emb.CrossingsValid())
	require.Equal(t, embedding.Pairwise{}.Count(emb), emb.Crossings())
}

// Round-trip: a deep copy equals the original and mutating the copy
// leaves the original untouched.
func TestClone_DeepAndIsolated(t *testing.T) {
	emb := newEmbedding(t)
	emb.SetSpine([]int{2, 0, 4, 1, 3})
	emb.MoveEdgeToPage(3, 1)
	before := emb.Crossings()

	c := emb.Clone()
	require.Equal(t, emb.Spine(), c.Spine())
	require.Equal(t, emb.VertexOnSpine(), c.VertexOnSpine())
	require.Equal(t, emb.Distribution(), c.Distribution())
	require.Equal(t, before, c.Crossings())

	c.SwapPositions(0, 4)
	c.MoveEdgeToPage(0, 1)
	require.Equal(t, []int{2, 0, 4, 1, 3}, emb.Spine())
	require.Equal(t, before, emb.Crossings())
}

func TestCopyFrom_RequiresSameProblem(t *testing.T) {
	emb := newEmbedding(t)
	other := newEmbedding(t)
	require.ErrorIs(t, emb.CopyFrom(other), embedding.ErrProblemMismatch)

	sibling := emb.Clone()
	sibling.SetSpine([]int{4, 3, 2, 1, 0})
	require.NoError(t, emb.CopyFrom(sibling))
	require.Equal(t, sibling.Spine(), emb.Spine())
}

func TestValidate_CatchesCorruption(t *testing.T) {
	emb := newEmbedding(t)

	bad := emb.Clone()
	bad.SetDistribution([]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 5})
	require.ErrorIs(t, bad.Validate(), embedding.ErrInvalidEmbedding)
}

func TestEdgeGrouping(t *testing.T) {
	emb := newEmbedding(t)
	emb.SetDistribution([]int{0, 1, 0, 1, 0, 1, 0, 1, 0, 1})

	require.Equal(t, []int{0, 2, 4, 6, 8}, emb.EdgeIndicesOnPage(0))
	require.Equal(t, 5, emb.CountEdgesOnPage(1))

	grouped := emb.EdgesGroupedByPage()
	require.Len(t, grouped, 2)
	require.Equal(t, []int{1, 3, 5, 7, 9}, grouped[1])
}

func TestEdgeLengths(t *testing.T) {
	g, err := builder.Cycle(6)
	require.NoError(t, err)
	p, err := core.NewProblem(g, 1)
	require.NoError(t, err)
	emb, err := embedding.New(p)
	require.NoError(t, err)

	// edge (5,0) spans the whole spine; as a chord it has length 1
	id, ok := g.EdgeIndex(5, 0)
	require.True(t, ok)
	require.Equal(t, 5, emb.EdgeLength(id))
	require.Equal(t, 1, emb.EdgeChordLength(id))
}
