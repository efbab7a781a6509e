package distribute_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avermeer/pagecross/builder"
	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/distribute"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

func newEmbedding(t *testing.T, g *core.Graph, k int) *embedding.Embedding {
	t.Helper()
	p, err := core.NewProblem(g, k)
	require.NoError(t, err)
	emb, err := embedding.New(p)
	require.NoError(t, err)

	return emb
}

func allHeuristics() map[string]distribute.Algorithm {
	return map[string]distribute.Algorithm{
		"random":           distribute.Random{Rand: rng.New(1)},
		"slope":            distribute.Slope{},
		"conflict":         distribute.Conflict{Rand: rng.New(2)},
		"ear":              distribute.EarDecomposition{Rand: rng.New(3)},
		"greedy-rowmajor":  distribute.Greedy{Order: distribute.RowMajor},
		"greedy-spine":     distribute.Greedy{Order: distribute.RowMajorBySpine},
		"greedy-random":    distribute.Greedy{Order: distribute.RandomOrder, Rand: rng.New(4)},
		"greedy-elen":      distribute.Greedy{Order: distribute.ELen, Rand: rng.New(5)},
		"greedy-ceilfloor": distribute.Greedy{Order: distribute.CeilFloor},
		"greedy-circular":  distribute.Greedy{Order: distribute.Circular},
	}
}

// Page-domain property: after any heuristic completes, every edge's
// page lies in [0,k) — no pending sentinel survives.
func TestHeuristics_PageDomain(t *testing.T) {
	r := rng.New(55)
	graphs := []*core.Graph{}
	complete, err := builder.Complete(8)
	require.NoError(t, err)
	graphs = append(graphs, complete)
	sparse, err := builder.RandomSparse(12, 0.35, r)
	require.NoError(t, err)
	graphs = append(graphs, sparse)

	for name, h := range allHeuristics() {
		for gi, g := range graphs {
			for _, k := range []int{1, 2, 3} {
				emb := newEmbedding(t, g, k)
				emb.SetSpine(rng.Perm(g.N(), r))

				require.NoError(t, h.Distribute(emb), "%s graph=%d k=%d", name, gi, k)
				require.NoError(t, emb.Validate(), "%s graph=%d k=%d", name, gi, k)
				for e, page := range emb.Distribution() {
					require.GreaterOrEqual(t, page, 0, "%s graph=%d k=%d edge=%d", name, gi, k, e)
					require.Less(t, page, k, "%s graph=%d k=%d edge=%d", name, gi, k, e)
				}
			}
		}
	}
}

func TestHeuristics_RejectNilEmbedding(t *testing.T) {
	require.ErrorIs(t, (distribute.Random{}).Distribute(nil), distribute.ErrNilEmbedding)
	require.ErrorIs(t, (distribute.Slope{}).Distribute(nil), distribute.ErrNilEmbedding)
	require.ErrorIs(t, (distribute.Greedy{}).Distribute(nil), distribute.ErrNilEmbedding)
	require.ErrorIs(t, (distribute.EarDecomposition{}).Distribute(nil), distribute.ErrNilEmbedding)
}

// The greedy distributor's bookkept total must equal the counters'.
func TestGreedy_TotalMatchesCounter(t *testing.T) {
	r := rng.New(61)
	g, err := builder.RandomSparse(14, 0.35, r)
	require.NoError(t, err)

	for _, ordering := range []distribute.Ordering{
		distribute.RowMajor, distribute.RowMajorBySpine, distribute.RandomOrder,
		distribute.ELen, distribute.CeilFloor, distribute.Circular,
	} {
		emb := newEmbedding(t, g, 3)
		emb.SetSpine(rng.Perm(g.N(), r))

		h := distribute.Greedy{Order: ordering, Rand: rng.New(62)}
		require.NoError(t, h.Distribute(emb))

		require.True(t, emb.CrossingsValid())
		cached := emb.Crossings()
		require.Equal(t, embedding.Pairwise{}.Count(emb), cached, "ordering %d", ordering)
	}
}

// Slope puts edges of equal angle on the same page and splits the
// angle range into k contiguous sections.
func TestSlope_AngleSections(t *testing.T) {
	g, err := builder.Cycle(8)
	require.NoError(t, err)
	emb := newEmbedding(t, g, 2)

	require.NoError(t, (distribute.Slope{}).Distribute(emb))

	// on the identity spine edge (0,1) has angle 1 (lower half) and
	// edge (6,7) has angle 13, which folds to 5 (upper half)
	pages := emb.Distribution()
	idLow, ok := g.EdgeIndex(0, 1)
	require.True(t, ok)
	idHigh, ok := g.EdgeIndex(6, 7)
	require.True(t, ok)
	require.NotEqual(t, pages[idLow], pages[idHigh])
}

// With two pages the conflict heuristic separates the single
// conflicting pair of K4's identity spine.
func TestConflict_SeparatesConflictingPair(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)

	for seed := int64(1); seed <= 5; seed++ {
		emb := newEmbedding(t, g, 2)
		require.NoError(t, (distribute.Conflict{Rand: rng.New(seed)}).Distribute(emb))

		d02, ok := g.EdgeIndex(0, 2)
		require.True(t, ok)
		d13, ok := g.EdgeIndex(1, 3)
		require.True(t, ok)
		require.NotEqual(t, emb.Distribution()[d02], emb.Distribution()[d13], "seed %d", seed)
		require.Zero(t, emb.Crossings(), "seed %d", seed)
	}
}

// Ear decomposition on K4: the conflict graph is a single edge, which
// forms one trivial ear; its two endpoints must end up separated.
func TestEarDecomposition_K4(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)

	for seed := int64(1); seed <= 5; seed++ {
		emb := newEmbedding(t, g, 2)
		require.NoError(t, (distribute.EarDecomposition{Rand: rng.New(seed)}).Distribute(emb))
		require.Zero(t, emb.Crossings(), "seed %d", seed)
	}
}
