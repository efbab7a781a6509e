package greedy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avermeer/pagecross/builder"
	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/distribute"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/greedy"
	"github.com/avermeer/pagecross/order"
	"github.com/avermeer/pagecross/rng"
)

// K5 on two pages has book crossing number 1; the greedy optimizers
// must reach it from the identity embedding.
func TestCombined_K5ReachesOptimum(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)
	p, err := core.NewProblemWithCrossingNumber(g, 2, 1)
	require.NoError(t, err)

	for seed := int64(1); seed <= 4; seed++ {
		emb, err := embedding.New(p)
		require.NoError(t, err)

		opts := greedy.DefaultOptions()
		opts.Seed = seed
		opts.Target = 1
		opt, err := greedy.NewCombined(emb, opts)
		require.NoError(t, err)

		sol, err := opt.Optimize()
		require.NoError(t, err)
		require.LessOrEqual(t, sol.Crossings, int64(1), "seed %d", seed)
		require.NoError(t, sol.Embedding.Validate())
		require.Equal(t, sol.Crossings, embedding.Pairwise{}.Count(sol.Embedding))
	}
}

func TestTwoStep_K5ReachesOptimum(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)
	p, err := core.NewProblemWithCrossingNumber(g, 2, 1)
	require.NoError(t, err)
	emb, err := embedding.New(p)
	require.NoError(t, err)

	opts := greedy.DefaultOptions()
	opts.Target = 1
	opt, err := greedy.NewTwoStep(emb, true, true, opts)
	require.NoError(t, err)

	sol, err := opt.Optimize()
	require.NoError(t, err)
	require.LessOrEqual(t, sol.Crossings, int64(1))
}

// Monotone rounds: a full optimizer run never ends above its start,
// and the harness snapshot matches a fresh recount.
func TestOptimizers_MonotoneOnRandomGraphs(t *testing.T) {
	r := rng.New(303)
	for rep := 0; rep < 4; rep++ {
		g, err := builder.RandomSparse(14, 0.35, r)
		require.NoError(t, err)
		p, err := core.NewProblem(g, 2)
		require.NoError(t, err)
		emb, err := embedding.New(p)
		require.NoError(t, err)

		require.NoError(t, (order.Random{Rand: r}).Apply(emb))
		require.NoError(t, (distribute.Random{Rand: r}).Distribute(emb))
		start := emb.Crossings()

		opts := greedy.DefaultOptions()
		opts.Seed = int64(rep + 1)
		opt, err := greedy.NewTwoStep(emb, true, true, opts)
		require.NoError(t, err)

		sol, err := opt.Optimize()
		require.NoError(t, err)
		require.LessOrEqual(t, sol.Crossings, start, "rep %d", rep)
		require.Equal(t, sol.Crossings, embedding.Pairwise{}.Count(sol.Embedding), "rep %d", rep)
		require.NoError(t, sol.Embedding.Validate())
	}
}

// Both the plain and the exhaustive configuration, run from the same
// start with the same seed, must end no worse than that start.
func TestTwoStep_ExhaustiveNotWorse(t *testing.T) {
	r := rng.New(404)
	g, err := builder.RandomSparse(12, 0.4, r)
	require.NoError(t, err)
	p, err := core.NewProblem(g, 2)
	require.NoError(t, err)

	base, err := embedding.New(p)
	require.NoError(t, err)
	require.NoError(t, (order.Random{Rand: rng.New(9)}).Apply(base))
	require.NoError(t, (distribute.Random{Rand: rng.New(9)}).Distribute(base))

	plain := base.Clone()
	opts := greedy.DefaultOptions()
	optPlain, err := greedy.NewTwoStep(plain, true, true, opts)
	require.NoError(t, err)
	solPlain, err := optPlain.Optimize()
	require.NoError(t, err)

	exhaustive := base.Clone()
	optEx, err := greedy.NewTwoStep(exhaustive, true, true, opts)
	require.NoError(t, err)
	solEx, err := optEx.SetExhaustive(true, true).Optimize()
	require.NoError(t, err)

	require.LessOrEqual(t, solEx.Crossings, base.Crossings())
	require.LessOrEqual(t, solPlain.Crossings, base.Crossings())
}

// The best-so-far snapshot is immune to further mutation of the
// working embedding.
func TestOptimizer_SnapshotIsolated(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)
	p, err := core.NewProblem(g, 2)
	require.NoError(t, err)
	emb, err := embedding.New(p)
	require.NoError(t, err)

	opt, err := greedy.NewCombined(emb, greedy.DefaultOptions())
	require.NoError(t, err)
	sol, err := opt.Optimize()
	require.NoError(t, err)

	snapshot := sol.Embedding.Spine()
	emb.SetSpine([]int{4, 3, 2, 1, 0})
	emb.FillDistribution(0)
	require.Equal(t, snapshot, sol.Embedding.Spine())
}

func TestNewOptimizers_RejectNil(t *testing.T) {
	_, err := greedy.NewCombined(nil, greedy.DefaultOptions())
	require.Error(t, err)
	_, err = greedy.NewTwoStep(nil, true, true, greedy.DefaultOptions())
	require.Error(t, err)
}
