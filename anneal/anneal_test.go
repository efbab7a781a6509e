package anneal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avermeer/pagecross/anneal"
	"github.com/avermeer/pagecross/builder"
	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

func TestNew_RejectsNil(t *testing.T) {
	_, err := anneal.New(nil, anneal.DefaultOptions())
	require.Error(t, err)
}

// A seeded annealing run on K5 with the optimum as target terminates
// with a valid best embedding at the optimum.
func TestOptimize_K5ReachesOptimum(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)
	p, err := core.NewProblemWithCrossingNumber(g, 2, 1)
	require.NoError(t, err)
	emb, err := embedding.New(p)
	require.NoError(t, err)

	opts := anneal.DefaultOptions()
	opts.Seed = 7
	opts.Target = 1
	opt, err := anneal.New(emb, opts)
	require.NoError(t, err)

	sol, err := opt.Optimize()
	require.NoError(t, err)
	require.Equal(t, int64(1), sol.Crossings)
	require.NoError(t, sol.Embedding.Validate())
	require.Equal(t, sol.Crossings, embedding.Pairwise{}.Count(sol.Embedding))
}

// The best-so-far never ends above the starting crossings, the
// snapshot recounts exactly, and the same seed reproduces the result.
func TestOptimize_SparseGraphDeterministic(t *testing.T) {
	r := rng.New(501)
	g, err := builder.RandomSparse(10, 0.4, r)
	require.NoError(t, err)
	p, err := core.NewProblem(g, 2)
	require.NoError(t, err)

	run := func() (int64, []int) {
		emb, err := embedding.New(p)
		require.NoError(t, err)
		start := emb.Crossings()

		opts := anneal.DefaultOptions()
		opts.Seed = 11
		opts.InitialTemperature = 5
		opt, err := anneal.New(emb, opts)
		require.NoError(t, err)

		sol, err := opt.Optimize()
		require.NoError(t, err)
		require.LessOrEqual(t, sol.Crossings, start)
		require.NoError(t, sol.Embedding.Validate())
		require.Equal(t, sol.Crossings, embedding.Pairwise{}.Count(sol.Embedding))

		return sol.Crossings, sol.Embedding.Spine()
	}

	crossingsA, spineA := run()
	crossingsB, spineB := run()
	require.Equal(t, crossingsA, crossingsB)
	require.Equal(t, spineA, spineB)
}

// With a single page the edge re-page phase is skipped; the run still
// terminates and improves the spine only.
func TestOptimize_SinglePage(t *testing.T) {
	g, err := builder.Cycle(8)
	require.NoError(t, err)
	p, err := core.NewProblemWithCrossingNumber(g, 1, 0)
	require.NoError(t, err)
	emb, err := embedding.New(p)
	require.NoError(t, err)
	emb.SetSpine([]int{0, 4, 1, 5, 2, 6, 3, 7})

	opts := anneal.DefaultOptions()
	opts.Seed = 3
	opts.Target = 0
	opt, err := anneal.New(emb, opts)
	require.NoError(t, err)

	sol, err := opt.Optimize()
	require.NoError(t, err)
	require.Equal(t, int64(0), sol.Crossings)
}
