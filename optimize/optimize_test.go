package optimize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avermeer/pagecross/builder"
	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/optimize"
)

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

// SetLocalBest copies only on strict improvement and the returned
// snapshot is a fresh deep copy every time.
func TestHarness_LocalBestDiscipline(t *testing.T) {
	emb := newEmbedding(t)
	h := optimize.NewHarness()
	h.Start()

	require.False(t, h.HasBest())
	h.SetLocalBest(emb)
	require.True(t, h.HasBest())
	first := h.Best()

	// submitting an equally good embedding must not replace the snapshot
	h.SetLocalBest(emb.Clone())
	require.Equal(t, first.Crossings, h.Best().Crossings)

	// an improvement replaces it
	improved := emb.Clone()
	improved.SetDistribution([]int{0, 1, 0, 1, 0, 0, 1, 0, 1, 0})
	if improved.Crossings() < emb.Crossings() {
		h.SetLocalBest(improved)
		require.Equal(t, improved.Crossings(), h.Best().Crossings)
	}

	// the snapshot is immune to mutations of the submitted embedding
	snapshot := h.Best()
	emb.SetSpine([]int{4, 3, 2, 1, 0})
	require.NotEqual(t, emb.Spine(), snapshot.Embedding.Spine())

	// and two Best calls hand out independent copies
	a, b := h.Best(), h.Best()
	a.Embedding.SetSpine([]int{1, 0, 2, 3, 4})
	require.NotEqual(t, a.Embedding.Spine(), b.Embedding.Spine())
}

func TestHarness_TargetSemantics(t *testing.T) {
	h := optimize.NewHarness()

	// no target: never reached, never an error
	reached, err := h.TargetReached(0)
	require.NoError(t, err)
	require.False(t, reached)

	h.SetTarget(3)
	reached, err = h.TargetReached(5)
	require.NoError(t, err)
	require.False(t, reached)

	reached, err = h.TargetReached(3)
	require.NoError(t, err)
	require.True(t, reached)

	_, err = h.TargetReached(2)
	require.ErrorIs(t, err, optimize.ErrBelowTarget)
}

func TestHarness_BudgetAndTrace(t *testing.T) {
	emb := newEmbedding(t)
	h := optimize.NewHarness()
	h.SetTimeLimit(time.Nanosecond)
	h.SetMonitorInterval(1)
	h.Start()

	h.SetLocalBest(emb)
	h.InitialMonitoring()
	for i := 0; i < 3; i++ {
		h.NextIteration()
	}
	require.True(t, h.BudgetExceeded())
	require.Equal(t, 3, h.Iteration())

	trace := h.MonitorTrace()
	require.Len(t, trace.BestCrossings, 4)
	require.Len(t, trace.Iterations, 4)
	require.Equal(t, int64(0), trace.Iterations[0])
	require.Equal(t, int64(3), trace.Iterations[3])

	h.Finish()
	elapsed := h.Elapsed()
	require.Equal(t, elapsed, h.Elapsed())
}
