package combined_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avermeer/pagecross/builder"
	"github.com/avermeer/pagecross/combined"
	"github.com/avermeer/pagecross/core"
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

func allHeuristics() map[string]combined.Algorithm {
	return map[string]combined.Algorithm{
		"full-rdfs":       combined.FullRandomDFS{Rand: rng.New(1)},
		"full-sddfs":      combined.FullSmallestDegreeDFS{},
		"full-rbfs":       combined.FullRandomBFS{Rand: rng.New(2)},
		"full-greedy-con": combined.FullGreedyConnectivity{},
	}
}

// Every full-embedding heuristic yields a valid spine and a complete
// distribution in [0,k), including on disconnected graphs for the
// traversal-based ones.
func TestFullHeuristics_ValidEmbeddings(t *testing.T) {
	r := rng.New(17)
	complete, err := builder.Complete(8)
	require.NoError(t, err)
	sparse, err := builder.RandomSparse(12, 0.3, r)
	require.NoError(t, err)

	for name, h := range allHeuristics() {
		graphs := []*core.Graph{complete}
		if name != "full-greedy-con" {
			// the connectivity heuristic assumes connected input
			graphs = append(graphs, sparse)
		}
		for gi, g := range graphs {
			for _, k := range []int{2, 3} {
				emb := newEmbedding(t, g, k)
				require.NoError(t, h.Embed(emb), "%s graph=%d k=%d", name, gi, k)
				require.NoError(t, emb.Validate(), "%s graph=%d k=%d", name, gi, k)
			}
		}
	}
}

// Full-embedding heuristics are a contract violation for k == 1.
func TestFullHeuristics_SinglePageRejected(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)

	for name, h := range allHeuristics() {
		emb := newEmbedding(t, g, 1)
		require.ErrorIs(t, h.Embed(emb), combined.ErrSinglePage, name)
	}
}

func TestFullHeuristics_RejectNilEmbedding(t *testing.T) {
	for name, h := range allHeuristics() {
		require.ErrorIs(t, h.Embed(nil), combined.ErrNilEmbedding, name)
	}
}

// On a cycle with two pages the greedy-connectivity embedder finds a
// crossing-free drawing: the spine follows the cycle and no two edges
// interleave.
func TestFullGreedyConnectivity_CycleIsPlanar(t *testing.T) {
	g, err := builder.Cycle(10)
	require.NoError(t, err)
	emb := newEmbedding(t, g, 2)

	require.NoError(t, (combined.FullGreedyConnectivity{}).Embed(emb))
	require.NoError(t, emb.Validate())
	require.Zero(t, emb.Crossings())
}

// The simultaneous distribution must never be worse than leaving all
// edges on one page.
func TestFullRandomDFS_BeatsSinglePageBaseline(t *testing.T) {
	g, err := builder.Complete(7)
	require.NoError(t, err)

	emb := newEmbedding(t, g, 2)
	require.NoError(t, (combined.FullRandomDFS{Rand: rng.New(9)}).Embed(emb))
	distributed := emb.Crossings()

	baseline := emb.Clone()
	baseline.FillDistribution(0)
	require.LessOrEqual(t, distributed, baseline.Crossings())
}
