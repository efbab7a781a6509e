package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avermeer/pagecross/builder"
	"github.com/avermeer/pagecross/rng"
)

func TestComplete(t *testing.T) {
	_, err := builder.Complete(0)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.Complete(5)
	require.NoError(t, err)
	require.Equal(t, 5, g.N())
	require.Equal(t, 10, g.M())
	require.NoError(t, g.Validate())
	for v := 0; v < 5; v++ {
		require.Equal(t, 4, g.Degree(v))
	}
}

func TestCycleAndPath(t *testing.T) {
	_, err := builder.Cycle(2)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	c, err := builder.Cycle(6)
	require.NoError(t, err)
	require.Equal(t, 6, c.M())
	require.NoError(t, c.Validate())
	for v := 0; v < 6; v++ {
		require.Equal(t, 2, c.Degree(v))
	}

	p, err := builder.Path(6)
	require.NoError(t, err)
	require.Equal(t, 5, p.M())
	require.Equal(t, 1, p.Degree(0))
	require.Equal(t, 2, p.Degree(3))
	require.NoError(t, p.Validate())
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.RandomSparse(8, 0.3, nil)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.RandomSparse(8, 1.5, rng.New(1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	// p=1 is K_n, p=0 is edgeless
	g, err := builder.RandomSparse(6, 1, rng.New(1))
	require.NoError(t, err)
	require.Equal(t, 15, g.M())

	g, err = builder.RandomSparse(6, 0, rng.New(1))
	require.NoError(t, err)
	require.Equal(t, 0, g.M())

	// same seed, same graph
	a, err := builder.RandomSparse(16, 0.3, rng.New(99))
	require.NoError(t, err)
	b, err := builder.RandomSparse(16, 0.3, rng.New(99))
	require.NoError(t, err)
	require.Equal(t, a.M(), b.M())
	require.Equal(t, a.Edges(), b.Edges())
	require.NoError(t, a.Validate())
}
