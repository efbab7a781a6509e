package embedding_test

import (
	"testing"

	"github.com/avermeer/pagecross/builder"
	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// benchEmbedding builds a random 128-vertex embedding on 3 pages.
func benchEmbedding(b *testing.B) *embedding.Embedding {
	b.Helper()
	r := rng.New(2024)
	g, err := builder.RandomSparse(128, 0.1, r)
	if err != nil {
		b.Fatal(err)
	}
	p, err := core.NewProblem(g, 3)
	if err != nil {
		b.Fatal(err)
	}
	emb, err := embedding.New(p)
	if err != nil {
		b.Fatal(err)
	}
	emb.SetSpine(rng.Perm(128, r))
	distribution := make([]int, g.M())
	for i := range distribution {
		distribution[i] = r.Intn(3)
	}
	emb.SetDistribution(distribution)

	return emb
}

func BenchmarkPairwiseCount(b *testing.B) {
	emb := benchEmbedding(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = embedding.Pairwise{}.Count(emb)
	}
}

func BenchmarkSweepCount(b *testing.B) {
	emb := benchEmbedding(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = embedding.Sweep{}.Count(emb)
	}
}

func BenchmarkDivideAndConquerCount(b *testing.B) {
	emb := benchEmbedding(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = embedding.DivideAndConquer{}.Count(emb)
	}
}
