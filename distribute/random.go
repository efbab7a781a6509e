package distribute

import (
	"math/rand"

	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// Random assigns every edge a uniformly random page.
type Random struct {
	Rand *rand.Rand
}

// Distribute implements Algorithm.
func (a Random) Distribute(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}

	r := a.Rand
	if r == nil {
		r = rng.New(0)
	}

	k := emb.K()
	distribution := emb.Distribution()
	for i := range distribution {
		distribution[i] = r.Intn(k)
	}
	emb.SetDistribution(distribution)

	return nil
}
