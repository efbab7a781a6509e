package order

import (
	"math/rand"

	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/rng"
)

// Random writes a uniformly random permutation into the spine.
// The baseline every heuristic is measured against.
type Random struct {
	Rand *rand.Rand
}

// Apply implements Algorithm.
func (a Random) Apply(emb *embedding.Embedding) error {
	if emb == nil {
		return ErrNilEmbedding
	}

	emb.SetSpine(rng.Perm(emb.N(), a.Rand))

	return nil
}
