package greedy

import (
	"fmt"
	"math/rand"

	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/optimize"
	"github.com/avermeer/pagecross/rng"
)

// TwoStep alternates full rounds of best-position-for-vertex and
// best-page-for-edge, each over a fixed (optionally resampled) random
// order, until a round yields no gain. Either step can be switched
// off or run exhaustively (sub-rounds until that step converges).
type TwoStep struct {
	optimize.Harness

	emb  *embedding.Embedding
	opts Options

	optimizeOrder          bool
	optimizeDistribution   bool
	exhaustiveOrder        bool
	exhaustiveDistribution bool

	rand *rand.Rand
}

// NewTwoStep builds the optimizer. optimizeOrder and
// optimizeDistribution select which of the two steps run; disabling
// both makes every round gainless, so Optimize returns immediately.
func NewTwoStep(emb *embedding.Embedding, optimizeOrder, optimizeDistribution bool, opts Options) (*TwoStep, error) {
	if emb == nil {
		return nil, optimize.ErrNilEmbedding
	}

	o := &TwoStep{
		Harness:              optimize.NewHarness(),
		emb:                  emb,
		opts:                 opts,
		optimizeOrder:        optimizeOrder,
		optimizeDistribution: optimizeDistribution,
		rand:                 rng.New(opts.Seed),
	}
	o.SetTimeLimit(opts.TimeLimit)
	o.SetTarget(opts.Target)
	o.SetMonitorInterval(opts.MonitorInterval)

	return o, nil
}

// SetExhaustive makes the selected steps iterate to their own local
// optimum inside every round.
func (o *TwoStep) SetExhaustive(order, distribution bool) *TwoStep {
	o.exhaustiveOrder = order
	o.exhaustiveDistribution = distribution

	return o
}

// Optimize implements optimize.Optimizer. The bookkept round gain is
// cross-checked against the counter after every round; a mismatch
// aborts with optimize.ErrGainMismatch.
func (o *TwoStep) Optimize() (optimize.Solution, error) {
	o.Start()

	vertexOrder := rng.Perm(o.emb.N(), o.rand)
	edgeOrder := rng.Perm(o.emb.M(), o.rand)

	current := o.emb.Crossings()
	o.SetLocalBest(o.emb)
	o.InitialMonitoring()

	roundGain := int64(1)
	for {
		cont, err := shouldIterate(&o.Harness, o.emb, roundGain)
		if err != nil {
			return optimize.Solution{}, err
		}
		if !cont {
			break
		}

		if o.opts.ResampleOrders {
			rng.Shuffle(vertexOrder, o.rand)
			rng.Shuffle(edgeOrder, o.rand)
		}

		old := current
		var spineGain, distributionGain int64

		if o.optimizeOrder {
			if o.exhaustiveOrder {
				spineGain = ExhaustiveSpineOptimization(o.emb, vertexOrder)
			} else {
				spineGain = BestPositionForVertices(o.emb, vertexOrder)
			}
		}
		if o.optimizeDistribution {
			if o.exhaustiveDistribution {
				distributionGain = ExhaustiveDistributionOptimization(o.emb, edgeOrder)
			} else {
				distributionGain = BestPageForEdges(o.emb, edgeOrder)
			}
		}

		roundGain = spineGain + distributionGain
		if roundGain > 0 {
			o.SetLocalBest(o.emb)
		}

		current = o.emb.Crossings()
		if roundGain != old-current {
			return optimize.Solution{}, fmt.Errorf(
				"round gain %d but crossings went %d -> %d: %w",
				roundGain, old, current, optimize.ErrGainMismatch)
		}
		o.NextIteration()
	}

	o.Finish()

	return o.Best(), nil
}
