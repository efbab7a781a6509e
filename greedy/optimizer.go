package greedy

import (
	"math/rand"
	"time"

	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/optimize"
	"github.com/avermeer/pagecross/rng"
)

// Options configure the greedy optimizers.
type Options struct {
	// Seed drives the random vertex/edge orders; 0 means the
	// deterministic default stream.
	Seed int64

	// TimeLimit is the wall-clock budget; zero disables it.
	TimeLimit time.Duration

	// Target is the known optimal crossing count to stop at, or
	// core.UnknownCrossingNumber.
	Target int64

	// ResampleOrders redraws the random orders every round instead of
	// fixing them once per run.
	ResampleOrders bool

	// MonitorInterval records the harness trace every i-th round; 0
	// disables monitoring.
	MonitorInterval int
}

// DefaultOptions returns the standard configuration: default budget,
// unknown target, fixed orders, per-round monitoring.
func DefaultOptions() Options {
	return Options{
		Seed:            0,
		TimeLimit:       optimize.DefaultTimeLimit,
		Target:          core.UnknownCrossingNumber,
		MonitorInterval: 1,
	}
}

// Combined is the combined greedy optimizer: per round, every vertex
// (in random order) has its incident edges re-paged and is moved to
// its overall best position with per-move page re-optimization.
// Rounds repeat until one yields no gain.
type Combined struct {
	optimize.Harness

	emb  *embedding.Embedding
	opts Options
	rand *rand.Rand
}

// NewCombined builds the optimizer for the given embedding.
func NewCombined(emb *embedding.Embedding, opts Options) (*Combined, error) {
	if emb == nil {
		return nil, optimize.ErrNilEmbedding
	}

	o := &Combined{
		Harness: optimize.NewHarness(),
		emb:     emb,
		opts:    opts,
		rand:    rng.New(opts.Seed),
	}
	o.SetTimeLimit(opts.TimeLimit)
	o.SetTarget(opts.Target)
	o.SetMonitorInterval(opts.MonitorInterval)

	return o, nil
}

// Optimize implements optimize.Optimizer. It mutates the embedding in
// place and returns a deep-copy snapshot of the best state reached.
func (o *Combined) Optimize() (optimize.Solution, error) {
	o.Start()

	order := rng.Perm(o.emb.N(), o.rand)
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
			rng.Shuffle(order, o.rand)
		}
		roundGain = OptimizeAllVertices(o.emb, order)

		if roundGain > 0 {
			o.SetLocalBest(o.emb)
		}
		o.NextIteration()
	}

	o.Finish()

	return o.Best(), nil
}

// shouldIterate encodes the shared termination contract: stop on a
// gainless round, on reaching the known optimum, or on a spent budget.
// Crossings below the optimum abort with ErrBelowTarget.
func shouldIterate(h *optimize.Harness, emb *embedding.Embedding, lastGain int64) (bool, error) {
	if lastGain <= 0 {
		return false, nil
	}

	reached, err := h.TargetReached(emb.Crossings())
	if err != nil {
		return false, err
	}
	if reached {
		return false, nil
	}

	if h.BudgetExceeded() {
		return false, nil
	}

	return true, nil
}
