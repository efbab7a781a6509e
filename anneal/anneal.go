// Package anneal implements the simulated-annealing optimizer: a
// fixed 980-iteration schedule whose temperature follows a shifted
// logarithm, with four nested move phases per iteration — edge
// re-pages, neighbor swaps, vertex teleports with page repair, and
// greedy vertex refines.
//
// The cooling formula is reproduced literally; small deviations change
// acceptance rates noticeably.
package anneal

import (
	"math"
	"math/rand"
	"time"

	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/greedy"
	"github.com/avermeer/pagecross/optimize"
	"github.com/avermeer/pagecross/rng"
)

// Schedule constants. The temperature at iteration t is
//
//	T(t) = T0 + (1/ln(F) − 1/ln(t+F)) · (Tmin − T0) / (1/ln(F) − 1/ln(Tmax+F))
//
// with F = iterationFactor, Tmin = coolingLimit, Tmax = maxIterations
// and T0 the caller-supplied initial temperature.
const (
	maxIterations   = 980
	iterationFactor = 20
	coolingLimit    = 0.2
)

// Options configure the annealer.
type Options struct {
	// Seed drives every random draw; 0 means the deterministic
	// default stream.
	Seed int64

	// InitialTemperature is T0 of the cooling schedule.
	InitialTemperature float64

	// TimeLimit is the wall-clock budget; zero disables it. Checked
	// at the top of every temperature step.
	TimeLimit time.Duration

	// Target is the known optimal crossing count, or
	// core.UnknownCrossingNumber.
	Target int64

	// MonitorInterval records the harness trace every i-th iteration;
	// 0 disables monitoring.
	MonitorInterval int
}

// DefaultOptions returns the standard configuration with T0 = 10.
func DefaultOptions() Options {
	return Options{
		InitialTemperature: 10,
		TimeLimit:          optimize.DefaultTimeLimit,
		Target:             core.UnknownCrossingNumber,
		MonitorInterval:    1,
	}
}

// Optimizer is the simulated-annealing optimizer. Per temperature
// step it performs m edge re-pages, n·⌊√n⌋ neighbor swaps, n vertex
// teleports with greedy page repair, and ⌊n/4⌋+1 greedy vertex
// refines. Every accepted move that improves the best-so-far updates
// the harness snapshot.
type Optimizer struct {
	optimize.Harness

	emb  *embedding.Embedding
	opts Options
	rand *rand.Rand

	numEdgeMoves         int
	numVertexSwaps       int
	numVertexMoves       int
	numVertexGreedyMoves int
}

// New builds the annealer for the given embedding.
func New(emb *embedding.Embedding, opts Options) (*Optimizer, error) {
	if emb == nil {
		return nil, optimize.ErrNilEmbedding
	}

	n := emb.N()
	o := &Optimizer{
		Harness:              optimize.NewHarness(),
		emb:                  emb,
		opts:                 opts,
		rand:                 rng.New(opts.Seed),
		numEdgeMoves:         emb.M(),
		numVertexSwaps:       n * int(math.Sqrt(float64(n))),
		numVertexMoves:       n,
		numVertexGreedyMoves: n/4 + 1,
	}
	o.SetTimeLimit(opts.TimeLimit)
	o.SetTarget(opts.Target)
	o.SetMonitorInterval(opts.MonitorInterval)

	return o, nil
}

// temperature evaluates the cooling schedule at iteration t.
func (o *Optimizer) temperature(t int) float64 {
	lnF := math.Log(iterationFactor)

	return o.opts.InitialTemperature +
		(1/lnF-1/math.Log(float64(t+iterationFactor)))*
			(coolingLimit-o.opts.InitialTemperature)/
			(1/lnF-1/math.Log(float64(maxIterations+iterationFactor)))
}

// Optimize implements optimize.Optimizer.
func (o *Optimizer) Optimize() (optimize.Solution, error) {
	o.Start()
	o.SetLocalBest(o.emb)
	o.InitialMonitoring()

	n := o.emb.N()
	m := o.emb.M()
	k := o.emb.K()

	for iteration := 0; iteration < maxIterations; iteration++ {
		if o.BudgetExceeded() {
			break
		}
		reached, err := o.TargetReached(o.emb.Crossings())
		if err != nil {
			return optimize.Solution{}, err
		}
		if reached {
			break
		}

		t := o.temperature(iteration)

		// 1) re-page random edges (needs a second page to exist)
		if k > 1 {
			for i := 0; i < o.numEdgeMoves; i++ {
				edge := o.rand.Intn(m)
				before := o.emb.Crossings()

				oldPage := o.emb.PageOf(edge)
				o.emb.MoveEdgeToPage(edge, rng.IntnExcluding(o.rand, k, oldPage))

				delta := o.emb.Crossings() - before
				if delta > 0 && o.rand.Float64() >= math.Exp(-float64(delta)/t) {
					o.emb.MoveEdgeToPage(edge, oldPage)
					o.emb.SetCrossings(before)
				} else {
					o.SetLocalBest(o.emb)
				}
			}
		}

		// 2) swap random vertices with their right (cyclic) neighbor
		for i := 0; i < o.numVertexSwaps; i++ {
			vertex := o.rand.Intn(n)
			position := o.emb.PositionOf(vertex)
			next := (position + 1) % n

			gain := greedy.SwapGain(o.emb, position, next)
			if gain >= 0 || o.rand.Float64() < math.Exp(float64(gain)/t) {
				before := o.emb.Crossings()
				o.emb.SwapVertices(vertex, o.emb.VertexAt(next))
				o.emb.SetCrossings(before - gain)
				o.SetLocalBest(o.emb)
			}
		}

		// 3) teleport random vertices, repair their pages, restore the
		// full snapshot on reject
		for i := 0; i < o.numVertexMoves; i++ {
			vertex := o.rand.Intn(n)
			oldPosition := o.emb.PositionOf(vertex)
			newPosition := o.rand.Intn(n)
			if oldPosition == newPosition {
				continue
			}

			before := o.emb.Crossings()
			distribution := o.emb.Distribution()

			o.emb.MoveVertexTo(oldPosition, newPosition)
			greedy.RepageIncidentEdges(o.emb, vertex)

			delta := o.emb.Crossings() - before
			if delta > 0 && o.rand.Float64() >= math.Exp(-float64(delta)/t) {
				o.emb.MoveVertexTo(newPosition, oldPosition)
				o.emb.SetDistribution(distribution)
				o.emb.SetCrossings(before)
			} else {
				o.SetLocalBest(o.emb)
			}
		}

		// 4) greedily refine random vertices
		for i := 0; i < o.numVertexGreedyMoves; i++ {
			vertex := o.rand.Intn(n)
			oldPosition := o.emb.PositionOf(vertex)
			before := o.emb.Crossings()
			distribution := o.emb.Distribution()

			greedy.BestPositionForVertex(o.emb, oldPosition)
			greedy.RepageIncidentEdges(o.emb, vertex)

			delta := o.emb.Crossings() - before
			if delta < 0 || o.rand.Float64() < math.Exp(-float64(delta)/t) {
				o.SetLocalBest(o.emb)
			} else {
				o.emb.MoveVertexTo(o.emb.PositionOf(vertex), oldPosition)
				o.emb.SetDistribution(distribution)
				o.emb.SetCrossings(before)
			}
		}

		o.NextIteration()
	}

	o.Finish()

	return o.Best(), nil
}
