// Package optimize provides the harness shared by all optimizers: it
// keeps the best embedding seen so far as an immutable deep-copy
// snapshot, tracks iterations and wall-clock budget, records
// monitoring traces, and encodes the common termination contract
// (no gain / optimum reached / budget exceeded).
//
// The local-best snapshot is replaced, never mutated in place, so an
// external reader holding a returned Solution can never observe a
// half-updated embedding. One harness belongs to one optimizer run;
// parallelism happens by running many optimizers on disjoint
// embeddings.
package optimize

import (
	"errors"
	"time"

	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/embedding"
)

// DefaultTimeLimit is the wall-clock budget an optimizer run gets
// unless configured otherwise.
const DefaultTimeLimit = 15 * time.Minute

// Sentinel errors for optimizer runs.
var (
	// ErrNilEmbedding indicates an optimizer was built without an embedding.
	ErrNilEmbedding = errors.New("optimize: embedding is nil")

	// ErrBelowTarget indicates the crossing count fell below the known
	// optimum — a miscounting bug, not a better solution.
	ErrBelowTarget = errors.New("optimize: crossings below known optimum")

	// ErrGainMismatch indicates a round's bookkept gain disagrees with
	// the counter.
	ErrGainMismatch = errors.New("optimize: miscounted gain")
)

// Solution is an immutable record of a best-so-far embedding: a deep
// copy plus the iteration and elapsed time at which it was found.
type Solution struct {
	Embedding *embedding.Embedding
	Crossings int64
	Iteration int
	Elapsed   time.Duration
}

// Optimizer runs to termination on the embedding it was built with
// and returns the best solution found.
type Optimizer interface {
	Optimize() (Solution, error)
}

// Harness carries the bookkeeping all optimizers share. Embed it in an
// optimizer and call Start once before the main loop.
type Harness struct {
	target    int64
	timeLimit time.Duration

	iteration int
	start     time.Time
	elapsed   time.Duration

	best *Solution

	// monitoring
	monitorEvery  int // record every i-th iteration; 0 disables
	lastSubmitted int64
	trace         Trace
}

// Trace holds the monitored series, one entry per recorded interval.
type Trace struct {
	BestCrossings    []int64
	CurrentCrossings []int64
	Iterations       []int64
	ElapsedMillis    []int64
}

// NewHarness builds a harness with the default budget, no target, and
// per-iteration monitoring.
func NewHarness() Harness {
	return Harness{
		target:       core.UnknownCrossingNumber,
		timeLimit:    DefaultTimeLimit,
		monitorEvery: 1,
	}
}

// SetTarget sets the crossing count to stop at (the known optimum).
// Pass core.UnknownCrossingNumber to disable.
func (h *Harness) SetTarget(target int64) { h.target = target }

// SetTimeLimit overrides the wall-clock budget; zero or negative
// disables the budget check.
func (h *Harness) SetTimeLimit(limit time.Duration) { h.timeLimit = limit }

// SetMonitorInterval records the trace every i-th iteration; 0
// disables monitoring.
func (h *Harness) SetMonitorInterval(every int) { h.monitorEvery = every }

// Start resets iteration and clock; optimizers call it at the top of
// Optimize.
func (h *Harness) Start() {
	h.iteration = 0
	h.start = time.Now()
	h.elapsed = 0
}

// Iteration returns the number of completed outer rounds.
func (h *Harness) Iteration() int { return h.iteration }

// NextIteration advances the round counter and records the trace when
// the interval is due.
func (h *Harness) NextIteration() {
	h.iteration++
	if h.monitorEvery > 0 && h.iteration%h.monitorEvery == 0 {
		h.record()
	}
}

// Elapsed returns the wall-clock time since Start (frozen by Finish).
func (h *Harness) Elapsed() time.Duration {
	if h.elapsed > 0 {
		return h.elapsed
	}

	return time.Since(h.start)
}

// Finish freezes the elapsed time.
func (h *Harness) Finish() { h.elapsed = time.Since(h.start) }

// BudgetExceeded reports whether the wall-clock budget is spent.
// Optimizers check it at the top of every outer round.
func (h *Harness) BudgetExceeded() bool {
	return h.timeLimit > 0 && time.Since(h.start) > h.timeLimit
}

// TargetReached reports whether the given crossing count equals the
// known optimum. A count below the optimum is an invariant violation
// and surfaces as ErrBelowTarget.
func (h *Harness) TargetReached(crossings int64) (bool, error) {
	if h.target < 0 {
		return false, nil
	}
	if crossings < h.target {
		return false, ErrBelowTarget
	}

	return crossings == h.target, nil
}

// SetLocalBest stores a deep copy of emb as the new best solution iff
// it is strictly better than the current one. The previous snapshot is
// never reused or mutated.
func (h *Harness) SetLocalBest(emb *embedding.Embedding) {
	crossings := emb.Crossings()
	h.lastSubmitted = crossings

	if h.best != nil && h.best.Crossings <= crossings {
		return
	}
	h.best = &Solution{
		Embedding: emb.Clone(),
		Crossings: crossings,
		Iteration: h.iteration,
		Elapsed:   h.Elapsed(),
	}
}

// Best returns the current best solution with a fresh deep copy of the
// embedding, so the snapshot stays immune to later mutations.
func (h *Harness) Best() Solution {
	s := *h.best
	s.Embedding = h.best.Embedding.Clone()

	return s
}

// HasBest reports whether any solution was submitted yet.
func (h *Harness) HasBest() bool { return h.best != nil }

// InitialMonitoring records the trace's first entry; optimizers call
// it right after submitting the starting embedding.
func (h *Harness) InitialMonitoring() {
	if h.monitorEvery > 0 {
		h.record()
	}
}

// MonitorTrace returns the recorded series.
func (h *Harness) MonitorTrace() Trace { return h.trace }

func (h *Harness) record() {
	h.trace.BestCrossings = append(h.trace.BestCrossings, h.best.Crossings)
	h.trace.CurrentCrossings = append(h.trace.CurrentCrossings, h.lastSubmitted)
	h.trace.Iterations = append(h.trace.Iterations, int64(h.iteration))
	h.trace.ElapsedMillis = append(h.trace.ElapsedMillis, h.Elapsed().Milliseconds())
}
