package core

import "fmt"

// UnknownCrossingNumber marks a Problem whose optimal crossing count
// is not known. Optimizers then run until convergence or budget.
const UnknownCrossingNumber int64 = -1

// Problem pairs a graph with a page budget k and, optionally, the
// known optimal crossing number for early termination.
//
// A Problem is created once and treated as immutable.
type Problem struct {
	graph    *Graph
	pages    int
	crossing int64
}

// NewProblem builds a Problem with an unknown optimal crossing number.
func NewProblem(g *Graph, pages int) (*Problem, error) {
	return NewProblemWithCrossingNumber(g, pages, UnknownCrossingNumber)
}

// NewProblemWithCrossingNumber builds a Problem whose optimal crossing
// number is known. Pass UnknownCrossingNumber when it is not.
//
// Returns ErrNilGraph for a nil graph and ErrTooFewPages for pages < 1.
func NewProblemWithCrossingNumber(g *Graph, pages int, crossing int64) (*Problem, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if pages < 1 {
		return nil, fmt.Errorf("pages=%d: %w", pages, ErrTooFewPages)
	}

	return &Problem{graph: g, pages: pages, crossing: crossing}, nil
}

// Graph returns the underlying graph.
func (p *Problem) Graph() *Graph { return p.graph }

// K returns the page budget.
func (p *Problem) K() int { return p.pages }

// N returns the number of vertices of the underlying graph.
func (p *Problem) N() int { return p.graph.N() }

// M returns the number of edges of the underlying graph.
func (p *Problem) M() int { return p.graph.M() }

// CrossingNumberKnown reports whether the optimal crossing number was
// supplied at construction.
func (p *Problem) CrossingNumberKnown() bool { return p.crossing >= 0 }

// CrossingNumber returns the known optimal crossing number, or
// UnknownCrossingNumber.
func (p *Problem) CrossingNumber() int64 { return p.crossing }

// String implements fmt.Stringer.
func (p *Problem) String() string {
	return fmt.Sprintf("problem{n=%d, m=%d, k=%d}", p.N(), p.M(), p.pages)
}
