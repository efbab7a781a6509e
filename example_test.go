package pagecross_test

import (
	"fmt"

	"github.com/avermeer/pagecross/builder"
	"github.com/avermeer/pagecross/core"
	"github.com/avermeer/pagecross/distribute"
	"github.com/avermeer/pagecross/embedding"
	"github.com/avermeer/pagecross/greedy"
	"github.com/avermeer/pagecross/order"
)

// Example walks the usual pipeline: build a problem, create an
// embedding, run an initial heuristic pair, then hand the embedding to
// an optimizer and read the solution snapshot.
func Example() {
	g, err := builder.Complete(5)
	if err != nil {
		panic(err)
	}
	problem, err := core.NewProblemWithCrossingNumber(g, 2, 1)
	if err != nil {
		panic(err)
	}
	emb, err := embedding.New(problem)
	if err != nil {
		panic(err)
	}

	if err = (order.SmallestDegreeDFS{}).Apply(emb); err != nil {
		panic(err)
	}
	if err = (distribute.Greedy{Order: distribute.RowMajor}).Distribute(emb); err != nil {
		panic(err)
	}

	opts := greedy.DefaultOptions()
	opts.Target = problem.CrossingNumber()
	opt, err := greedy.NewCombined(emb, opts)
	if err != nil {
		panic(err)
	}
	solution, err := opt.Optimize()
	if err != nil {
		panic(err)
	}

	fmt.Println("crossings:", solution.Crossings)
	// Output:
	// crossings: 1
}
