package search_test

import (
	"fmt"

	"seekbench/search"
)

// ExampleSolve runs A* on a small grid and reports the solution shape.
func ExampleSolve() {
	g := &gridSpace{W: 4, H: 4, Goal: cell{3, 3}, Weight: 1}

	var c search.Counters
	res, err := search.Solve[cell](g, search.AlgoAStar, search.WithCounters(&c))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("length:", res.Length())
	fmt.Println("cost:", res.Cost)
	// Output:
	// length: 6
	// cost: 6
}
