// Package knapsack_test provides runnable examples for the solver.
package knapsack_test

import (
	"fmt"

	"github.com/NagibSuaid/jorlib/knapsack"
)

// ExampleSolve solves a four-item instance to optimality.
func ExampleSolve() {
	values := []float64{15, 10, 9, 5}
	weights := []int{1, 5, 3, 4}

	res, err := knapsack.Solve(values, weights, 8, knapsack.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("value=%.0f weight=%d selected=%v\n", res.Value, res.UsedWeight, res.Selected)
	// Output: value=29 weight=8 selected=[true false true true]
}

// ExampleSolve_creationOrder shows that the frontier ordering changes only
// the traversal, never the optimum.
func ExampleSolve_creationOrder() {
	values := []float64{300, 60, 90, 100, 240}
	weights := []int{50, 10, 20, 40, 30}

	opts := knapsack.DefaultOptions()
	opts.Order = knapsack.CreationOrder{}
	res, err := knapsack.Solve(values, weights, 60, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("value=%.0f selected=%v\n", res.Value, res.Selected)
	// Output: value=390 selected=[false true true false true]
}
