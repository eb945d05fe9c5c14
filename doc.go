// Package jorlib is an in-memory toolkit for combinatorial optimization —
// exact branch-and-bound search plus the building blocks of a
// branch-and-price / branch-and-cut framework.
//
// 🚀 What is jorlib?
//
//	A small, deterministic library that brings together:
//		• Exact search: best-first branch-and-bound with admissible relaxation bounds
//		• Pruning: greedy incumbent seeding + linear-relaxation upper bounds
//		• Cutting planes: a manager for pluggable valid-inequality separators
//		• Branching: composable, immutable branching decisions
//		• Observability: a typed event bus with per-kind ordered listeners
//
// ✨ Why choose jorlib?
//
//   - Deterministic – identical inputs and options yield identical runs
//   - Strict contracts – sentinel errors on malformed input, never deep panics
//   - Pluggable policies – frontier ordering and cut separation are injected
//   - Single-threaded by design – no hidden goroutines, no locks in hot loops
//
// Everything is organized under four subpackages:
//
//	knapsack/  — exact 0/1 knapsack solver (best-first branch-and-bound)
//	cuts/      — valid-inequality (cut) manager with pluggable separation generators
//	branching/ — branching-decision predicates and root-to-node decision chains
//	events/    — typed lifecycle event bus consumed by external observers
//
// Quick example:
//
//	res, err := knapsack.Solve(
//	    []float64{15, 10, 9, 5}, // values
//	    []int{1, 5, 3, 4},       // weights
//	    8,                       // capacity
//	    knapsack.DefaultOptions(),
//	)
//	// res.Value == 29, res.Selected == [true false true true]
package jorlib
