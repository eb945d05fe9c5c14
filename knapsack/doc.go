// Package knapsack solves the 0/1 knapsack problem exactly:
//
//	max  Σᵢ vᵢ·xᵢ
//	s.t. Σᵢ wᵢ·xᵢ ≤ capacity,  xᵢ ∈ {0,1}
//
// with integral non-negative weights and arbitrary real values.
//
// Solve runs a best-first branch-and-bound over a binary tree: level k of
// the tree fixes the k-th item in descending value/weight-ratio order, and
// each expanded node yields an "include" and an "exclude" child. Pruning
// uses the linear-relaxation upper bound (greedy prefix plus one prorated
// fractional item), which is admissible, and a greedy feasible solution
// seeds the incumbent before the first node is popped.
//
// Rationale (succinct):
//  1. The ratio order makes the relaxation bound a single forward scan per
//     node, O(n) worst case, and tends to tighten the incumbent early.
//  2. Queued nodes are immutable: children are fresh nodes, the exclude
//     child shares the parent's selection bitmap and the include child
//     clones it (copy-on-write), so deep trees avoid quadratic copying.
//  3. Frontier ordering is a pluggable Comparator. It is correctness-neutral
//     — the returned optimum is identical under any ordering — and only
//     changes how many nodes are expanded before the frontier drains.
//  4. A soft time budget is polled between iterations; on expiry the current
//     incumbent is returned normally and TimeLimitExceeded is published.
//
// Edge cases:
//   - Items with non-positive value are never candidates.
//   - A zero-weight item with positive value is always included and consumes
//     no capacity; the bound interpolation guards the division.
//
// Complexity:
//   - Worst case O(2ⁿ) nodes (exact search); pruning keeps practical runs
//     far smaller. Per node: O(n) bound + O(1) state updates.
//   - Memory: frontier size × O(1) node state, with selection bitmaps shared
//     between exclude-descendants.
package knapsack
