package knapsack

// greedySolution builds the initial incumbent: walk the ratio order, take
// each positive-value item that fits entirely, skip the rest. The result is
// always feasible and seeds the pruning threshold; it is returned as-is when
// no search node improves on it.
func greedySolution(values []float64, weights []int, order []int, capacity int) Result {
	sel := make([]bool, len(values))
	remaining := capacity
	var value float64
	for _, it := range order {
		if values[it] <= 0 {
			break // dominated tail; never candidates
		}
		if weights[it] > remaining {
			continue
		}
		remaining -= weights[it]
		value += values[it]
		sel[it] = true
	}

	return Result{Selected: sel, UsedWeight: capacity - remaining, Value: value}
}
