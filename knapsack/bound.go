package knapsack

import (
	"math"
	"sort"
)

// itemRatio is the value/weight density used for the item order and the
// relaxation bound. Zero-weight items with positive value are infinitely
// dense (always taken, never divide); zero-weight items without positive
// value fall through with their raw value so they sort into the dominated
// tail.
func itemRatio(value float64, weight int) float64 {
	if weight == 0 {
		if value > 0 {
			return math.Inf(1)
		}

		return value
	}

	return value / float64(weight)
}

// ratioOrder returns the item indices sorted by descending value/weight
// ratio, with the original index as tiebreak. Deterministic ordering keeps
// runs reproducible under identical inputs.
func ratioOrder(values []float64, weights []int) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ra, rb := itemRatio(values[order[a]], weights[order[a]]), itemRatio(values[order[b]], weights[order[b]])
		if ra == rb {
			return order[a] < order[b]
		}

		return ra > rb
	})

	return order
}

// calcBound computes the linear-relaxation upper bound for a partial
// solution: starting at position next of the ratio order, items are taken
// greedily while they fit entirely; the first item that does not fit
// contributes a prorated fraction of its value, and the scan stops.
//
// The bound is admissible: it never undercuts the true integer optimum of
// the remaining subproblem. Items with non-positive value are never
// candidates; since the order places them last, the scan stops at the first
// one. Zero-weight items (infinite ratio, at the front of the order) are
// taken without consuming capacity, so the prorating division can never see
// a zero weight.
func calcBound(values []float64, weights []int, order []int, next, remaining int, value float64) float64 {
	bound := value
	i := next
	for ; i < len(order); i++ {
		it := order[i]
		if values[it] <= 0 {
			return bound // dominated tail
		}
		if weights[it] == 0 {
			bound += values[it]

			continue
		}
		if weights[it] > remaining {
			break
		}
		remaining -= weights[it]
		bound += values[it]
	}
	if i < len(order) && remaining > 0 {
		it := order[i]
		bound += values[it] * float64(remaining) / float64(weights[it])
	}

	return bound
}
