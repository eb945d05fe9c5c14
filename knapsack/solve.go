package knapsack

import (
	"container/heap"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/NagibSuaid/jorlib/events"
)

// component names this package as the source of published events.
const component = "knapsack"

// Solve runs an exact best-first branch-and-bound on the given instance and
// returns the optimal selection.
//
// Contracts:
//   - len(values) == len(weights); weights and capacity are non-negative
//     integers. Violations fail fast with a sentinel (ErrDimensionMismatch,
//     ErrNegativeCapacity, ErrNegativeWeight).
//   - Values may be any real; items with non-positive value are never
//     selected.
//   - With a zero-item instance, Solve returns an empty Result.
//   - With Options.TimeLimit > 0, expiry is a normal termination: Solve
//     publishes TimeLimitExceeded and returns the current incumbent.
//
// The returned value satisfies Σ weights[i]·Selected[i] ≤ capacity and is
// never below the greedy heuristic for the same instance.
//
// Complexity: worst case O(2ⁿ) nodes, O(n) bound per node; see the package
// documentation for the pruning rationale.
func Solve(values []float64, weights []int, capacity int, opts Options) (Result, error) {
	// Preconditions are enforced here only, never deep inside the loop.
	if len(values) != len(weights) {
		return Result{}, ErrDimensionMismatch
	}
	if capacity < 0 {
		return Result{}, ErrNegativeCapacity
	}
	for _, w := range weights {
		if w < 0 {
			return Result{}, ErrNegativeWeight
		}
	}

	e := &engine{
		values:   values,
		weights:  weights,
		capacity: capacity,
		order:    ratioOrder(values, weights),
		bus:      opts.Bus,
		start:    time.Now(),
	}
	cmp := opts.Order
	if cmp == nil {
		cmp = BestBoundFirst{}
	}
	e.front = &frontier{cmp: cmp, nodes: make([]*node, 0, len(values))}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = e.start.Add(opts.TimeLimit)
	}

	return e.run(), nil
}

// engine holds all search data for a single run. A dedicated struct (rather
// than closures) keeps dependencies explicit and hot-path state predictable.
type engine struct {
	// Instance data
	values   []float64
	weights  []int
	capacity int
	order    []int // item indices in descending value/weight-ratio order

	// Policies / side channels
	front *frontier
	bus   *events.Bus

	// Time budget
	start       time.Time
	useDeadline bool
	deadline    time.Time

	// Search state
	nextID int64
	best   Result // incumbent; monotonically improves
}

// run executes the search loop: pop by the active ordering, prune against
// the incumbent, branch, repeat until the frontier drains or the deadline
// fires. The incumbent is returned in both cases.
func (e *engine) run() Result {
	e.publish(events.KindSearch, events.StartSearch{From: component})

	// Greedy incumbent first: it is the pruning threshold for the root.
	e.best = greedySolution(e.values, e.weights, e.order, e.capacity)

	// Root: no decision fixed, bound over all items.
	root := &node{id: e.newID(), level: -1, sel: roaring.New()}
	root.bound = calcBound(e.values, e.weights, e.order, 0, e.capacity, 0)
	heap.Push(e.front, root)

	for e.front.Len() > 0 {
		if e.useDeadline && time.Now().After(e.deadline) {
			e.publish(events.KindSearch, events.TimeLimitExceeded{
				From:    component,
				Elapsed: time.Since(e.start),
			})

			break
		}

		n := heap.Pop(e.front).(*node)

		// Pruned (the bound cannot beat the incumbent) or terminal (every
		// item fixed): discard.
		if n.bound <= e.best.Value || n.level == len(e.order)-1 {
			continue
		}

		e.branch(n)
	}

	e.publish(events.KindSearch, events.FinishSearch{From: component, Value: e.best.Value})

	return e.best
}

// branch expands a popped node into its include/exclude children and pushes
// them onto the frontier. The include child exists only when the next item
// fits and has positive value; a new incumbent is committed eagerly at child
// creation, not deferred to pop time.
func (e *engine) branch(parent *node) {
	level := parent.level + 1
	item := e.order[level]

	e.publish(events.KindSubproblemSolve, events.StartSubproblemSolve{
		From: component, NodeID: parent.id, Level: level,
	})

	if parent.weight+e.weights[item] <= e.capacity && e.values[item] > 0 {
		inc := &node{
			id:     e.newID(),
			level:  level,
			value:  parent.value + e.values[item],
			weight: parent.weight + e.weights[item],
			sel:    parent.sel.Clone(),
		}
		inc.sel.Add(uint32(item))
		inc.bound = calcBound(e.values, e.weights, e.order, level+1, e.capacity-inc.weight, inc.value)
		if inc.value > e.best.Value {
			e.commit(inc)
		}
		heap.Push(e.front, inc)
	}

	// Exclude child: selection unchanged, so the parent's bitmap is shared
	// (queued nodes are immutable, sharing is safe).
	exc := &node{
		id:     e.newID(),
		level:  level,
		value:  parent.value,
		weight: parent.weight,
		sel:    parent.sel,
	}
	exc.bound = calcBound(e.values, e.weights, e.order, level+1, e.capacity-exc.weight, exc.value)
	heap.Push(e.front, exc)

	e.publish(events.KindSubproblemSolve, events.FinishSubproblemSolve{
		From: component, NodeID: parent.id, Bound: parent.bound,
	})
}

// commit records a new incumbent from an improving node.
func (e *engine) commit(n *node) {
	sel := make([]bool, len(e.values))
	n.sel.Iterate(func(x uint32) bool {
		sel[x] = true

		return true
	})
	e.best = Result{Selected: sel, UsedWeight: n.weight, Value: n.value}
}

// newID hands out creation sequence numbers (CreationOrder relies on them).
func (e *engine) newID() int64 {
	id := e.nextID
	e.nextID++

	return id
}

// publish forwards an event to the bus, if one is attached.
func (e *engine) publish(kind events.Kind, ev events.Event) {
	if e.bus != nil {
		e.bus.Publish(kind, ev)
	}
}
