package knapsack

import (
	"errors"
	"time"

	"github.com/NagibSuaid/jorlib/events"
)

// Sentinel errors returned by Solve on malformed input.
var (
	// ErrDimensionMismatch indicates len(values) != len(weights).
	ErrDimensionMismatch = errors.New("knapsack: values and weights differ in length")

	// ErrNegativeCapacity indicates a negative knapsack capacity.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNegativeWeight indicates a negative item weight. Weights must be
	// non-negative integers; a negative weight would break the admissibility
	// of the relaxation bound under the ratio order.
	ErrNegativeWeight = errors.New("knapsack: item weights must be non-negative")
)

// Result holds the outcome of a knapsack run.
type Result struct {
	// Selected[i] reports whether item i is part of the solution.
	Selected []bool

	// UsedWeight is the total weight of the selected items.
	UsedWeight int

	// Value is the total value of the selected items.
	Value float64
}

// NodeInfo is the read-only frontier snapshot handed to Comparators.
// Comparators must not assume any other node state exists.
type NodeInfo struct {
	// ID is the node's creation sequence number; the root is 0.
	ID int64

	// Level is the index (in ratio order) of the last fixed item; -1 at the
	// root, where no decision has been taken yet.
	Level int

	// Bound is the node's linear-relaxation upper bound.
	Bound float64

	// Value is the objective achieved by the node's partial selection.
	Value float64

	// UsedWeight is the capacity consumed by the node's partial selection.
	UsedWeight int
}

// Comparator orders the frontier: Less reports whether a must be popped
// before b. Ordering is correctness-neutral — the final incumbent is
// independent of exploration order — and affects only the number of nodes
// expanded.
type Comparator interface {
	Less(a, b NodeInfo) bool
}

// BestBoundFirst pops the node with the largest relaxation bound first
// (ties broken by creation order for determinism). This is the default and
// usually expands the fewest nodes.
type BestBoundFirst struct{}

// Less orders by descending bound, then ascending node ID.
func (BestBoundFirst) Less(a, b NodeInfo) bool {
	if a.Bound != b.Bound {
		return a.Bound > b.Bound
	}

	return a.ID < b.ID
}

// CreationOrder pops nodes in creation sequence, yielding a breadth-first
// traversal of the tree.
type CreationOrder struct{}

// Less orders by ascending node ID.
func (CreationOrder) Less(a, b NodeInfo) bool { return a.ID < b.ID }

// Options configures a single Solve run.
//
//   - Order: frontier ordering strategy; nil means BestBoundFirst.
//   - TimeLimit: soft time budget; 0 means unlimited. On expiry Solve
//     publishes TimeLimitExceeded and returns the current incumbent normally.
//   - Bus: event bus for lifecycle milestones; nil disables events.
type Options struct {
	Order     Comparator
	TimeLimit time.Duration
	Bus       *events.Bus
}

// DefaultOptions returns the default configuration: best-bound-first
// ordering, no time limit, no event bus.
func DefaultOptions() Options {
	return Options{Order: BestBoundFirst{}}
}
