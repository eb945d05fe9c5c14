package events

import "time"

// Kind groups related lifecycle milestones; listeners subscribe per Kind.
type Kind uint8

const (
	// KindSearch covers whole-run milestones: StartSearch, FinishSearch and
	// TimeLimitExceeded.
	KindSearch Kind = iota

	// KindSubproblemSolve covers per-node relaxation solves: StartSubproblemSolve and
	// FinishSubproblemSolve.
	KindSubproblemSolve

	// KindCutGeneration covers cut separation rounds: StartCutGeneration and
	// FinishCutGeneration.
	KindCutGeneration
)

// Cut is the read-only view of a separated inequality carried by
// FinishCutGeneration. Concrete inequality types live outside this package;
// any fmt.Stringer-compatible cut satisfies it.
type Cut interface {
	String() string
}

// Event is an immutable milestone snapshot. Source names the component that
// published the event (e.g. "knapsack", "cuts.Manager").
type Event interface {
	Source() string
}

// StartSearch signals that a search run has begun.
type StartSearch struct {
	From string
}

// Source returns the publishing component name.
func (e StartSearch) Source() string { return e.From }

// FinishSearch signals that a search run has terminated normally.
// Value is the incumbent objective at termination.
type FinishSearch struct {
	From  string
	Value float64
}

// Source returns the publishing component name.
func (e FinishSearch) Source() string { return e.From }

// StartSubproblemSolve signals that a search node is about to be expanded.
// Level is the tree level fixed by this expansion.
type StartSubproblemSolve struct {
	From   string
	NodeID int64
	Level  int
}

// Source returns the publishing component name.
func (e StartSubproblemSolve) Source() string { return e.From }

// FinishSubproblemSolve signals that one search node has been expanded.
// Bound is the node's relaxation upper bound.
type FinishSubproblemSolve struct {
	From   string
	NodeID int64
	Bound  float64
}

// Source returns the publishing component name.
func (e FinishSubproblemSolve) Source() string { return e.From }

// StartCutGeneration signals that a cut-separation round has begun.
type StartCutGeneration struct {
	From string
}

// Source returns the publishing component name.
func (e StartCutGeneration) Source() string { return e.From }

// FinishCutGeneration signals that a cut-separation round has finished.
// Separated holds the cuts found during the round, in generator order; the
// publisher does not retain or mutate the slice after publishing.
type FinishCutGeneration struct {
	From      string
	Separated []Cut
}

// Source returns the publishing component name.
func (e FinishCutGeneration) Source() string { return e.From }

// TimeLimitExceeded signals that a search run hit its soft time budget and
// is returning its current incumbent. It is a normal termination signal,
// not an error.
type TimeLimitExceeded struct {
	From    string
	Elapsed time.Duration
}

// Source returns the publishing component name.
func (e TimeLimitExceeded) Source() string { return e.From }
