package branching

import "github.com/NagibSuaid/jorlib/cuts"

// Column is a candidate solution fragment inspected by branching decisions.
// Implementations expose element membership only; decisions never mutate a
// column.
type Column interface {
	// Contains reports whether element id is part of the candidate.
	Contains(id uint32) bool
}

// Decision splits the remaining search space. Both predicates are pure: they
// depend only on the decision and their argument.
type Decision interface {
	// ColumnCompatible reports whether the candidate fragment is still
	// admissible under this decision.
	ColumnCompatible(c Column) bool

	// InequalityCompatible reports whether a previously separated cut remains
	// valid under this decision.
	InequalityCompatible(iq cuts.Inequality) bool
}

// Chain is the conjunction of the decisions along a root-to-node path, in
// root-first order. A node is feasible only if every inherited decision's
// predicates pass.
type Chain []Decision

// Extend returns the child chain obtained by appending d. The parent's
// entries are shared structurally but never aliased for writing: the full
// slice expression forces a copy if the parent's backing array has room, so
// sibling chains cannot clobber each other.
func (ch Chain) Extend(d Decision) Chain {
	return append(ch[:len(ch):len(ch)], d)
}

// ColumnCompatible reports whether c passes every decision in the chain.
func (ch Chain) ColumnCompatible(c Column) bool {
	for _, d := range ch {
		if !d.ColumnCompatible(c) {
			return false
		}
	}

	return true
}

// InequalityCompatible reports whether iq passes every decision in the chain.
func (ch Chain) InequalityCompatible(iq cuts.Inequality) bool {
	for _, d := range ch {
		if !d.InequalityCompatible(iq) {
			return false
		}
	}

	return true
}
