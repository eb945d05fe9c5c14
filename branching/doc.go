// Package branching defines how a branch-and-price search node splits the
// remaining solution space.
//
// A Decision is an immutable pair of pure predicates: one over candidate
// solution fragments (columns), one over previously separated inequalities.
// Decisions attached to a node are inherited by all of its descendants and
// never retracted deeper in the tree; a Chain composes them by conjunction
// along the root-to-node path.
//
// Two concrete decisions are provided: SameGroup forces two elements into
// the same group of a candidate, DifferentGroup keeps them apart.
//
// Complexity: each predicate is O(1) per decision; a Chain evaluates in
// O(depth).
package branching
