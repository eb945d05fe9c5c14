package branching

import (
	"fmt"

	"github.com/NagibSuaid/jorlib/cuts"
)

// SameGroup requires elements A and B to be assigned to the same group: a
// candidate is admissible iff it contains both elements or neither.
type SameGroup struct {
	A, B uint32
}

// ColumnCompatible reports whether c's membership of A and B is identical.
func (d SameGroup) ColumnCompatible(c Column) bool {
	return c.Contains(d.A) == c.Contains(d.B)
}

// InequalityCompatible is trivially true: SameGroup does not constrain
// previously generated inequalities.
func (d SameGroup) InequalityCompatible(cuts.Inequality) bool { return true }

func (d SameGroup) String() string { return fmt.Sprintf("SameGroup(%d,%d)", d.A, d.B) }

// DifferentGroup requires elements A and B to be assigned to different
// groups: a candidate is admissible iff it does not contain both.
type DifferentGroup struct {
	A, B uint32
}

// ColumnCompatible reports whether c contains at most one of A and B.
func (d DifferentGroup) ColumnCompatible(c Column) bool {
	return !(c.Contains(d.A) && c.Contains(d.B))
}

// InequalityCompatible is trivially true: DifferentGroup does not constrain
// previously generated inequalities.
func (d DifferentGroup) InequalityCompatible(cuts.Inequality) bool { return true }

func (d DifferentGroup) String() string { return fmt.Sprintf("DifferentGroup(%d,%d)", d.A, d.B) }
