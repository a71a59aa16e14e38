package comparator

// Literal compares coefficient vectors whose single column is a
// literal integer constant: x[0] (spec.md §4.F "Literal comparator").
type Literal struct{}

// NumConstantTerms reports the coefficient-vector width Literal expects.
func (Literal) NumConstantTerms() int { return 1 }

// GreaterEqual reports whether x[0] >= 0.
func (Literal) GreaterEqual(x []int64) bool { return x[0] >= 0 }

var _ Comparator = Literal{}
