package comparator

// Empty treats every constraint as the trivially-true `0 <= 0`; used
// wherever the surrounding code needs an oracle but has no symbolic or
// literal information to offer (spec.md §4.F "Empty comparator").
type Empty struct{}

// NumConstantTerms reports the coefficient-vector width Empty expects.
// Empty never reads its argument, so this is informational only.
func (Empty) NumConstantTerms() int { return 0 }

// GreaterEqual always returns true.
func (Empty) GreaterEqual([]int64) bool { return true }

var _ Comparator = Empty{}
