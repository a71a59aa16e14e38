package polyhedron

import "github.com/katalvlaran/polyaffine/imatrix"

// integerHooks provides the literal-integer sign decisions for Integer
// polyhedra: knownLessEqualZero/knownGreaterEqualZero are just direct
// comparisons against zero (spec.md §4.Gʹ "Integer polyhedron").
type integerHooks struct{}

func (integerHooks) KnownLessEqualZero(x Int64) bool    { return x <= 0 }
func (integerHooks) KnownGreaterEqualZero(x Int64) bool { return x >= 0 }

// Integer is AbstractPolyhedra specialized to literal int64 bounds.
type Integer = AbstractPolyhedra[Int64]

// NewInteger builds an Integer polyhedron from an A matrix and literal
// rhs vector, with no equality constraints.
func NewInteger(a *imatrix.Dense, b []int64) (*Integer, error) {
	bv := make([]Int64, len(b))
	for i, v := range b {
		bv[i] = Int64(v)
	}
	return New[Int64](a, bv, integerHooks{})
}

// NewIntegerWithEqualities builds an Integer polyhedron with both
// inequality and equality constraints.
func NewIntegerWithEqualities(a *imatrix.Dense, b []int64, e *imatrix.Dense, q []int64) (*Integer, error) {
	bv := make([]Int64, len(b))
	for i, v := range b {
		bv[i] = Int64(v)
	}
	qv := make([]Int64, len(q))
	for i, v := range q {
		qv[i] = Int64(v)
	}
	return NewWithEqualities[Int64](a, bv, e, qv, integerHooks{})
}
