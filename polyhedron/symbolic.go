package polyhedron

import (
	"github.com/katalvlaran/polyaffine/imatrix"
	"github.com/katalvlaran/polyaffine/mpoly"
	"github.com/katalvlaran/polyaffine/poset"
)

// symbolicHooks delegates both sign decisions to an owned POSet
// (spec.md §4.Gʹ "Symbolic polyhedron"). knownLessEqualZero(x) is
// knownGreaterEqualZero(-x): the POSet itself only needs to implement
// the non-negativity procedure.
type symbolicHooks struct {
	set *poset.POSet
}

func (h symbolicHooks) KnownLessEqualZero(x mpoly.Polynomial) bool {
	return h.set.KnownGreaterEqualZero(x.Neg())
}

func (h symbolicHooks) KnownGreaterEqualZero(x mpoly.Polynomial) bool {
	return h.set.KnownGreaterEqualZero(x)
}

// Symbolic is AbstractPolyhedra specialized to MPoly bounds, backed by
// a POSet that the polyhedron holds by pointer. The constructors create
// that POSet fresh and also return it to the caller, who pushes
// parameter facts into it; the polyhedron only queries it, and Clone
// shares the same POSet rather than copying it.
type Symbolic = AbstractPolyhedra[mpoly.Polynomial]

// NewSymbolic builds a Symbolic polyhedron over a fresh POSet, with no
// equality constraints, and returns that POSet alongside it.
func NewSymbolic(a *imatrix.Dense, b []mpoly.Polynomial) (*Symbolic, *poset.POSet, error) {
	set := poset.New()
	p, err := New[mpoly.Polynomial](a, b, symbolicHooks{set: set})
	return p, set, err
}

// NewSymbolicWithEqualities builds a Symbolic polyhedron with both
// inequality and equality constraints over a fresh POSet, and returns
// that POSet alongside it.
func NewSymbolicWithEqualities(a *imatrix.Dense, b []mpoly.Polynomial, e *imatrix.Dense, q []mpoly.Polynomial) (*Symbolic, *poset.POSet, error) {
	set := poset.New()
	p, err := NewWithEqualities[mpoly.Polynomial](a, b, e, q, symbolicHooks{set: set})
	return p, set, err
}
