package comparator

import (
	"github.com/katalvlaran/polyaffine/mpoly"
	"github.com/katalvlaran/polyaffine/poset"
)

// Symbolic compares coefficient vectors against a fixed monomial list,
// deferring the actual sign decision to a borrowed POSet (spec.md §4.F
// "Symbolic comparator"). It never mutates the POSet: ownership stays
// with whoever constructed it (spec.md §9 design note, see also
// polyhedron.Symbolic which owns a POSet by value).
type Symbolic struct {
	set       *poset.POSet
	monomials []mpoly.Monomial
}

// NewSymbolic builds a Symbolic comparator over set that tracks no
// monomials, so it reads only the literal column x[0]. A comparator
// that tracks monomials is built with NewSymbolicFor.
func NewSymbolic(set *poset.POSet) *Symbolic {
	return &Symbolic{set: set}
}

// NewSymbolicFor builds a Symbolic comparator over set, collecting
// every non-trivial monomial appearing in the given polynomials, in
// first-seen order (mirrors the original's construct(x, poset), which
// scans each polynomial's terms once).
func NewSymbolicFor(polys []mpoly.Polynomial, set *poset.POSet) *Symbolic {
	sc := NewSymbolic(set)
	seen := make(map[string]bool)
	for _, p := range polys {
		for _, t := range p.Terms {
			if t.Exponent.IsOne() {
				continue
			}
			key := monomialKey(t.Exponent)
			if seen[key] {
				continue
			}
			seen[key] = true
			sc.monomials = append(sc.monomials, t.Exponent)
		}
	}
	return sc
}

func monomialKey(m mpoly.Monomial) string {
	// Monomial is already canonical (sorted IDs), so a direct byte
	// encoding is a valid equality key.
	b := make([]byte, 0, 4*len(m))
	for _, id := range m {
		b = append(b, byte(id), byte(id>>8), byte(id>>16), byte(id>>24))
	}
	return string(b)
}

// NumConstantTerms reports the coefficient-vector width this comparator
// expects: 1 (the literal column) plus one per tracked monomial.
func (s *Symbolic) NumConstantTerms() int { return 1 + len(s.monomials) }

// Monomials returns the tracked monomial list in column order (column
// i+1 of a coefficient vector is the coefficient of Monomials()[i]).
func (s *Symbolic) Monomials() []mpoly.Monomial { return s.monomials }

// polyOf builds the MPoly encoded by coefficient vector x: x[0] is the
// literal constant, x[i+1] is the coefficient of s.monomials[i].
func (s *Symbolic) polyOf(x []int64) mpoly.Polynomial {
	p := mpoly.Zero()
	for i, m := range s.monomials {
		if c := x[i+1]; c != 0 {
			p = p.Add(mpoly.FromTerm(c, m))
		}
	}
	if c := x[0]; c != 0 {
		p = p.Add(mpoly.Constant(c))
	}
	return p
}

// GreaterEqual reports whether the polynomial encoded by x is known
// non-negative under every admissible parameter assignment consistent
// with the borrowed POSet.
func (s *Symbolic) GreaterEqual(x []int64) bool {
	return s.set.KnownGreaterEqualZero(s.polyOf(x))
}

var _ Comparator = (*Symbolic)(nil)
