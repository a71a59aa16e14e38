// Package mpoly implements symbolic polynomials (MPoly): sums of
// coeff·monomial terms over parameter variables, used as the
// right-hand-side type of a symbolic polyhedron's constraint system
// (spec.md §3 "Term, Polynomial (MPoly)").
package mpoly

import "sort"

// Term is coefficient·exponent in canonical form: Coefficient is never
// zero once stored inside a Polynomial.
type Term struct {
	Coefficient int64
	Exponent    Monomial
}

// Polynomial is a sum of terms, at most one per monomial, sorted by
// compareMonomial, with every zero coefficient dropped. The zero
// polynomial is the empty sequence.
type Polynomial struct {
	Terms []Term
}

// Zero returns the zero polynomial.
func Zero() Polynomial { return Polynomial{} }

// Constant returns the polynomial representing a single integer c.
func Constant(c int64) Polynomial {
	if c == 0 {
		return Zero()
	}
	return Polynomial{Terms: []Term{{Coefficient: c, Exponent: One()}}}
}

// FromTerm returns the polynomial consisting of a single coeff·monomial
// term (or the zero polynomial if coeff is 0).
func FromTerm(coeff int64, m Monomial) Polynomial {
	if coeff == 0 {
		return Zero()
	}
	return Polynomial{Terms: []Term{{Coefficient: coeff, Exponent: m}}}
}

// IsZero reports whether p has no terms.
func (p Polynomial) IsZero() bool { return len(p.Terms) == 0 }

// IsOne reports whether p is exactly the constant polynomial 1.
func (p Polynomial) IsOne() bool {
	return len(p.Terms) == 1 && p.Terms[0].Coefficient == 1 && p.Terms[0].Exponent.IsOne()
}

// ConstValue returns the integer value of p and true if p is a
// compile-time constant (zero or a single term with the trivial
// monomial); otherwise it returns (0, false).
func (p Polynomial) ConstValue() (int64, bool) {
	if p.IsZero() {
		return 0, true
	}
	if len(p.Terms) == 1 && p.Terms[0].Exponent.IsOne() {
		return p.Terms[0].Coefficient, true
	}
	return 0, false
}

// Equal reports whether p and q have identical term sequences.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.Terms) != len(q.Terms) {
		return false
	}
	for i := range p.Terms {
		if p.Terms[i].Coefficient != q.Terms[i].Coefficient ||
			!p.Terms[i].Exponent.Equal(q.Terms[i].Exponent) {
			return false
		}
	}
	return true
}

// canonicalize sorts terms by monomial, merges equal monomials by
// summing coefficients, and drops zero-coefficient terms.
func canonicalize(terms []Term) []Term {
	sort.SliceStable(terms, func(i, j int) bool {
		return compareMonomial(terms[i].Exponent, terms[j].Exponent) < 0
	})
	out := terms[:0]
	for _, t := range terms {
		if len(out) > 0 && out[len(out)-1].Exponent.Equal(t.Exponent) {
			out[len(out)-1].Coefficient += t.Coefficient
			continue
		}
		out = append(out, t)
	}
	final := out[:0:0]
	for _, t := range out {
		if t.Coefficient != 0 {
			final = append(final, t)
		}
	}
	return final
}

// Add returns p+q as a new canonical polynomial.
func (p Polynomial) Add(q Polynomial) Polynomial {
	merged := make([]Term, 0, len(p.Terms)+len(q.Terms))
	merged = append(merged, p.Terms...)
	merged = append(merged, q.Terms...)
	return Polynomial{Terms: canonicalize(merged)}
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	out := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		out[i] = Term{Coefficient: -t.Coefficient, Exponent: t.Exponent}
	}
	return Polynomial{Terms: out}
}

// Sub returns p-q.
func (p Polynomial) Sub(q Polynomial) Polynomial { return p.Add(q.Neg()) }

// AddConst returns p+k, the polynomial right-hand-side analogue of
// adding a bare literal (used by package polyhedron's isEmpty and
// knownSatisfied checks, which shift a symbolic bound by a constant).
func (p Polynomial) AddConst(k int64) Polynomial { return p.Add(Constant(k)) }

// Scale returns p multiplied by the integer scalar k (k==0 yields Zero).
func (p Polynomial) Scale(k int64) Polynomial {
	if k == 0 {
		return Zero()
	}
	out := make([]Term, len(p.Terms))
	for i, t := range p.Terms {
		out[i] = Term{Coefficient: t.Coefficient * k, Exponent: t.Exponent}
	}
	return Polynomial{Terms: out}
}

// AddInPlace mutates p to p+q, mirroring the original's operator+=.
func (p *Polynomial) AddInPlace(q Polynomial) { *p = p.Add(q) }
