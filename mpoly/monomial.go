package mpoly

import "sort"

// Monomial is an ordered multiset of symbolic-constant parameter IDs
// representing their product. Canonical form keeps IDs in non-decreasing
// order; the trivial (empty) monomial represents the constant 1.
type Monomial []uint32

// One is the trivial monomial (the empty product, representing 1).
func One() Monomial { return nil }

// IsOne reports whether m is the trivial monomial.
func (m Monomial) IsOne() bool { return len(m) == 0 }

// Degree returns the number of factors in m (with multiplicity).
func (m Monomial) Degree() int { return len(m) }

// NewMonomial builds the canonical form of a product of the given
// parameter IDs, sorting them into non-decreasing order.
func NewMonomial(ids ...uint32) Monomial {
	if len(ids) == 0 {
		return One()
	}
	m := make(Monomial, len(ids))
	copy(m, ids)
	sort.Slice(m, func(i, j int) bool { return m[i] < m[j] })
	return m
}

// Equal reports whether m and n are the same monomial, i.e. their ID
// sequences are identical.
func (m Monomial) Equal(n Monomial) bool {
	if len(m) != len(n) {
		return false
	}
	for i := range m {
		if m[i] != n[i] {
			return false
		}
	}
	return true
}

// Mul returns the canonical product of two monomials.
func (m Monomial) Mul(n Monomial) Monomial {
	out := make(Monomial, 0, len(m)+len(n))
	out = append(out, m...)
	out = append(out, n...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// compareMonomial imposes the fixed total order monomials are stored in within
// an MPoly: shorter monomials first, then lexicographic by ID.
// Determinism here is what lets Polynomial canonicalization merge like
// terms with a single linear scan.
func compareMonomial(a, b Monomial) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
