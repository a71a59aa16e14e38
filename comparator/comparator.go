// Package comparator implements the sound-incomplete comparator
// protocol over coefficient vectors: a constraint row `[c0, c1, ..., cm]`
// is read as the polynomial `c0 + sum(ci*mi)`, and every derived
// predicate may return true only when certain (spec.md §4.F
// "Comparator protocol").
package comparator

// Comparator decides whether the polynomial encoded by a coefficient
// vector is known non-negative. Every other predicate in this package
// is derived from GreaterEqual by negating or shifting the constant
// column, so a concrete type needs to implement only this one method
// (spec.md §4.F).
//
// Implementations must return true only when certain: false means
// "unknown or false," never "definitely false."
type Comparator interface {
	GreaterEqual(x []int64) bool
}

func negated(x []int64) []int64 {
	y := make([]int64, len(x))
	for i, v := range x {
		y[i] = -v
	}
	return y
}

func delta(x, y []int64) []int64 {
	d := make([]int64, len(x))
	for i := range x {
		d[i] = x[i] - y[i]
	}
	return d
}

func equalSlices(x, y []int64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// LessEqual reports whether poly(x) <= 0, i.e. poly(-x) >= 0.
func LessEqual(c Comparator, x []int64) bool {
	return c.GreaterEqual(negated(x))
}

// Greater reports whether poly(x) > 0, i.e. poly(x) - 1 >= 0 after
// shifting the constant column.
func Greater(c Comparator, x []int64) bool {
	shifted := append([]int64(nil), x...)
	shifted[0]--
	return c.GreaterEqual(shifted)
}

// Less reports whether poly(x) < 0, i.e. poly(-x) > 0.
func Less(c Comparator, x []int64) bool {
	return Greater(c, negated(x))
}

// Equal reports whether poly(x) == 0.
func Equal(c Comparator, x []int64) bool {
	for _, v := range x {
		if v != 0 {
			return c.GreaterEqual(x) && LessEqual(c, x)
		}
	}
	return true
}

// GreaterEqual2 reports whether poly(x) >= poly(y).
func GreaterEqual2(c Comparator, x, y []int64) bool {
	return c.GreaterEqual(delta(x, y))
}

// LessEqual2 reports whether poly(x) <= poly(y).
func LessEqual2(c Comparator, x, y []int64) bool {
	return GreaterEqual2(c, y, x)
}

// Greater2 reports whether poly(x) > poly(y).
func Greater2(c Comparator, x, y []int64) bool {
	d := delta(x, y)
	d[0]--
	return c.GreaterEqual(d)
}

// Less2 reports whether poly(x) < poly(y).
func Less2(c Comparator, x, y []int64) bool {
	return Greater2(c, y, x)
}

// Equal2 reports whether poly(x) == poly(y).
func Equal2(c Comparator, x, y []int64) bool {
	if equalSlices(x, y) {
		return true
	}
	return GreaterEqual2(c, x, y) && GreaterEqual2(c, y, x)
}

// EqualNegative reports whether poly(x) + poly(y) == 0, without
// relying on unsigned-wraparound-sensitive subtraction (spec.md §4.F).
func EqualNegative(c Comparator, x, y []int64) bool {
	sum := make([]int64, len(x))
	allZero := true
	for i := range x {
		sum[i] = x[i] + y[i]
		if sum[i] != 0 {
			allZero = false
		}
	}
	if allZero {
		return true
	}
	return Equal(c, sum)
}

// LessEqualK reports whether poly(x) <= k, by shifting the constant
// column before delegating to LessEqual.
func LessEqualK(c Comparator, x []int64, k int64) bool {
	shifted := append([]int64(nil), x...)
	shifted[0] -= k
	return LessEqual(c, shifted)
}
