// Package interval provides saturating int64 interval arithmetic.
//
// An Interval is a closed range [Lo, Hi]. Lo > Hi denotes the empty
// interval. Arithmetic never panics on overflow: results saturate at
// math.MinInt64/math.MaxInt64 instead of wrapping, which keeps the
// partially-ordered-set transitive closure (package poset) well defined
// even when callers push wildly large symbolic bounds.
package interval

import "math"

// Interval is a closed integer range [Lo, Hi].
type Interval struct {
	Lo, Hi int64
}

// Point returns the single-value interval [x, x].
func Point(x int64) Interval { return Interval{Lo: x, Hi: x} }

// Zero is the interval containing only 0.
func Zero() Interval { return Interval{Lo: 0, Hi: 0} }

// Positive is [1, max].
func Positive() Interval { return Interval{Lo: 1, Hi: math.MaxInt64} }

// Negative is [min, -1].
func Negative() Interval { return Interval{Lo: math.MinInt64, Hi: -1} }

// NonNegative is [0, max].
func NonNegative() Interval { return Interval{Lo: 0, Hi: math.MaxInt64} }

// NonPositive is [min, 0].
func NonPositive() Interval { return Interval{Lo: math.MinInt64, Hi: 0} }

// Unconstrained is [min, max].
func Unconstrained() Interval { return Interval{Lo: math.MinInt64, Hi: math.MaxInt64} }

// IsEmpty reports whether the interval contains no value (Lo > Hi).
func (a Interval) IsEmpty() bool { return a.Lo > a.Hi }

// IsConstant reports whether the interval contains exactly one value.
func (a Interval) IsConstant() bool { return a.Lo == a.Hi }

// SignUnknown reports whether the interval straddles zero without
// touching it at either endpoint, i.e. both a strictly negative and a
// strictly positive value are possible.
func (a Interval) SignUnknown() bool { return a.Lo < 0 && a.Hi > 0 }

func min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// saturatingAbs returns |x|, clamping math.MinInt64 to math.MaxInt64
// since -math.MinInt64 overflows int64.
func saturatingAbs(x int64) int64 {
	if x == math.MinInt64 {
		return math.MaxInt64
	}
	if x < 0 {
		return -x
	}
	return x
}

// SaturatingAdd returns a+b, clamped to the int64 range on overflow.
func SaturatingAdd(a, b int64) int64 {
	c := a + b
	// overflow iff operands share a sign and the result's sign differs.
	if (a > 0 && b > 0 && c <= 0) || (a < 0 && b < 0 && c >= 0) {
		if a > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return c
}

// SaturatingSub returns a-b, clamped to the int64 range on overflow.
func SaturatingSub(a, b int64) int64 {
	if b == math.MinInt64 {
		// -b overflows; a - MinInt64 == a + MaxInt64 + 1, which saturates
		// to MaxInt64 for a >= 0 and is exactly representable for a < 0.
		if a >= 0 {
			return math.MaxInt64
		}
		return a + math.MaxInt64 + 1
	}
	return SaturatingAdd(a, -b)
}

// SaturatingMul returns a*b, clamped to the int64 range on overflow.
func SaturatingMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if (a == math.MinInt64 && b == -1) || (a == -1 && b == math.MinInt64) {
		// MinInt64/-1 overflows but Go's two's-complement division
		// returns MinInt64 unchanged, so the c/b != a check below
		// never fires for this pair; special-case it.
		return math.MaxInt64
	}
	c := a * b
	if c/b != a {
		if (a > 0) == (b > 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return c
}

// Neg returns -a, wherein endpoints at math.MinInt64 clamp to
// math.MaxInt64 instead of overflowing.
func (a Interval) Neg() Interval {
	negHi := a.Hi
	if negHi == math.MinInt64 {
		negHi = math.MaxInt64
	} else {
		negHi = -negHi
	}
	negLo := a.Lo
	if negLo == math.MinInt64 {
		negLo = math.MaxInt64
	} else {
		negLo = -negLo
	}
	return Interval{Lo: negHi, Hi: negLo}
}

// Add returns the saturating sum of two intervals.
func (a Interval) Add(b Interval) Interval {
	return Interval{Lo: SaturatingAdd(a.Lo, b.Lo), Hi: SaturatingAdd(a.Hi, b.Hi)}
}

// Sub returns the saturating difference a-b.
func (a Interval) Sub(b Interval) Interval {
	return Interval{Lo: SaturatingSub(a.Lo, b.Hi), Hi: SaturatingSub(a.Hi, b.Lo)}
}

// Mul returns the saturating product of two intervals, taking the min/max
// over all four endpoint products.
func (a Interval) Mul(b Interval) Interval {
	ll := SaturatingMul(a.Lo, b.Lo)
	lh := SaturatingMul(a.Lo, b.Hi)
	hl := SaturatingMul(a.Hi, b.Lo)
	hh := SaturatingMul(a.Hi, b.Hi)

	return Interval{
		Lo: min(min(ll, lh), min(hl, hh)),
		Hi: max(max(ll, lh), max(hl, hh)),
	}
}

// Intersect returns the endpoint-wise intersection of a and b. The
// result may be empty.
func (a Interval) Intersect(b Interval) Interval {
	return Interval{Lo: max(a.Lo, b.Lo), Hi: min(a.Hi, b.Hi)}
}

// KnownLess reports whether a is certainly strictly less than b, i.e.
// every value in a is less than every value in b.
func (a Interval) KnownLess(b Interval) bool { return a.Hi < b.Lo }

// KnownLessEqual reports whether a is certainly <= b.
func (a Interval) KnownLessEqual(b Interval) bool { return a.Hi <= b.Lo }

// KnownGreater reports whether a is certainly strictly greater than b.
func (a Interval) KnownGreater(b Interval) bool { return a.Lo > b.Hi }

// KnownGreaterEqual reports whether a is certainly >= b.
func (a Interval) KnownGreaterEqual(b Interval) bool { return a.Lo >= b.Hi }

// SignificantlyDifferent reports whether a and b differ enough, at
// endpoints below half of int64's range in magnitude, to be worth
// propagating further during POSet transitive closure. This is the
// termination guard: differences confined to saturated extremes are
// ignored so closure always reaches a fixed point.
func (a Interval) SignificantlyDifferent(b Interval) bool {
	const halfMax = math.MaxInt64 >> 1
	loDiffers := a.Lo != b.Lo && min(saturatingAbs(a.Lo), saturatingAbs(b.Lo)) < halfMax
	hiDiffers := a.Hi != b.Hi && min(saturatingAbs(a.Hi), saturatingAbs(b.Hi)) < halfMax
	return loDiffers || hiDiffers
}

// RestrictAdd tightens c (the receiver, representing c = a + b) against
// the sum a+b, and back-propagates the tightened c into a and b via
// c-b and c-a respectively. It returns the narrowed (a', b') and
// mutates the receiver to the narrowed c. Panics if any of the three
// resulting intervals is empty: callers must only invoke this with
// already-consistent operands (spec precondition, see spec.md §4.A).
func (c *Interval) RestrictAdd(a, b Interval) (Interval, Interval) {
	cNew := c.Intersect(a.Add(b))
	// Note: a' and b' are narrowed against the receiver's *prior* value,
	// not cNew — matching the original's order of operations. This is
	// still sound (the prior value contains cNew) even though it is not
	// maximally tight.
	aNew := a.Intersect(c.Sub(b))
	bNew := b.Intersect(c.Sub(a))
	if cNew.IsEmpty() || aNew.IsEmpty() || bNew.IsEmpty() {
		panic("interval: RestrictAdd precondition violated: operands are inconsistent")
	}
	*c = cNew
	return aNew, bNew
}

// RestrictSub tightens c (the receiver, representing c = a - b) against
// a-b, analogous to RestrictAdd.
func (c *Interval) RestrictSub(a, b Interval) (Interval, Interval) {
	cNew := c.Intersect(a.Sub(b))
	aNew := a.Intersect(c.Add(b))
	bNew := b.Intersect(a.Sub(*c))
	if cNew.IsEmpty() || aNew.IsEmpty() || bNew.IsEmpty() {
		panic("interval: RestrictSub precondition violated: operands are inconsistent")
	}
	*c = cNew
	return aNew, bNew
}
