// Package poset implements a closed partial order over symbolic
// parameters, stored as saturating intervals on every pairwise
// difference and kept transitively closed after each update
// (spec.md §3 "Partially ordered set (POSet)", §4.E).
//
// Parameter id 0 is reserved by convention as a fixed reference point
// (callers typically push(0, k, NonNegative) to declare parameter k
// non-negative); every other id identifies a symbolic constant.
package poset

import (
	"github.com/katalvlaran/polyaffine/bipartite"
	"github.com/katalvlaran/polyaffine/interval"
	"github.com/katalvlaran/polyaffine/mpoly"
)

// POSet is a triangular store of delta[i,j] = value(j) - value(i) for
// every pair i<j of parameter ids seen so far.
type POSet struct {
	delta []interval.Interval
	nVar  uint32
}

// New returns an empty POSet.
func New() *POSet { return &POSet{} }

// bin2 returns i*(i-1)/2, the number of pairs among i items — also the
// offset of column i's triangle in the flat delta slice.
func bin2(i uint32) uint32 {
	if i == 0 {
		return 0
	}
	return i * (i - 1) / 2
}

// linIdx returns the flat index of the pair (i,j) for i<j.
func linIdx(i, j uint32) int { return int(bin2(j)) + int(i) }

// NumVars reports how many parameter ids the POSet currently tracks.
func (p *POSet) NumVars() int { return int(p.nVar) }

// grow extends delta to accommodate parameter ids up to newNVar-1,
// initializing newly created slots to Unconstrained.
func (p *POSet) grow(newNVar uint32) {
	newSize := int(bin2(newNVar))
	if newSize <= len(p.delta) {
		p.nVar = newNVar
		return
	}
	grown := make([]interval.Interval, newSize)
	copy(grown, p.delta)
	for i := len(p.delta); i < newSize; i++ {
		grown[i] = interval.Unconstrained()
	}
	p.delta = grown
	p.nVar = newNVar
}

// PushDelta registers that value(j) - value(i) lies in itv, intersects
// it with anything already known, and restores the tight-closure
// invariant (spec.md §3) before returning. If i>j the call is
// redirected to PushDelta(j, i, -itv).
func (p *POSet) PushDelta(i, j uint32, itv interval.Interval) {
	if i > j {
		p.PushDelta(j, i, itv.Neg())
		return
	}
	if i == j {
		panic("poset: PushDelta requires i != j")
	}
	if j >= p.nVar {
		p.grow(j + 1)
	} else {
		itv = itv.Intersect(p.delta[linIdx(i, j)])
	}
	p.delta[linIdx(i, j)] = p.update(i, j, itv)
}

// update re-closes the transitive structure around the new (i,j)
// interval ji, deriving implied bounds for every other known index k
// and recursing when a side pair tightens significantly. Recursion
// depth is bounded by NumVars (spec.md §9 design note).
func (p *POSet) update(i, j uint32, ji interval.Interval) interval.Interval {
	iOff := bin2(i)
	jOff := bin2(j)

	// k below i: j - i = (j - k) - (i - k)
	for k := uint32(0); k < i; k++ {
		ik := p.delta[k+iOff]
		jk := p.delta[k+jOff]
		jkt, ikt := ji.RestrictSub(jk, ik)
		p.delta[k+iOff] = ikt
		p.delta[k+jOff] = jkt
		if ikt.SignificantlyDifferent(ik) {
			p.delta[linIdx(i, j)] = ji
			p.delta[k+iOff] = p.update(k, i, ikt)
			ji = p.delta[linIdx(i, j)]
		}
		if jkt.SignificantlyDifferent(jk) {
			p.delta[linIdx(i, j)] = ji
			p.delta[k+jOff] = p.update(k, j, jkt)
			ji = p.delta[linIdx(i, j)]
		}
	}

	// k between i and j: k - i = (j - i) - (j - k), i.e. ji = ki + jk
	for k := i + 1; k < j; k++ {
		kOff := bin2(k)
		ki := p.delta[i+kOff]
		jk := p.delta[k+jOff]
		kit, jkt := ji.RestrictAdd(ki, jk)
		p.delta[i+kOff] = kit
		p.delta[k+jOff] = jkt
		if kit.SignificantlyDifferent(ki) {
			p.delta[linIdx(i, j)] = ji
			p.delta[i+kOff] = p.update(i, k, kit)
			ji = p.delta[linIdx(i, j)]
		}
		if jkt.SignificantlyDifferent(jk) {
			p.delta[linIdx(i, j)] = ji
			p.delta[k+jOff] = p.update(k, j, jkt)
			ji = p.delta[linIdx(i, j)]
		}
	}

	// k above j: j - i = (k - i) - (k - j)
	for k := j + 1; k < p.nVar; k++ {
		kOff := bin2(k)
		ki := p.delta[i+kOff]
		kj := p.delta[j+kOff]
		kit, kjt := ji.RestrictSub(ki, kj)
		p.delta[i+kOff] = kit
		p.delta[j+kOff] = kjt
		if kit.SignificantlyDifferent(ki) {
			p.delta[linIdx(i, j)] = ji
			p.delta[i+kOff] = p.update(i, k, kit)
			ji = p.delta[linIdx(i, j)]
		}
		if kjt.SignificantlyDifferent(kj) {
			p.delta[linIdx(i, j)] = ji
			p.delta[j+kOff] = p.update(j, k, kjt)
			ji = p.delta[linIdx(i, j)]
		}
	}
	return ji
}

// Query returns the known interval for value(j) - value(i). It is
// Zero when i==j and Unconstrained when the pair has never been
// pushed (graceful default, spec.md §4.E).
func (p *POSet) Query(i, j uint32) interval.Interval {
	if i == j {
		return interval.Zero()
	}
	lo, hi, flipped := i, j, false
	if i > j {
		lo, hi, flipped = j, i, true
	}
	l := linIdx(lo, hi)
	if l >= len(p.delta) {
		return interval.Unconstrained()
	}
	d := p.delta[l]
	if flipped {
		return d.Neg()
	}
	return d
}

// ParamInterval returns Query(0, id), the interval of id relative to
// the reserved reference parameter 0.
func (p *POSet) ParamInterval(id uint32) interval.Interval { return p.Query(0, id) }

// MonomialInterval evaluates a monomial as the product of its factors'
// ParamInterval, a conservative bound used internally by
// KnownGreaterEqualZero (spec.md §13 supplement).
func (p *POSet) MonomialInterval(m mpoly.Monomial) interval.Interval {
	if m.IsOne() {
		return interval.Point(1)
	}
	itv := p.ParamInterval(m[0])
	for _, id := range m[1:] {
		itv = itv.Mul(p.ParamInterval(id))
	}
	return itv
}

// TermInterval evaluates coefficient*monomial as an Interval.
func (p *POSet) TermInterval(t mpoly.Term) interval.Interval {
	return p.MonomialInterval(t.Exponent).Mul(interval.Point(t.Coefficient))
}

func (p *POSet) signUnknownMonomial(m mpoly.Monomial) bool {
	for _, id := range m {
		if p.ParamInterval(id).SignUnknown() {
			return true
		}
	}
	return false
}

// knownFlipSign walks m's factors, flipping pos for every factor known
// strictly negative and bailing out (false) the moment a factor is
// neither known strictly negative nor known non-negative.
func (p *POSet) knownFlipSign(m mpoly.Monomial, pos bool) bool {
	for _, id := range m {
		itv := p.ParamInterval(id)
		switch {
		case itv.Hi < 0:
			pos = !pos
		case itv.Lo < 0:
			return false
		}
	}
	return pos
}

// KnownPositiveMonomial reports whether m's product is known
// non-negative: every factor is known non-negative or known strictly
// negative, with an even count of the latter. A factor that may be zero
// makes the product possibly zero.
func (p *POSet) KnownPositiveMonomial(m mpoly.Monomial) bool { return p.knownFlipSign(m, true) }

// KnownNegativeMonomial reports whether m's product is known
// non-positive: every factor is known non-negative or known strictly
// negative, with an odd count of the latter.
func (p *POSet) KnownNegativeMonomial(m mpoly.Monomial) bool { return p.knownFlipSign(m, false) }

// dominanceGraph builds the M×N boolean bipartite graph used by
// KnownGreaterEqual/KnownGreater: edge (m,n) exists iff x[m] >= y[n] is
// known, i.e. Query(y[n], x[m]).Lo >= 0.
func (p *POSet) dominanceGraph(x, y mpoly.Monomial) bipartite.Graph {
	g := make(bipartite.Graph, len(x))
	for m := range x {
		row := make([]bool, len(y))
		for n := range y {
			row[n] = p.Query(y[n], x[m]).Lo >= 0
		}
		g[m] = row
	}
	return g
}

// resolveDominance interprets a matching result over the M×N graph
// built by dominanceGraph, deciding whether x dominates y overall
// (spec.md §4.E KnownGreaterEqual).
func resolveDominance(p *POSet, x, y mpoly.Monomial, res bipartite.Result) bool {
	m, n := len(x), len(y)
	switch {
	case res.Matches < m && res.Matches < n:
		return false
	case res.Matches < m:
		// all of y is matched; the leftover x factors must be individually
		// known non-negative (sign flips tracked for unmatched negatives).
		matched := make([]bool, m)
		for _, partner := range res.PartnerOfRight {
			if partner.Present {
				matched[partner.Left] = true
			}
		}
		cond := true
		for i := 0; i < m; i++ {
			if matched[i] {
				continue
			}
			itv := p.ParamInterval(x[i])
			switch {
			case itv.Hi < 0:
				cond = !cond
			case itv.Lo < 0 && itv.Hi > 0:
				return false
			}
		}
		return cond
	case res.Matches < n:
		// all of x is matched; leftover y factors must be known non-positive.
		cond := false
		for j := 0; j < n; j++ {
			if res.PartnerOfRight[j].Present {
				continue
			}
			itv := p.ParamInterval(y[j])
			switch {
			case itv.Hi < 0:
				cond = !cond
			case itv.Lo < 0 && itv.Hi > 0:
				return false
			}
		}
		return cond
	default:
		return true
	}
}

// KnownGreaterEqual decides whether monomial x is known to dominate
// monomial y (x >= y for every admissible parameter assignment) via
// bipartite matching over per-factor dominance (spec.md §4.E).
func (p *POSet) KnownGreaterEqual(x, y mpoly.Monomial) bool {
	res, err := bipartite.MaxMatching(p.dominanceGraph(x, y))
	if err != nil {
		return false
	}
	return resolveDominance(p, x, y, res)
}

// atLeastOnePositive reports whether any matched pair in res came from
// a strictly positive difference interval.
func (p *POSet) atLeastOnePositive(x, y mpoly.Monomial, res bipartite.Result) bool {
	for n, partner := range res.PartnerOfRight {
		if !partner.Present {
			continue
		}
		if p.Query(y[n], x[partner.Left]).Lo > 0 {
			return true
		}
	}
	return false
}

// KnownGreater additionally requires KnownGreaterEqual's witness to
// include at least one strictly positive matched pair.
func (p *POSet) KnownGreater(x, y mpoly.Monomial) bool {
	res, err := bipartite.MaxMatching(p.dominanceGraph(x, y))
	if err != nil {
		return false
	}
	if !p.atLeastOnePositive(x, y, res) {
		return false
	}
	return resolveDominance(p, x, y, res)
}

// KnownGreaterEqualZero is a sound-incomplete decision procedure for
// whether a polynomial is non-negative under every admissible
// parameter assignment consistent with this POSet (spec.md §4.E).
func (p *POSet) KnownGreaterEqualZero(x mpoly.Polynomial) bool {
	if x.IsZero() {
		return true
	}
	terms := x.Terms
	n := len(terms)
	for i := 0; i+1 < n; i += 2 {
		tm, tn := terms[i], terms[i+1]
		if p.signUnknownMonomial(tm.Exponent) || p.signUnknownMonomial(tn.Exponent) {
			return false
		}
		if p.TermInterval(tm).Add(p.TermInterval(tn)).Lo >= 0 {
			continue
		}
		mPos := tm.Coefficient > 0 && p.KnownPositiveMonomial(tm.Exponent)
		nPos := tn.Coefficient > 0 && p.KnownPositiveMonomial(tn.Exponent)
		switch {
		case mPos && nPos:
			// tm + tn, both already known non-negative individually.
			continue
		case mPos:
			if tn.Coefficient >= 0 {
				// tn's monomial is known non-positive; tm - tn with tn's
				// coefficient positive cannot be resolved this way.
				return false
			}
			if tm.Coefficient+tn.Coefficient >= 0 && p.KnownGreaterEqual(tm.Exponent, tn.Exponent) {
				continue
			}
			return false
		case nPos:
			if tm.Coefficient >= 0 {
				return false
			}
			if tm.Coefficient+tn.Coefficient >= 0 && p.KnownGreaterEqual(tn.Exponent, tm.Exponent) {
				continue
			}
			return false
		default:
			return false
		}
	}
	if n%2 == 1 {
		return p.TermInterval(terms[n-1]).Lo >= 0
	}
	return true
}
