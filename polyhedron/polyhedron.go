// Package polyhedron implements the abstract integer polyhedron
// `A·x <= b ∧ E·x = q`, Fourier-Motzkin variable elimination, and
// redundancy elimination over it (spec.md §3 "Abstract polyhedron",
// §4.G). `A`'s rows are indexed by variable, its columns by
// constraint; eliminating a variable removes a row and replaces the
// eliminated constraints with new cross-pair columns.
package polyhedron

import "github.com/katalvlaran/polyaffine/imatrix"

// AbstractPolyhedra is the feasible set `{x : A·x <= b ∧ E·x = q}`.
// E and Q are nil/empty when the polyhedron carries no equalities.
// hooks supplies the two sign-decision primitives the concrete
// instance (Integer or Symbolic) provides over T (spec.md §4.Gʹ).
type AbstractPolyhedra[T Value[T]] struct {
	A *imatrix.Dense
	B []T
	E *imatrix.Dense
	Q []T

	hooks           Hooks[T]
	knownInfeasible bool
}

// New builds a polyhedron with no equality constraints.
func New[T Value[T]](a *imatrix.Dense, b []T, hooks Hooks[T]) (*AbstractPolyhedra[T], error) {
	if a.NumCol() != len(b) {
		return nil, ErrDimensionMismatch
	}
	return &AbstractPolyhedra[T]{A: a, B: b, hooks: hooks}, nil
}

// NewWithEqualities builds a polyhedron with both inequality and
// equality constraints. a and e must share the same number of rows
// (spec.md §3 invariant: numRows(A) == numRows(E)).
func NewWithEqualities[T Value[T]](a *imatrix.Dense, b []T, e *imatrix.Dense, q []T, hooks Hooks[T]) (*AbstractPolyhedra[T], error) {
	if a.NumCol() != len(b) || e.NumCol() != len(q) {
		return nil, ErrDimensionMismatch
	}
	if a.NumRow() != e.NumRow() {
		return nil, ErrDimensionMismatch
	}
	return &AbstractPolyhedra[T]{A: a, B: b, E: e, Q: q, hooks: hooks}, nil
}

// NumVar returns the number of variables (rows of A).
func (p *AbstractPolyhedra[T]) NumVar() int { return p.A.NumRow() }

// NumConstraints returns the number of inequality constraints (columns of A).
func (p *AbstractPolyhedra[T]) NumConstraints() int { return p.A.NumCol() }

// NumEqualities returns the number of equality constraints (columns of E).
func (p *AbstractPolyhedra[T]) NumEqualities() int {
	if p.E == nil {
		return 0
	}
	return p.E.NumCol()
}

// Clone returns a deep, independent copy of p.
func (p *AbstractPolyhedra[T]) Clone() *AbstractPolyhedra[T] {
	out := &AbstractPolyhedra[T]{
		A:               p.A.Clone(),
		B:               append([]T(nil), p.B...),
		hooks:           p.hooks,
		knownInfeasible: p.knownInfeasible,
	}
	if p.E != nil {
		out.E = p.E.Clone()
		out.Q = append([]T(nil), p.Q...)
	}
	return out
}

func dropIndex(v []int64, i int) []int64 {
	out := make([]int64, 0, len(v)-1)
	out = append(out, v[:i]...)
	out = append(out, v[i+1:]...)
	return out
}

// categorizeBounds partitions column c's coefficient at row i by sign:
// negative coefficients are lower bounds, positive are upper bounds,
// zero coefficients pass through unchanged (spec.md §4.G).
func categorizeBounds(a *imatrix.Dense, i int) (lower, upper, zero []int) {
	for c := 0; c < a.NumCol(); c++ {
		v, _ := a.At(i, c)
		switch {
		case v < 0:
			lower = append(lower, c)
		case v > 0:
			upper = append(upper, c)
		default:
			zero = append(zero, c)
		}
	}
	return lower, upper, zero
}

// setBounds eliminates variable i from a lower-bound row/rhs pair
// (la, lb) and an upper-bound pair (ua, ub), following spec.md §4.G:
// cu = ua[i] (positive, by construction of the upper-bound category),
// cl = la[i] (negative), g = gcd(cu, cl); new row = (cu/g)*la -
// (cl/g)*ua; new rhs = (cu/g)*lb - (cl/g)*ub. anyNonZero reports
// whether any entry of the new row other than i is nonzero.
//
// Every caller in this package (RemoveVariable, foldEqualitiesForRemoval
// and rcSystem.eliminate) sorts its rows by the sign at i first and hands
// in a negative la[i] and a positive ua[i], so none of them reaches the
// swap below. It mirrors the original's own guard: if the "upper" row is
// actually a lower bound (cu < 0 and cl > 0), the two roles are swapped
// before anything else happens.
func setBounds[T Value[T]](la, ua []int64, lb, ub T, i int) (row []int64, rhs T, anyNonZero bool) {
	cu := ua[i]
	cl := la[i]
	if cu < 0 && cl > 0 {
		return setBounds[T](ua, la, ub, lb, i)
	}
	g := imatrix.GCD(cu, cl)
	if g == 0 {
		g = 1
	}
	cuN := cu / g
	clN := cl / g

	row = make([]int64, len(la))
	for k := range row {
		row[k] = cuN*la[k] - clN*ua[k]
	}
	rhs = lb.Scale(cuN).Sub(ub.Scale(clN))
	for k, v := range row {
		if k != i && v != 0 {
			anyNonZero = true
		}
	}
	return row, rhs, anyNonZero
}

// recordTrivialCollapse checks whether a Fourier-Motzkin cross-pair
// collapsing to `0 <= rhs` certifies infeasibility (rhs+1 <= 0, i.e.
// rhs <= -1), latching knownInfeasible if so (spec.md §4.G).
func (p *AbstractPolyhedra[T]) recordTrivialCollapse(rhs T) {
	if p.hooks.KnownLessEqualZero(rhs.AddConst(1)) {
		p.knownInfeasible = true
	}
}

// RemoveVariable eliminates variable i: categorizes its bounds,
// deletes them from the system, appends every Fourier-Motzkin
// cross-pair, folds in any equality constraints touching i, and
// finally prunes the result (spec.md §4.G "removeVariable").
func (p *AbstractPolyhedra[T]) RemoveVariable(i int) error {
	if i < 0 || i >= p.NumVar() {
		return ErrVariableOutOfRange
	}
	lower, upper, zero := categorizeBounds(p.A, i)

	var newCols [][]int64
	var newB []T

	for _, c := range zero {
		newCols = append(newCols, dropIndex(p.A.GetCol(c), i))
		newB = append(newB, p.B[c])
	}
	for _, l := range lower {
		for _, u := range upper {
			row, rhs, nonzero := setBounds[T](p.A.GetCol(l), p.A.GetCol(u), p.B[l], p.B[u], i)
			if !nonzero {
				p.recordTrivialCollapse(rhs)
				continue
			}
			newCols = append(newCols, dropIndex(row, i))
			newB = append(newB, rhs)
		}
	}

	if p.E != nil {
		p.foldEqualitiesForRemoval(i, lower, upper, &newCols, &newB)
	}

	newA, _ := imatrix.New(p.NumVar()-1, len(newCols))
	for c, row := range newCols {
		copy(newA.GetCol(c), row)
	}
	p.A = newA
	p.B = newB
	p.PruneBounds()
	return nil
}

// foldEqualitiesForRemoval combines every equality row against the
// pivot equality (the first with a nonzero entry at i, via GCD
// reduction), and against every lower/upper inequality bound at i
// (treating the pivot equality as both an upper and a lower bound),
// per spec.md §4.G "removeVariable": "if equalities are present, also
// combine each pivot equality with lower/upper bounds and with each
// later equality via GCD reduction." The pivot row itself, once
// substituted away, is dropped.
func (p *AbstractPolyhedra[T]) foldEqualitiesForRemoval(i int, lower, upper []int, newCols *[][]int64, newB *[]T) {
	pivot := -1
	for c := 0; c < p.E.NumCol(); c++ {
		v, _ := p.E.At(i, c)
		if v != 0 {
			pivot = c
			break
		}
	}
	var newE [][]int64
	var newQ []T
	if pivot == -1 {
		for c := 0; c < p.E.NumCol(); c++ {
			newE = append(newE, dropIndex(p.E.GetCol(c), i))
			newQ = append(newQ, p.Q[c])
		}
		p.rebuildEqualities(newE, newQ)
		return
	}

	pivotRow := p.E.GetCol(pivot)
	pivotQ := p.Q[pivot]
	piv := pivotRow[i]

	for c := 0; c < p.E.NumCol(); c++ {
		if c == pivot {
			continue
		}
		v, _ := p.E.At(i, c)
		if v == 0 {
			newE = append(newE, dropIndex(p.E.GetCol(c), i))
			newQ = append(newQ, p.Q[c])
			continue
		}
		g := imatrix.GCD(piv, v)
		if g == 0 {
			g = 1
		}
		a1 := piv / g
		a2 := v / g
		other := p.E.GetCol(c)
		row := make([]int64, len(pivotRow))
		for k := range row {
			row[k] = a2*pivotRow[k] - a1*other[k]
		}
		rhs := pivotQ.Scale(a2).Sub(p.Q[c].Scale(a1))
		newE = append(newE, dropIndex(row, i))
		newQ = append(newQ, rhs)
	}
	p.rebuildEqualities(newE, newQ)

	negPivot := make([]int64, len(pivotRow))
	for k, v := range pivotRow {
		negPivot[k] = -v
	}
	negQ := pivotQ.Neg()

	// The pivot equality stands for both piv*x_i <= q-rest and its
	// negation; whichever orientation has a positive coefficient at i
	// plays the upper-bound role, the other the lower-bound role, so
	// every setBounds pairing below combines opposite-signed rows.
	uaRow, uaRhs, laRow, laRhs := pivotRow, pivotQ, negPivot, negQ
	if piv < 0 {
		uaRow, uaRhs, laRow, laRhs = negPivot, negQ, pivotRow, pivotQ
	}
	for _, l := range lower {
		row, rhs, nonzero := setBounds[T](p.A.GetCol(l), uaRow, p.B[l], uaRhs, i)
		if !nonzero {
			p.recordTrivialCollapse(rhs)
			continue
		}
		*newCols = append(*newCols, dropIndex(row, i))
		*newB = append(*newB, rhs)
	}
	for _, u := range upper {
		row, rhs, nonzero := setBounds[T](laRow, p.A.GetCol(u), laRhs, p.B[u], i)
		if !nonzero {
			p.recordTrivialCollapse(rhs)
			continue
		}
		*newCols = append(*newCols, dropIndex(row, i))
		*newB = append(*newB, rhs)
	}
}

func (p *AbstractPolyhedra[T]) rebuildEqualities(cols [][]int64, q []T) {
	if len(cols) == 0 {
		p.E = nil
		p.Q = nil
		return
	}
	newE, _ := imatrix.New(p.NumVar()-1, len(cols))
	for c, row := range cols {
		copy(newE.GetCol(c), row)
	}
	p.E = newE
	p.Q = q
}

// IsEmpty is a witness-free, incomplete test: it eliminates every
// variable on a scratch clone and reports true the moment a
// collapsing constraint's rhs is provably <= -1 (spec.md §4.G
// "isEmpty"). It never mutates the receiver.
func (p *AbstractPolyhedra[T]) IsEmpty() bool {
	work := p.Clone()
	for work.NumVar() > 0 {
		if err := work.RemoveVariable(0); err != nil {
			return false
		}
		if work.knownInfeasible {
			return true
		}
	}
	return false
}

// KnownSatisfied reports whether the comparator can confirm that
// candidate point x satisfies every inequality constraint: for each
// column c, b[c] - sum_v A[v,c]*x[v] must be known non-negative
// (spec.md §4.G "knownSatisfied"). x may be shorter than NumVar();
// missing coordinates are treated as zero.
func (p *AbstractPolyhedra[T]) KnownSatisfied(x []int64) bool {
	for c := 0; c < p.A.NumCol(); c++ {
		col := p.A.GetCol(c)
		var dot int64
		for v, coeff := range col {
			if v < len(x) {
				dot += coeff * x[v]
			}
		}
		if !p.hooks.KnownGreaterEqualZero(p.B[c].AddConst(-dot)) {
			return false
		}
	}
	return true
}
