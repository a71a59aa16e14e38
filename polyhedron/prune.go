package polyhedron

import "github.com/katalvlaran/polyaffine/imatrix"

// removeRedundantConstraints decides whether candidate row (a, b) is
// implied by the live constraints in active (or implies one of them),
// following spec.md §4.G "Redundancy elimination" in full:
//
//  1. collect boundDiffs: every live column j that shares a same-signed,
//     nonzero coordinate with a (a candidate for combining into a proof);
//  2. for each boundDiff, try the trivial check first (step 3): if
//     a - A[:,j] is the zero vector, the two rows are parallel and the
//     tighter rhs alone settles it;
//  3. otherwise augment the system with one auxiliary "difference"
//     variable δ_j standing for (b - bold[j]) - (a - A[:,j])·x, seeded
//     as both +δ_j and -δ_j (spec.md §4.G: "an equality is processed
//     uniformly with inequalities... contributes as both +e and -e");
//  4. eliminate every real variable via the same Fourier-Motzkin cross-
//     pairing setBounds already uses, skipping any pairing whose
//     auxiliary tags mismatch (imatrix.Mismatch) so that two
//     independent difference proofs never blend into a meaningless
//     third (spec.md §4.G "Auxiliary variables (the subtle part)");
//  5. once a column's real-variable support is fully eliminated, the
//     sign of its single surviving auxiliary coefficient decides
//     redundancy: positive means the corresponding live constraint is
//     redundant, negative means the candidate itself is.
//
// Returning false, with toErase possibly non-empty, is sound: it means
// this pass could not prove the candidate itself redundant, never that
// it is known non-redundant (spec.md §4.E/§4.G — false always means
// "unknown", never "definitely false").
func removeRedundantConstraints[T Value[T]](p *AbstractPolyhedra[T], active []bool, a []int64, b T, exclude int) (newRedundant bool, toErase []int) {
	numVar := p.NumVar()

	var boundDiffs []int
	for j := 0; j < p.A.NumCol(); j++ {
		if j == exclude || !active[j] {
			continue
		}
		other := p.A.GetCol(j)
		for v := 0; v < numVar; v++ {
			if a[v] != 0 && other[v] != 0 && (a[v] > 0) == (other[v] > 0) {
				boundDiffs = append(boundDiffs, j)
				break
			}
		}
	}
	if len(boundDiffs) == 0 {
		return false, nil
	}

	numAux := len(boundDiffs)
	sys := newRCSystem[T](numVar, numAux)
	var pending []int

	for idx, c := range boundDiffs {
		other := p.A.GetCol(c)
		row := make([]int64, numVar)
		allZero := true
		for v := 0; v < numVar; v++ {
			row[v] = a[v] - other[v]
			if row[v] != 0 {
				allZero = false
			}
		}
		// delta = bold[c] - b, the same tighter-rhs convention
		// removeRedundantConstraints' trivial path has always used.
		delta := p.B[c].Sub(b)
		if allZero {
			if p.hooks.KnownLessEqualZero(delta) {
				return true, nil
			}
			if p.hooks.KnownGreaterEqualZero(delta) {
				pending = append(pending, c)
			}
			continue
		}

		full := make([]int64, numVar+numAux)
		copy(full, row)
		full[numVar+idx] = 1
		rhs := delta.Neg() // b - bold[c], the rhs of (a - A[:,c])·x + δ = b - bold[c]
		sys.appendCol(full, rhs)

		negFull := make([]int64, numVar+numAux)
		for k, v := range full {
			negFull[k] = -v
		}
		sys.appendCol(negFull, rhs.Neg())
	}

	for j := 0; j < p.A.NumCol(); j++ {
		if j == exclude || !active[j] {
			continue
		}
		full := make([]int64, numVar+numAux)
		copy(full, p.A.GetCol(j))
		sys.appendCol(full, p.B[j])
	}

	for {
		v, ok := sys.firstRealVar()
		if !ok {
			break
		}
		redundant, erase := sys.eliminate(p, v, boundDiffs)
		if redundant {
			return true, nil
		}
		pending = append(pending, erase...)
	}
	return false, pending
}

// rcSystem is the transient, auxiliary-augmented constraint system
// removeRedundantConstraints eliminates real variables from. Rows
// [0, numVar) are the real variables; rows [numVar, numVar+numAux) are
// one auxiliary "difference" slot per candidate boundDiff.
type rcSystem[T Value[T]] struct {
	mat    *imatrix.Dense
	rhs    []T
	numVar int
}

func newRCSystem[T Value[T]](numVar, numAux int) *rcSystem[T] {
	m, _ := imatrix.New(numVar+numAux, 0)
	return &rcSystem[T]{mat: m, numVar: numVar}
}

func (s *rcSystem[T]) appendCol(row []int64, rhs T) {
	c := s.mat.AppendCol()
	copy(s.mat.GetCol(c), row)
	s.rhs = append(s.rhs, rhs)
}

func (s *rcSystem[T]) auxOf(c int) imatrix.AuxIndex {
	return imatrix.AuxiliaryIndex(s.mat, c, s.numVar)
}

// firstRealVar returns the lowest real-variable row with a nonzero
// entry in some live column, or ok=false once every real variable has
// been eliminated.
func (s *rcSystem[T]) firstRealVar() (v int, ok bool) {
	for v := 0; v < s.numVar; v++ {
		for c := 0; c < s.mat.NumCol(); c++ {
			val, _ := s.mat.At(v, c)
			if val != 0 {
				return v, true
			}
		}
	}
	return 0, false
}

func auxOfRow(row []int64, numVar int) imatrix.AuxIndex {
	for v := numVar; v < len(row); v++ {
		if row[v] != 0 {
			return imatrix.Aux(v)
		}
	}
	return imatrix.NoAux()
}

// eliminate removes real variable i via the same cross-pair setBounds
// uses for ordinary Fourier-Motzkin, skipping any pairing whose
// auxiliary tags mismatch. A column that collapses with no real
// variable left resolves immediately instead of being carried forward:
// a positive surviving auxiliary coefficient (with a known non-positive
// rhs) certifies boundDiffs[...] redundant, a negative one certifies
// the candidate redundant.
func (s *rcSystem[T]) eliminate(p *AbstractPolyhedra[T], i int, boundDiffs []int) (candidateRedundant bool, erase []int) {
	var lower, upper, zero []int
	for c := 0; c < s.mat.NumCol(); c++ {
		v, _ := s.mat.At(i, c)
		switch {
		case v < 0:
			lower = append(lower, c)
		case v > 0:
			upper = append(upper, c)
		default:
			zero = append(zero, c)
		}
	}

	next, _ := imatrix.New(s.mat.NumRow(), 0)
	var nextRhs []T
	for _, c := range zero {
		k := next.AppendCol()
		copy(next.GetCol(k), s.mat.GetCol(c))
		nextRhs = append(nextRhs, s.rhs[c])
	}
	for _, l := range lower {
		for _, u := range upper {
			if imatrix.Mismatch(s.auxOf(l), s.auxOf(u)) {
				continue
			}
			row, rhs, _ := setBounds[T](s.mat.GetCol(l), s.mat.GetCol(u), s.rhs[l], s.rhs[u], i)
			// setBounds' own anyNonZero flags any surviving entry,
			// aux coordinates included; what decides whether this
			// column is resolved or carried forward is whether any
			// *real* variable support remains.
			realZero := true
			for k := 0; k < s.numVar; k++ {
				if row[k] != 0 {
					realZero = false
					break
				}
			}
			if realZero {
				aux := auxOfRow(row, s.numVar)
				if !aux.Ok || !p.hooks.KnownLessEqualZero(rhs) {
					continue
				}
				switch {
				case row[aux.Idx] > 0:
					erase = append(erase, boundDiffs[aux.Idx-s.numVar])
				case row[aux.Idx] < 0:
					return true, nil
				}
				continue
			}
			k := next.AppendCol()
			copy(next.GetCol(k), row)
			nextRhs = append(nextRhs, rhs)
		}
	}
	s.mat = next
	s.rhs = nextRhs
	return false, erase
}

// PruneBounds iterates from the last constraint backward, dropping
// every constraint implied by the rest (spec.md §4.G "pruneBounds").
func (p *AbstractPolyhedra[T]) PruneBounds() {
	n := p.A.NumCol()
	if n == 0 {
		return
	}
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}
	for c := n - 1; c >= 0; c-- {
		if !active[c] {
			continue
		}
		aCol := append([]int64(nil), p.A.GetCol(c)...)
		redundant, toErase := removeRedundantConstraints(p, active, aCol, p.B[c], c)
		if redundant {
			active[c] = false
			continue
		}
		for _, j := range toErase {
			active[j] = false
		}
	}
	p.compact(active)
}

// compact rebuilds A and B keeping only the columns marked active, in
// their original relative order.
func (p *AbstractPolyhedra[T]) compact(active []bool) {
	kept := 0
	for _, a := range active {
		if a {
			kept++
		}
	}
	if kept == p.A.NumCol() {
		return
	}
	newA, _ := imatrix.New(p.A.NumRow(), kept)
	newB := make([]T, 0, kept)
	k := 0
	for c := 0; c < p.A.NumCol(); c++ {
		if !active[c] {
			continue
		}
		copy(newA.GetCol(k), p.A.GetCol(c))
		newB = append(newB, p.B[c])
		k++
	}
	p.A = newA
	p.B = newB
}
