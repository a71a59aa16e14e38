package imatrix

// AuxIndex identifies which auxiliary "difference" column, if any, a
// constraint row is tagged with during redundancy elimination (spec.md
// §4.G "Auxiliary variables"). It replaces the original's raw -1
// sentinel with an explicit optional tag (spec.md §9 design note),
// matching the Partner pattern already used by package bipartite.
type AuxIndex struct {
	Idx int
	Ok  bool
}

// NoAux is the tag for a constraint that carries no auxiliary variable.
func NoAux() AuxIndex { return AuxIndex{} }

// Aux tags a constraint with auxiliary variable idx.
func Aux(idx int) AuxIndex { return AuxIndex{Idx: idx, Ok: true} }

// Mismatch reports whether a and b are both present but name different
// auxiliary variables — the auxMisMatch guard that keeps independent
// difference proofs from blending during elimination (spec.md §4.G).
func Mismatch(a, b AuxIndex) bool {
	return a.Ok && b.Ok && a.Idx != b.Idx
}

// AuxiliaryIndex scans column col of m, looking only at rows
// [numRealVar, m.NumRow()), and returns the index of the first nonzero
// auxiliary row found, or NoAux if every auxiliary row is zero.
func AuxiliaryIndex(m *Dense, col, numRealVar int) AuxIndex {
	column := m.GetCol(col)
	for i := numRealVar; i < len(column); i++ {
		if column[i] != 0 {
			return Aux(i)
		}
	}
	return NoAux()
}
