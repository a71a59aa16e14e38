package mpoly

// Kind classifies a ParamID for the purposes of symbolic reasoning.
// Only SymbolicConstant parameters participate in package poset; the
// other kinds exist so callers can distinguish loop-induction variables
// and the implicit literal-one constant when building expressions.
type Kind uint8

const (
	// LoopInduction identifies a loop index variable. Loop indices never
	// appear in a monomial; they index rows of the polyhedron's matrix.
	LoopInduction Kind = iota
	// SymbolicConstant identifies a non-negative symbolic parameter
	// (e.g. a loop trip count). These are the only IDs package poset
	// tracks ordering information for.
	SymbolicConstant
	// LiteralOne identifies the implicit constant 1, i.e. the empty
	// monomial's sole factor.
	LiteralOne
)

// ParamID is an opaque parameter identifier carrying its Kind.
type ParamID struct {
	ID   uint32
	Kind Kind
}

// OneParam is the canonical ParamID for the literal constant 1.
var OneParam = ParamID{ID: 0, Kind: LiteralOne}

// Symbolic constructs a SymbolicConstant ParamID with the given id.
func Symbolic(id uint32) ParamID { return ParamID{ID: id, Kind: SymbolicConstant} }

// Induction constructs a LoopInduction ParamID with the given id.
func Induction(id uint32) ParamID { return ParamID{ID: id, Kind: LoopInduction} }
