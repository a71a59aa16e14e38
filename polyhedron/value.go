package polyhedron

// Value is the right-hand-side arithmetic a polyhedron's constraint
// system needs from its `T` (spec.md §3 "Abstract polyhedron" — `b`'s
// type, `int64` or `MPoly`). The two concrete instances differ only in
// which Value implementation, and which Hooks, they plug in (spec.md
// §4.Gʹ).
type Value[T any] interface {
	Add(T) T
	Sub(T) T
	Neg() T
	Scale(k int64) T
	AddConst(k int64) T
	IsZero() bool
}

// Hooks supplies the two sign-decision primitives AbstractPolyhedra
// defers to its concrete instance (spec.md §4.G: `knownLessEqualZero`,
// `knownGreaterEqualZero`).
type Hooks[T any] interface {
	KnownLessEqualZero(x T) bool
	KnownGreaterEqualZero(x T) bool
}

// Int64 is a literal integer right-hand side, the Value implementation
// backing Integer (spec.md §4.Gʹ "Integer polyhedron").
type Int64 int64

// Add returns v+other.
func (v Int64) Add(other Int64) Int64 { return v + other }

// Sub returns v-other.
func (v Int64) Sub(other Int64) Int64 { return v - other }

// Neg returns -v.
func (v Int64) Neg() Int64 { return -v }

// Scale returns v*k.
func (v Int64) Scale(k int64) Int64 { return v * Int64(k) }

// AddConst returns v+k.
func (v Int64) AddConst(k int64) Int64 { return v + Int64(k) }

// IsZero reports whether v == 0.
func (v Int64) IsZero() bool { return v == 0 }

var _ Value[Int64] = Int64(0)
