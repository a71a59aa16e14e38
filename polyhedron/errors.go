package polyhedron

import "errors"

// ErrDimensionMismatch indicates that A, b, E, or q were constructed
// with inconsistent shapes: A must have one column per entry of b, E
// one column per entry of q, and A and E the same number of rows.
var ErrDimensionMismatch = errors.New("polyhedron: dimension mismatch between A/b/E/q")

// ErrVariableOutOfRange indicates a variable index passed to
// RemoveVariable falls outside [0, NumVar()).
var ErrVariableOutOfRange = errors.New("polyhedron: variable index out of range")
