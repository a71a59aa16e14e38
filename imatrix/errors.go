package imatrix

import "errors"

// ErrInvalidDimensions indicates that requested matrix dimensions are
// negative (rows/cols must be >= 0; a 0-sized dimension is legal and
// arises routinely once every column of a system has been eliminated).
var ErrInvalidDimensions = errors.New("imatrix: dimensions must be >= 0")

// ErrOutOfRange indicates a row or column index outside the matrix's
// current bounds.
var ErrOutOfRange = errors.New("imatrix: index out of range")
