// Package mpoly: sentinel error set.
package mpoly

import "errors"

// ErrMismatchedLength reports that two vectors that must have the same
// length do not. No function of this package returns it.
var ErrMismatchedLength = errors.New("mpoly: mismatched length")
