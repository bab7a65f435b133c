package bitmatrix

import "errors"

// ErrInvalidDimensions indicates that requested matrix dimensions are
// non-positive.
var ErrInvalidDimensions = errors.New("bitmatrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside
// the matrix's valid range.
var ErrIndexOutOfBounds = errors.New("bitmatrix: index out of bounds")
