package bitmap

import "errors"

// Sentinel errors for the bitmap package. Callers should branch with
// errors.Is; messages are not part of the stable contract.
var (
	// ErrBadShape indicates the supplied data length does not match nrows*ncols,
	// or that nrows/ncols are non-positive.
	ErrBadShape = errors.New("bitmap: invalid shape")

	// ErrOutOfRange indicates a requested row, column, or subarray falls
	// outside the bitmap's bounds.
	ErrOutOfRange = errors.New("bitmap: index out of range")
)
