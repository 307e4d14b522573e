package solver

import "errors"

var (
	// ErrInvalidPlacement is returned by PlaceAll when a solution is
	// self-inconsistent: some placement overlaps another or has a cell
	// outside the grid when stamped.
	ErrInvalidPlacement = errors.New("solver: placement overlaps or is out of bounds")

	// ErrNodeLimit is reported by Search.Err when a
	// caller-supplied WithNodeLimit budget is exhausted before the
	// search completes. It is a governance sentinel, not a data error:
	// genuinely infeasible inputs yield an empty sequence instead.
	ErrNodeLimit = errors.New("solver: search node limit exceeded")
)
