package navicust

import (
	"iter"

	"github.com/katalvlaran/navicust/part"
	"github.com/katalvlaran/navicust/solver"
)

// Re-exported types, so a caller of this package never needs to import
// the part package directly for the common case.
type (
	Part         = part.Part
	Constraint   = part.Constraint
	Requirement  = part.Requirement
	GridSettings = part.GridSettings
	Position     = part.Position
	Location     = part.Location
	Placement    = part.Placement
	Solution     = part.Solution
	Tri          = part.Tri
)

// Tri values.
const (
	Unspecified = part.Unspecified
	Yes         = part.Yes
	No          = part.No
)

// Option customizes a Search; see solver.Option.
type Option = solver.Option

// WithContext and WithNodeLimit forward to the solver package.
var (
	WithContext   = solver.WithContext
	WithNodeLimit = solver.WithNodeLimit
)

// ErrInvalidPlacement and ErrNodeLimit forward to the solver package's
// sentinels, and ErrPartIndexOutOfRange/ErrColorOutOfRange forward to
// the part package's catalog-validation sentinels, so callers can
// errors.Is against any of them without importing solver or part
// directly.
var (
	ErrInvalidPlacement    = solver.ErrInvalidPlacement
	ErrNodeLimit           = solver.ErrNodeLimit
	ErrPartIndexOutOfRange = part.ErrPartIndexOutOfRange
	ErrColorOutOfRange     = part.ErrColorOutOfRange
)

// Search is a producer of Solutions over one fixed search tree; see
// solver.Search.
type Search = solver.Search

// Solve enumerates every admissible layout of parts against reqs on a
// grid shaped by gs. spinnableColors[c] reports whether parts of color c
// may be rotated. See solver.Solve for the full contract.
func Solve(parts []Part, reqs []Requirement, gs GridSettings, spinnableColors []bool, opts ...Option) *Search {
	return solver.Solve(parts, reqs, gs, spinnableColors, opts...)
}

// PlaceAll re-stamps sol onto a fresh grid and returns per-cell
// ownership. See solver.PlaceAll for the full contract.
func PlaceAll(parts []Part, reqs []Requirement, sol Solution, gs GridSettings) ([]int32, error) {
	return solver.PlaceAll(parts, reqs, sol, gs)
}

// Solutions is a convenience for ranging without holding onto the Search
// value, for callers that never need Err().
func Solutions(s *Search) iter.Seq[Solution] {
	return s.Solutions()
}
