package part

import (
	"encoding/json"

	"github.com/katalvlaran/navicust/bitmap"
)

// Tri is a three-valued enum for constraint fields that may be required,
// forbidden, or left open. It deliberately replaces an optional-boolean
// encoding: Unspecified is a first-class value, not the absence of one.
type Tri int8

const (
	// Unspecified permits either outcome.
	Unspecified Tri = iota
	// Yes requires the property to hold.
	Yes
	// No requires the property not to hold.
	No
)

// String renders the tri-state for logs and test failure messages.
func (t Tri) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unspecified"
	}
}

// MarshalJSON renders Tri as its String form, so catalog files read
// "yes"/"no"/"unspecified" instead of a bare integer.
func (t Tri) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts "yes", "no", "unspecified", or an empty string
// (treated as Unspecified, so the field may be omitted entirely).
func (t *Tri) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "", "unspecified":
		*t = Unspecified
	case "yes":
		*t = Yes
	case "no":
		*t = No
	default:
		return ErrBadTri
	}

	return nil
}

// Part is one immutable silhouette definition. IsSolid distinguishes a
// "program" part (must touch the command line) from a "plus" part (must
// not). Color indexes into a palette shared across all parts.
type Part struct {
	IsSolid          bool          `json:"is_solid"`
	Color            int           `json:"color"`
	CompressedMask   bitmap.Bitmap `json:"compressed_mask"`
	UncompressedMask bitmap.Bitmap `json:"uncompressed_mask"`
}

// Constraint is a triple of tri-states governing one requirement.
type Constraint struct {
	Compressed    Tri `json:"compressed"`
	OnCommandLine Tri `json:"on_command_line"`
	Bugged        Tri `json:"bugged"`
}

// Requirement identifies which part must appear and under what constraint.
// Its position in the input requirement slice is its request index
// (reqIdx), the identity used throughout the solver.
type Requirement struct {
	PartIndex  int        `json:"part_index"`
	Constraint Constraint `json:"constraint"`
}

// GridSettings fixes the board geometry for one search.
type GridSettings struct {
	Height         int  `json:"height"`
	Width          int  `json:"width"`
	HasOOB         bool `json:"has_oob"`
	CommandLineRow int  `json:"command_line_row"`
}

// Position is a (possibly negative) top-left offset of a mask over the grid.
type Position struct {
	X, Y int
}

// Location is a position plus a clockwise rotation count in {0,1,2,3}.
type Location struct {
	Position Position
	Rotation int
}

// Validate reports ErrInvalidRotation if Rotation is outside {0,1,2,3}.
func (l Location) Validate() error {
	if l.Rotation < 0 || l.Rotation > 3 {
		return ErrInvalidRotation
	}

	return nil
}

// Placement is the choice made for one requirement: where, how rotated,
// and whether the compressed mask was used.
type Placement struct {
	Loc        Location
	Compressed bool
}

// Solution is an ordered sequence of placements, one per requirement, in
// the original requirement order.
type Solution []Placement

// Mask returns the mask a Part presents for a given compression choice.
func (p Part) Mask(compressed bool) bitmap.Bitmap {
	if compressed {
		return p.CompressedMask
	}

	return p.UncompressedMask
}
