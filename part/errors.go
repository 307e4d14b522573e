package part

import "errors"

var (
	// ErrInvalidRotation indicates a Location.Rotation outside {0,1,2,3}.
	ErrInvalidRotation = errors.New("part: rotation must be 0, 1, 2, or 3")

	// ErrPartIndexOutOfRange indicates a Requirement.PartIndex with no
	// corresponding entry in the parts slice it is resolved against.
	ErrPartIndexOutOfRange = errors.New("part: part index out of range")

	// ErrColorOutOfRange indicates a Part.Color with no corresponding
	// entry in a spinnableColors slice it is resolved against.
	ErrColorOutOfRange = errors.New("part: color index out of range")

	// ErrBadTri indicates a Tri field in a JSON document holding
	// something other than "yes", "no", "unspecified", or "".
	ErrBadTri = errors.New("part: invalid tri-state value")
)
