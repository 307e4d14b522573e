package candidate

import (
	"github.com/katalvlaran/navicust/bitmap"
	"github.com/katalvlaran/navicust/part"
)

// Candidate pairs a concrete placement with the (possibly rotated) mask it
// stamps, so the search driver can Place it without re-deriving the mask
// from the placement's rotation count.
type Candidate struct {
	Placement part.Placement
	Mask      bitmap.Bitmap
}
