package candidate

import (
	"github.com/katalvlaran/navicust/admissible"
	"github.com/katalvlaran/navicust/bitmap"
	"github.com/katalvlaran/navicust/ncgrid"
	"github.com/katalvlaran/navicust/part"
)

// maskVariant is one (mask, compressed-flag) pair selected for enumeration.
type maskVariant struct {
	mask       bitmap.Bitmap
	compressed bool
}

// selectMasks implements spec step 1: which mask(s) to use for the given
// compression constraint. When Unspecified and the two masks differ, both
// are considered — compressed and uncompressed, each exactly once.
func selectMasks(p part.Part, compressed part.Tri) []maskVariant {
	switch compressed {
	case part.Yes:
		return []maskVariant{{mask: p.CompressedMask, compressed: true}}
	case part.No:
		return []maskVariant{{mask: p.UncompressedMask, compressed: false}}
	default:
		if p.CompressedMask.Equal(p.UncompressedMask) {
			return []maskVariant{{mask: p.CompressedMask, compressed: true}}
		}

		return []maskVariant{
			{mask: p.CompressedMask, compressed: true},
			{mask: p.UncompressedMask, compressed: false},
		}
	}
}

// rotation pairs a candidate mask with the actual clockwise Rot90 count
// that produced it from the variant's base orientation, distinct from its
// position in the (possibly sparser) deduplicated output list.
type rotation struct {
	count int
	mask  bitmap.Bitmap
}

// rotations returns the masks to try for one maskVariant: rotation 0
// always, plus rotations 1-3 when spinnable, skipping any rotation whose
// trimmed shape duplicates one already produced for this variant. The
// reported count is always the true number of Rot90 applications, even
// when an earlier rotation was skipped, so Placement.Loc.Rotation stays
// reproducible by PlaceAll.
func rotations(mask bitmap.Bitmap, spinnable bool) []rotation {
	seen := make(map[string]struct{}, 4)
	out := make([]rotation, 0, 4)
	cur := mask
	maxRot := 1
	if spinnable {
		maxRot = 4
	}
	for i := 0; i < maxRot; i++ {
		fp := cur.Trim().Fingerprint()
		if _, dup := seen[fp]; !dup {
			seen[fp] = struct{}{}
			out = append(out, rotation{count: i, mask: cur})
		}
		cur = cur.Rot90()
	}

	return out
}

// Generate enumerates every placement of p under constraint c that passes
// admissible.Local, in the fixed order: compressed before uncompressed,
// rotations ascending, positions row-major by (y, x).
// Complexity: O(variants * rotations * W * H * (W * H + mask area)), since
// each position gets a fresh scratch grid and a Local scan of it.
func Generate(p part.Part, c part.Constraint, gs part.GridSettings, spinnable bool) []Candidate {
	var out []Candidate
	for _, variant := range selectMasks(p, c.Compressed) {
		for _, rot := range rotations(variant.mask, spinnable) {
			mask := rot.mask
			if mask.Rows == 0 || mask.Cols == 0 {
				continue
			}
			for y := -mask.Rows + 1; y <= gs.Height-1; y++ {
				for x := -mask.Cols + 1; x <= gs.Width-1; x++ {
					pos := part.Position{X: x, Y: y}
					scratch := ncgrid.New(gs)
					if !scratch.Place(mask, pos, 0) {
						continue
					}
					if !admissible.Local(scratch, 0, p, c, gs) {
						continue
					}
					out = append(out, Candidate{
						Placement: part.Placement{
							Loc:        part.Location{Position: pos, Rotation: rot.count},
							Compressed: variant.compressed,
						},
						Mask: mask,
					})
				}
			}
		}
	}

	return out
}
