package solver

import (
	"github.com/katalvlaran/navicust/ncgrid"
	"github.com/katalvlaran/navicust/part"
)

// PlaceAll re-stamps every placement of sol onto a fresh grid and returns
// the per-cell ownership map: cell i holds the requirement index owning
// grid cell (i%gs.Width, i/gs.Width), or ncgrid.Empty if uncovered.
//
// Mask selection is by placements[i].Compressed, not by the
// requirement's original constraint — a solution may have chosen either
// mask under an Unspecified constraint, and PlaceAll must reproduce
// exactly what was chosen, not re-derive it.
//
// Returns ErrPartIndexOutOfRange if any requirement's PartIndex has no
// corresponding part, and ErrInvalidPlacement if any placement overlaps
// another or falls out of the grid.
// Complexity: O(n * mask area) plus O(Height*Width) for the output copy.
func PlaceAll(parts []part.Part, reqs []part.Requirement, sol part.Solution, gs part.GridSettings) ([]int32, error) {
	if err := part.ValidateRequirements(parts, reqs); err != nil {
		return nil, err
	}

	g := ncgrid.New(gs)
	for i, placement := range sol {
		if err := placement.Loc.Validate(); err != nil {
			return nil, err
		}
		p := parts[reqs[i].PartIndex]
		mask := p.Mask(placement.Compressed)
		for r := 0; r < placement.Loc.Rotation; r++ {
			mask = mask.Rot90()
		}
		if !g.Place(mask, placement.Loc.Position, int32(i)) {
			return nil, ErrInvalidPlacement
		}
	}

	out := make([]int32, gs.Height*gs.Width)
	for y := 0; y < gs.Height; y++ {
		for x := 0; x < gs.Width; x++ {
			v := g.At(x, y)
			if v < 0 {
				v = ncgrid.Empty
			}
			out[y*gs.Width+x] = v
		}
	}

	return out, nil
}
