package ncgrid

import (
	"github.com/katalvlaran/navicust/bitmap"
	"github.com/katalvlaran/navicust/part"
)

// New allocates a grid per settings: every cell starts Empty, and if
// HasOOB is set the four corners start Forbidden.
// Complexity: O(Height*Width).
func New(settings part.GridSettings) *Grid {
	g := &Grid{
		Height: settings.Height,
		Width:  settings.Width,
		cells:  make([]int32, settings.Height*settings.Width),
	}
	for i := range g.cells {
		g.cells[i] = Empty
	}
	if settings.HasOOB && g.Height > 0 && g.Width > 0 {
		g.cells[g.idx(0, 0)] = Forbidden
		g.cells[g.idx(g.Width-1, 0)] = Forbidden
		g.cells[g.idx(0, g.Height-1)] = Forbidden
		g.cells[g.idx(g.Width-1, g.Height-1)] = Forbidden
	}

	return g
}

// Clone returns an independent value-copy of g, the copy-on-write step the
// search driver performs before trying a candidate placement.
// Complexity: O(Height*Width).
func (g *Grid) Clone() *Grid {
	cells := make([]int32, len(g.cells))
	copy(cells, g.cells)

	return &Grid{Height: g.Height, Width: g.Width, cells: cells}
}

// Place stamps mask onto the grid with mask[0,0] aligned to pos, assigning
// reqIdx to every true cell. The operation is all-or-nothing: it fails
// without mutating the grid if any true cell of the mask would fall
// outside the grid bounds or overlap a non-Empty cell.
// Complexity: O(mask.Rows*mask.Cols).
func (g *Grid) Place(mask bitmap.Bitmap, pos part.Position, reqIdx int32) bool {
	for r := 0; r < mask.Rows; r++ {
		for c := 0; c < mask.Cols; c++ {
			if !mask.Cells[r*mask.Cols+c] {
				continue
			}
			x, y := pos.X+c, pos.Y+r
			if !g.InBounds(x, y) {
				return false
			}
			if g.cells[g.idx(x, y)] != Empty {
				return false
			}
		}
	}
	for r := 0; r < mask.Rows; r++ {
		for c := 0; c < mask.Cols; c++ {
			if !mask.Cells[r*mask.Cols+c] {
				continue
			}
			x, y := pos.X+c, pos.Y+r
			g.cells[g.idx(x, y)] = reqIdx
		}
	}

	return true
}

// RequirementCellsInRing reports whether any cell owned by reqIdx lies on
// the outer ring (row 0, row Height-1, column 0, or column Width-1).
// Complexity: O(Height*Width).
func (g *Grid) RequirementCellsInRing(reqIdx int32) bool {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[g.idx(x, y)] == reqIdx && g.inRing(x, y) {
				return true
			}
		}
	}

	return false
}

// RequirementCellsOnRow reports whether any cell owned by reqIdx lies on
// the given row.
// Complexity: O(Width).
func (g *Grid) RequirementCellsOnRow(reqIdx int32, row int) bool {
	if row < 0 || row >= g.Height {
		return false
	}
	for x := 0; x < g.Width; x++ {
		if g.cells[g.idx(x, row)] == reqIdx {
			return true
		}
	}

	return false
}

// Neighbors4 returns the four orthogonal neighbor coordinates of (x, y),
// without filtering for in-bounds; callers check InBounds themselves.
func (g *Grid) Neighbors4(x, y int) [4][2]int {
	return [4][2]int{
		{x, y - 1},
		{x + 1, y},
		{x, y + 1},
		{x - 1, y},
	}
}

// Fingerprint serializes the grid row-major into a byte string, mapping
// each owned cell v >= 0 through partIndexOf(v) and leaving sentinels
// (Empty, Forbidden) untouched. Two grids with the same part-identity
// projection produce identical fingerprints, the basis of the search
// driver's symmetric-branch deduplication.
// Complexity: O(Height*Width).
func (g *Grid) Fingerprint(partIndexOf func(reqIdx int32) int32) []byte {
	buf := make([]byte, len(g.cells)*4)
	for i, v := range g.cells {
		mapped := v
		if v >= 0 {
			mapped = partIndexOf(v)
		}
		buf[i*4] = byte(mapped)
		buf[i*4+1] = byte(mapped >> 8)
		buf[i*4+2] = byte(mapped >> 16)
		buf[i*4+3] = byte(mapped >> 24)
	}

	return buf
}
