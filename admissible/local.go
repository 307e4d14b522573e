package admissible

import (
	"github.com/katalvlaran/navicust/ncgrid"
	"github.com/katalvlaran/navicust/part"
)

// Local runs the three cheap checks of a freshly stamped placement: not
// entirely out-of-bounds, command-line requirement, and the bugged lower
// bound. It is evaluated after every successful stamp, both during
// candidate generation (against a scratch grid) and mid-search (against
// the partial grid).
//
// The outer-ring test here checks all four sides of the grid: a cell is
// on the ring iff it sits on row 0, the last row, column 0, or the last
// column.
func Local(g *ncgrid.Grid, reqIdx int32, p part.Part, c part.Constraint, gs part.GridSettings) bool {
	anyInRing, allInRing := ringMembership(g, reqIdx)

	// 1. Not entirely OOB: at least one cell must lie in the interior.
	if gs.HasOOB && allInRing {
		return false
	}

	// 2. Command-line requirement.
	onLine := g.RequirementCellsOnRow(reqIdx, gs.CommandLineRow)
	if c.OnCommandLine == part.Yes && !onLine {
		return false
	}

	// 3. Bugged lower bound: a partial verdict, since same-color adjacency
	// is unknown until every piece has landed (see admissible.Global).
	outOfBounds := gs.HasOOB && anyInRing
	buggedPre := outOfBounds || (p.IsSolid != onLine)
	if c.Bugged == part.No && buggedPre {
		return false
	}

	return true
}

// ringMembership scans the grid once and reports whether reqIdx owns any
// cell on the outer ring, and whether every cell it owns is on the ring.
// A requirement that owns no cell at all reports (false, false).
func ringMembership(g *ncgrid.Grid, reqIdx int32) (any, all bool) {
	all = true
	found := false
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) != reqIdx {
				continue
			}
			found = true
			ring := x == 0 || x == g.Width-1 || y == 0 || y == g.Height-1
			if ring {
				any = true
			} else {
				all = false
			}
		}
	}
	if !found {
		all = false
	}

	return any, all
}
