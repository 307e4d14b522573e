package admissible

import (
	"github.com/katalvlaran/navicust/ncgrid"
	"github.com/katalvlaran/navicust/part"
)

// reqStats accumulates the three booleans Global derives per requirement.
type reqStats struct {
	outOfBounds     bool
	onCommandLine   bool
	touchingSameCol bool
}

// Global evaluates the whole-grid coloring predicate against a completed
// placement. It must only be called once every requirement has a cell on
// the grid; calling it on a partial grid produces meaningless results for
// requirements not yet placed.
//
// Complexity: O(n*Height*Width) for the per-requirement ring and row
// scans, plus O(Height*Width) for the adjacency scan and O(n) for the
// verdict pass, where n is the number of requirements.
func Global(g *ncgrid.Grid, parts []part.Part, reqs []part.Requirement, gs part.GridSettings) bool {
	stats := make([]reqStats, len(reqs))
	for i := range stats {
		reqIdx := int32(i)
		stats[i].outOfBounds = gs.HasOOB && g.RequirementCellsInRing(reqIdx)
		stats[i].onCommandLine = g.RequirementCellsOnRow(reqIdx, gs.CommandLineRow)
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			owner := g.At(x, y)
			if owner < 0 {
				continue
			}
			ownerColor := parts[reqs[owner].PartIndex].Color
			for _, n := range g.Neighbors4(x, y) {
				nx, ny := n[0], n[1]
				if !g.InBounds(nx, ny) {
					continue
				}
				neighbor := g.At(nx, ny)
				if neighbor < 0 || neighbor == owner {
					continue
				}
				if parts[reqs[neighbor].PartIndex].Color == ownerColor {
					stats[owner].touchingSameCol = true
				}
			}
		}
	}

	for i, req := range reqs {
		final := BuggedFromStats(stats[i].outOfBounds, parts[req.PartIndex].IsSolid, stats[i].onCommandLine, stats[i].touchingSameCol)
		if req.Constraint.Bugged != part.Unspecified {
			want := req.Constraint.Bugged == part.Yes
			if final != want {
				return false
			}
		}
	}

	return true
}

// BuggedFromStats computes the final bugged predicate from its three
// derived components. Global and BuggedOf both use it, so the formula
// lives in one place.
func BuggedFromStats(outOfBounds, isSolid, onCommandLine, touchingSameColor bool) bool {
	return outOfBounds || (isSolid != onCommandLine) || touchingSameColor
}

// BuggedOf computes the final bugged value for one requirement on a
// completed grid, without evaluating every other requirement's
// constraint. Callers such as tests use it to query a single
// requirement's derived bugged property.
// Complexity: O(Height*Width).
func BuggedOf(g *ncgrid.Grid, reqIdx int32, parts []part.Part, reqs []part.Requirement, gs part.GridSettings) bool {
	outOfBounds := gs.HasOOB && g.RequirementCellsInRing(reqIdx)
	onCommandLine := g.RequirementCellsOnRow(reqIdx, gs.CommandLineRow)
	ownerColor := parts[reqs[reqIdx].PartIndex].Color
	touching := false
	for y := 0; y < g.Height && !touching; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) != reqIdx {
				continue
			}
			for _, n := range g.Neighbors4(x, y) {
				if !g.InBounds(n[0], n[1]) {
					continue
				}
				neighbor := g.At(n[0], n[1])
				if neighbor < 0 || neighbor == reqIdx {
					continue
				}
				if parts[reqs[neighbor].PartIndex].Color == ownerColor {
					touching = true
					break
				}
			}
		}
	}

	return BuggedFromStats(outOfBounds, parts[reqs[reqIdx].PartIndex].IsSolid, onCommandLine, touching)
}
