package solver

import (
	"sort"

	"github.com/katalvlaran/navicust/admissible"
	"github.com/katalvlaran/navicust/bitmap"
	"github.com/katalvlaran/navicust/candidate"
	"github.com/katalvlaran/navicust/ncgrid"
	"github.com/katalvlaran/navicust/part"
)

// reqPlan is one requirement's precomputed candidate list, placed into
// the search's branching order.
type reqPlan struct {
	reqIdx int // original index into the input requirement slice
	part   part.Part
	req    part.Requirement
	cands  []candidate.Candidate
}

// reqPlanOrder implements sort.Interface for the (|candidates| asc,
// original index asc) tie-break rule of the search driver's placement
// order: a named sort.Interface type rather than an anonymous
// sort.Slice closure, so the tie-break rule has a name of its own.
type reqPlanOrder []reqPlan

func (o reqPlanOrder) Len() int { return len(o) }
func (o reqPlanOrder) Less(i, j int) bool {
	if len(o[i].cands) != len(o[j].cands) {
		return len(o[i].cands) < len(o[j].cands)
	}

	return o[i].reqIdx < o[j].reqIdx
}
func (o reqPlanOrder) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

// engine holds all search data and policy for one Solve invocation.
type engine struct {
	parts []part.Part
	reqs  []part.Requirement
	gs    part.GridSettings
	cfg   *config

	order   []reqPlan
	visited map[string]struct{}

	nodes int64
	err   error
}

// pathEntry is one accumulated placement during the descent, keyed by the
// original requirement index so the leaf can resort into input order.
type pathEntry struct {
	reqIdx    int
	placement part.Placement
}

func newEngine(parts []part.Part, reqs []part.Requirement, gs part.GridSettings, spinnableColors []bool, opts []Option) *engine {
	cfg := newConfig()
	for _, o := range opts {
		o(cfg)
	}

	e := &engine{
		parts:   parts,
		reqs:    reqs,
		gs:      gs,
		cfg:     cfg,
		visited: make(map[string]struct{}),
	}
	e.order = make([]reqPlan, len(reqs))
	for i, req := range reqs {
		// parts[req.PartIndex] and spinnableColors[p.Color] are both
		// safe here: Solve validates every PartIndex and Color before
		// newEngine is ever called.
		p := parts[req.PartIndex]
		spinnable := spinnableColors[p.Color]
		e.order[i] = reqPlan{
			reqIdx: i,
			part:   p,
			req:    req,
			cands:  candidate.Generate(p, req.Constraint, gs, spinnable),
		}
	}
	sort.Sort(reqPlanOrder(e.order))

	return e
}

// infeasible runs the three cheap pre-checks of spec §4.F, plus the
// catalog-validation error Solve may have recorded before the engine's
// own order was ever built. A true result means the search must yield
// nothing without ever descending.
func (e *engine) infeasible() bool {
	if e.err != nil {
		return true
	}

	// CommandLineRow is a 0-indexed row (valid range [0, Height-1]), so a
	// row at or beyond Height can never hold a cell; see DESIGN.md,
	// "CommandLineRow boundary".
	if e.gs.CommandLineRow >= e.gs.Height {
		return true
	}

	onLine := 0
	for _, req := range e.reqs {
		if req.Constraint.OnCommandLine == part.Yes {
			onLine++
		}
	}
	if onLine > e.gs.Width {
		return true
	}

	capacity := e.gs.Width * e.gs.Height
	if e.gs.HasOOB {
		capacity -= 4
	}
	occupied := 0
	for _, req := range e.reqs {
		p := e.parts[req.PartIndex]
		occupied += capacityMask(p, req.Constraint).CountTrue()
	}

	return occupied > capacity
}

func capacityMask(p part.Part, c part.Constraint) bitmap.Bitmap {
	if c.Compressed == part.No {
		return p.UncompressedMask
	}

	return p.CompressedMask
}

// partIndexOf projects a requirement index to its part index, the
// projection the fingerprint set deduplicates symmetric branches on.
func (e *engine) partIndexOf(reqIdx int32) int32 {
	return int32(e.reqs[reqIdx].PartIndex)
}

// shouldStop performs a sparse external-budget check (context
// cancellation, node limit), evaluated every 1024 node events to keep
// per-node overhead negligible.
func (e *engine) shouldStop() bool {
	if e.nodes&1023 != 0 {
		return false
	}
	if err := e.cfg.ctx.Err(); err != nil {
		e.err = err

		return true
	}
	if e.cfg.nodeLimit > 0 && e.nodes >= e.cfg.nodeLimit {
		e.err = ErrNodeLimit

		return true
	}

	return false
}

// search performs the depth-first descent. It returns false when the
// caller (yield returning false, or an external budget firing) wants the
// whole search to stop; true means the sibling loop at this depth may
// keep trying further candidates.
func (e *engine) search(g *ncgrid.Grid, depth int, path []pathEntry, yield func(part.Solution) bool) bool {
	if depth == len(e.order) {
		if !admissible.Global(g, e.parts, e.reqs, e.gs) {
			return true
		}

		return yield(e.assemble(path))
	}

	plan := e.order[depth]
	for _, cand := range plan.cands {
		e.nodes++
		if e.shouldStop() {
			return false
		}

		clone := g.Clone()
		if !clone.Place(cand.Mask, cand.Placement.Loc.Position, int32(plan.reqIdx)) {
			continue
		}
		if !admissible.Local(clone, int32(plan.reqIdx), plan.part, plan.req.Constraint, e.gs) {
			continue
		}

		fp := string(clone.Fingerprint(e.partIndexOf))
		if _, dup := e.visited[fp]; dup {
			continue
		}
		e.visited[fp] = struct{}{}

		next := append(append(make([]pathEntry, 0, len(path)+1), path...), pathEntry{reqIdx: plan.reqIdx, placement: cand.Placement})
		if !e.search(clone, depth+1, next, yield) {
			return false
		}
	}

	return true
}

// assemble resorts the accumulated path by original requirement index,
// so the returned Solution indexes line up with the input requirement
// order (spec's "Emission order").
func (e *engine) assemble(path []pathEntry) part.Solution {
	sol := make(part.Solution, len(e.reqs))
	for _, entry := range path {
		sol[entry.reqIdx] = entry.placement
	}

	return sol
}
