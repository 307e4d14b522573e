package solver

import (
	"iter"

	"github.com/katalvlaran/navicust/ncgrid"
	"github.com/katalvlaran/navicust/part"
)

// Search is a producer of Solutions over one fixed search tree. Create
// one with Solve, range over Solutions to consume results, and check Err
// after the range loop ends (the bufio.Scanner convention: a nil Err
// after exhaustion means the sequence was genuinely complete, not cut
// short by a budget or an invalid catalog). Call Solve again for an
// independent, fully restarted search.
type Search struct {
	e *engine
}

// Solve prepares a Search over every admissible assignment of positions,
// rotations, and compression choices to reqs. The returned Search yields
// nothing (without error) when any of the cheap infeasibility pre-checks
// of spec §4.F trigger, matching spec §7's "infeasible configurations
// simply yield an empty sequence."
//
// parts and reqs are validated before anything else runs: a
// Requirement.PartIndex or Part.Color that falls outside its resolved
// slice is reported through Err instead of panicking deep inside the
// search, since a catalog decoded from external data (a JSON file, for
// instance) cannot be trusted to have been hand-checked already.
//
// Solve itself never runs the search; work happens lazily as the caller
// ranges over Search.Solutions().
func Solve(parts []part.Part, reqs []part.Requirement, gs part.GridSettings, spinnableColors []bool, opts ...Option) *Search {
	if err := part.ValidateRequirements(parts, reqs); err != nil {
		return &Search{e: &engine{err: err}}
	}
	if err := part.ValidateColors(parts, spinnableColors); err != nil {
		return &Search{e: &engine{err: err}}
	}

	e := newEngine(parts, reqs, gs, spinnableColors, opts)

	return &Search{e: e}
}

// Solutions returns the lazy sequence of Solutions. A Search is not
// restartable: the engine's visited set and node counter persist across
// calls, so ranging over Solutions a second time on the same Search
// resumes with that state intact rather than starting over — most
// fingerprints will already be marked visited, and it will yield few or
// no further solutions. A fresh, independently restartable sequence
// comes from calling Solve again.
func (s *Search) Solutions() iter.Seq[part.Solution] {
	return func(yield func(part.Solution) bool) {
		if s.e.infeasible() {
			return
		}
		g := ncgrid.New(s.e.gs)
		s.e.search(g, 0, nil, yield)
	}
}

// Err reports the reason a range over Solutions stopped early or never
// started: an invalid catalog (ErrPartIndexOutOfRange,
// ErrColorOutOfRange) caught by Solve's up-front validation, an external
// budget (ctx cancellation or WithNodeLimit) firing mid-search, or nil if
// the search ran to completion (or was stopped by the consumer breaking
// out of the range loop, which is not an error).
func (s *Search) Err() error {
	return s.e.err
}
