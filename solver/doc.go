// Package solver implements the backtracking search driver that
// enumerates Solutions over a multiset of part placements, and the
// PlaceAll verifier that re-stamps a completed Solution onto a fresh
// grid.
//
// The search engine follows a classic branch-and-bound shape: a private
// struct holding precomputed per-requirement data and search state, a
// deterministic branching order, and sparse external-budget checks
// rather than per-node overhead. Unlike a single-best-tour optimizer,
// this engine enumerates every admissible leaf as a lazy Go 1.23
// iterator — the idiomatic rendition of "a producer of solutions" that
// suspends between yields and is cancelled by the consumer simply
// stopping iteration (or by cancelling the context passed via
// WithContext). Calling Solve again starts a fully independent search.
package solver
