// Package candidate enumerates, for one part under one constraint, every
// (mask, position, rotation, compressed?) placement that satisfies the
// cheap per-placement admissibility tests in
// github.com/katalvlaran/navicust/admissible.
//
// Enumeration order is fixed and load-bearing: compressed before
// uncompressed, rotations ascending, positions row-major by (y, x). The
// search driver relies on this order to make solution emission
// deterministic across runs with identical inputs.
package candidate
