// Package navicust is the public entry point for the placement solver:
// given a catalog of parts and a list of requirements, it enumerates every
// grid layout that satisfies them.
//
// The heavy lifting lives in the sibling bitmap, part, ncgrid, admissible,
// candidate, and solver packages; this package re-exports the two
// operations a caller needs — Solve and PlaceAll — under stable names so
// cmd/navicust (and any other consumer) depends on a single import.
package navicust
