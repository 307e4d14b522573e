// Package admissible implements the two admissibility predicates the
// solver evaluates against a placement grid: Local, a cheap per-placement
// check run during candidate generation and mid-search, and Global, an
// expensive whole-grid coloring check run only at a completed leaf.
package admissible
