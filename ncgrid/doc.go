// Package ncgrid implements the runtime placement grid the search driver
// stamps part masks onto. A Grid is a fixed-size cell array where each
// cell holds Empty, Forbidden, or a non-negative requirement index.
//
// Grids are cloned by value at each recursion step of the search
// (github.com/katalvlaran/navicust/solver), the same copy-on-write
// discipline a graph library would use for its own Clone method,
// specialized here to a flat int32 buffer sized for a small rectangular
// board.
package ncgrid
