// Package bitmap provides a flat, row-major 2D boolean buffer used to
// represent part silhouettes ("masks") in the NaviCust placement solver.
//
// A Bitmap is an immutable value: every transforming method (Rot90, Trim,
// Subarray, Copy) returns a new Bitmap rather than mutating the receiver.
// This mirrors the flat-buffer layout a dense adjacency matrix would use,
// specialized to booleans and to the shape operations the solver needs:
// rotation, border-trimming, and canonical fingerprinting for dedup.
package bitmap
