// Package interpolate provides the grid-interpolation backend shared by the
// grid-transform and tabulated gluon distributions: piecewise-linear
// interpolation over 1-D and 2-D rectangular grids with strictly increasing
// abscissae.
//
// Both interpolators keep a per-axis lookup accelerator — a "last interval"
// cache that makes the repeated nearby queries typical of an integration
// loop O(1) instead of O(log n). The cache is plain mutable state:
//
//   - a Linear or Bilinear value is NOT safe for concurrent use;
//   - Ref() returns a shallow copy sharing the (immutable) grid data but
//     owning fresh caches — each goroutine must use its own Ref.
//
// Evaluation outside the grid's covered range returns ErrOutOfRange; these
// interpolators never extrapolate. Evaluation exactly at a node reproduces
// the stored value, and between two nodes the result lies between them.
package interpolate
