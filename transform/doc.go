// Package transform builds gluon distributions whose momentum-space form is
// not known in closed form: given only a position-space kernel S2(r², Y),
// it precomputes the 2-D Fourier (Hankel) transform
//
//	F(q², Y) = (1/2π) ∫₀^∞ r · J0(q·r) · S2(r², Y) dr
//
// on an interpolation grid at construction time, so that queries inside an
// integration loop cost one table lookup instead of one adaptive integral.
//
// Algorithm Outline (construction):
//  1. Lay out a logarithmically spaced q² axis of Q2Dim points over
//     [Q2Min, Q2Max] and a linear Y axis of YDim points over [YMin, YMax].
//     YMin == YMax collapses the scale axis to a single row and the grid
//     to 1-D (the fixed-scale kernels use this).
//  2. For every Y row, compute the two leading coefficients of the small-q²
//     expansion of the transform from moments of the kernel:
//     leading(Y)    = (1/2π) ∫ r·S2(r², Y) dr
//     subleading(Y) = −(1/8π) ∫ r³·S2(r², Y) dr
//     Each coefficient curve is interpolated along Y (Akima spline).
//  3. For every grid node, evaluate the transform integral with adaptive
//     Gauss–Kronrod quadrature under a hard subdivision budget; a budget
//     overrun aborts construction with the offending node named.
//     The integral is truncated where the kernel has decayed to nothing.
//  4. Store ln F (the transform spans decades; interpolating its logarithm
//     against ln q² keeps the relative error flat) and build the 1-D or
//     2-D interpolation state.
//
// Query routing, F(q², Y):
//   - q² <  Q2Min: series fallback leading(Y) + subleading(Y)·q² — adaptive
//     quadrature is unstable this close to q² = 0, the series is not.
//   - q² ≤  Q2Max: interpolate the grid at (ln q², Y).
//   - q² >  Q2Max: ErrAboveRange, or evaluation pinned to the Q2Max boundary
//     when Options.ClampAbove is set. The choice is explicit; nothing is
//     inherited from the interpolation backend.
//
// S4 uses the product-of-dipoles (large-Nc) approximation built from the
// kernel's S2.
//
// The package ships two concrete kernels of the McLerran–Venugopalan family:
// MV (Y-dependent scale, 2-D grid) and FixedScaleMV (constant scale, 1-D
// grid, ignores Y). Any type satisfying Kernel plugs into the same
// machinery.
//
// Construction is the expensive step and runs once; the built Distribution
// is immutable but its interpolation caches make queries unsafe for
// concurrent use (see the interpolate package).
package transform
