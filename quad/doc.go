// Package quad implements adaptive numerical integration of real-valued
// functions over a finite interval, using the 7-point Gauss / 15-point
// Kronrod rule pair with bisection refinement of the worst subinterval.
//
// 🚀 What is it for?
//
//	The grid-transform gluon distribution evaluates hundreds of Fourier
//	(Hankel) integrals at construction time. Each one must either converge
//	to a requested tolerance or fail loudly: the integrator carries a hard
//	subdivision budget (Options.Limit) and returns ErrSubdivisionLimit when
//	the budget is exhausted, instead of refining forever or returning an
//	unconverged value.
//
// Algorithm Outline:
//  1. Apply the G7/K15 rule pair to [a, b]; the |K15−G7| discrepancy,
//     rescaled by the integrand's mean deviation, estimates the error.
//  2. While the summed error estimate exceeds max(AbsTol, RelTol·|Σ|):
//     pop the subinterval with the largest estimate, bisect it, apply the
//     rule pair to both halves, push them back.
//  3. Fail with ErrSubdivisionLimit once Limit subdivisions have been spent.
//
// Complexity: 15 integrand evaluations per subinterval; memory O(intervals).
//
// Errors:
//   - ErrNilIntegrand      — no integrand supplied.
//   - ErrBadInterval       — a >= b, or a bound is not finite.
//   - ErrBadOptions        — non-positive budget, or both tolerances zero/negative.
//   - ErrSubdivisionLimit  — tolerance not reached within the budget.
package quad
