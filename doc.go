// Package solo provides the gluon-distribution machinery of a
// saturation-physics calculation: dipole/quadrupole correlators in
// position space and their momentum-space transforms, served fast
// enough to sit inside a Monte Carlo integration loop.
//
// 🚀 What is SOLO?
//
//	A numerical library that brings together:
//		• satscale    — the saturation-scale power law Qs²(x) and x↔Y conversions
//		• gluondist   — the Distribution contract {S2, S4, F, Name},
//		  the closed-form GBW model, and a call-tracing decorator
//		• transform   — distributions whose momentum-space form is built
//		  numerically from a position-space kernel (MV family), via an
//		  interpolation grid plus a small-q² series fallback
//		• tabulated   — distributions served entirely from data files
//		• quad        — adaptive Gauss–Kronrod quadrature with a hard
//		  subdivision budget
//		• interpolate — cached 1-D/2-D grid interpolation primitives
//
// ✨ Why this layout?
//
//   - One package per concern – each is small, documented, and testable alone
//   - Explicit numerics – quadrature budgets and grid ranges are options,
//     and exceeding them is an error, never a silent clamp
//   - Pure computation – no goroutines, no globals; construction does all
//     the heavy work once, queries are cheap and read-only
//
// Typical use:
//
//	sc, _ := satscale.New(0.56, 197, 0.000304, 0.288)
//	mv, _ := transform.NewMV(0.24, sc)
//	dist, err := transform.New(mv, transform.DefaultOptions())
//	if err != nil { ... }
//	f, err := dist.F(2.5, 1.0) // momentum space, interpolated
//
// See each package's doc.go for the full contract, and cmd/gluongrid for a
// driver that dumps a constructed grid as a table.
package solo
