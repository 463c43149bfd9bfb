// Package gluondist defines the gluon-distribution contract shared by every
// model in this module, the closed-form GBW distribution, and a tracing
// decorator.
//
// 🚀 The contract
//
//	A Distribution answers three queries, in any order, any number of times:
//		• S2(r², Y)          — two-point (dipole) correlator, position space
//		• S4(r², s², t², Y)  — four-point (quadrupole) correlator
//		• F(q², Y)           — momentum-space transform of the dipole
//	plus Name() for labeling output. Query methods return (value, error):
//	models whose data cover a finite range report out-of-range queries as
//	errors rather than extrapolating.
//
// All implementations are immutable after construction and perform no I/O
// at query time. Implementations built on cached interpolation (see the
// transform and tabulated packages) are not safe for concurrent queries;
// the closed-form GBW model is.
//
// Arguments are squared lengths (r², s², t²) or squared momenta (q²) and a
// rapidity-like scale Y. Negative squared arguments are a caller contract
// violation and are not checked.
//
// ⚙️ Usage:
//
//	sc, _ := satscale.New(0.56, 197, 3.04e-4, 0.288)
//	gbw, _ := gluondist.NewGBW(sc)
//	v, _ := gbw.S2(0.5, 2.0)
//
//	// mirror every call onto a trace sink:
//	tr, _ := gluondist.NewTracer(gbw, traceFile)
//	v, _ = tr.S2(0.5, 2.0) // identical value, one record appended
package gluondist
