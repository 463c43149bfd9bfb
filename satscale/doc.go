// Package satscale implements the saturation-scale power law used by all
// gluon distributions in this module.
//
// The scale is fixed by four fit constants — an overall coefficient c, the
// mass number A, the reference momentum fraction x0, and the growth exponent
// λ — combined once at construction into the prefactor
//
//	Q0²·x0^λ = c · A^(1/3) · x0^λ
//
// after which the saturation scale at momentum fraction x, or equivalently
// rapidity Y = ln(1/x), is
//
//	Qs²(x) = Q0²·x0^λ · x^(−λ)
//	Qs²(Y) = Q0²·x0^λ · exp(λ·Y)
//
// A Scale is an immutable value: conversions are pure functions and may be
// called concurrently. One Scale is typically shared by several
// distributions; it carries no reference back to them and must simply
// outlive them.
//
// Valid domain: x ∈ (0, 1], Y ∈ [0, ∞). Arguments outside the domain are a
// caller contract violation; the conversion functions do not check them.
package satscale
