package gluondist

import "errors"

// Sentinel errors for constructors in this package.
var (
	// ErrNilScale indicates a nil *satscale.Scale was supplied.
	ErrNilScale = errors.New("gluondist: saturation scale is nil")
	// ErrNilDistribution indicates a nil Distribution was supplied to a decorator.
	ErrNilDistribution = errors.New("gluondist: wrapped distribution is nil")
	// ErrNilSink indicates a nil trace sink was supplied.
	ErrNilSink = errors.New("gluondist: trace sink is nil")
)

// Distribution is the polymorphic gluon-distribution contract. A concrete
// kind is selected once at construction and never switched at runtime.
//
// The three query methods are logically const after construction; whether
// they may be called concurrently depends on the implementation (cached
// interpolation is single-threaded, closed forms are not restricted).
type Distribution interface {
	// S2 evaluates the dipole correlator at squared separation r2 and
	// rapidity y.
	S2(r2, y float64) (float64, error)
	// S4 evaluates the quadrupole correlator. Models without an exact
	// quadrupole use the product-of-dipoles approximation S2(s2)·S2(t2).
	S4(r2, s2, t2, y float64) (float64, error)
	// F evaluates the momentum-space transform at squared momentum q2.
	F(q2, y float64) (float64, error)
	// Name labels the distribution, including its defining parameters,
	// for result headers and trace output.
	Name() string
}

// Compile-time checks that both in-package models satisfy the contract.
var (
	_ Distribution = (*GBW)(nil)
	_ Distribution = (*Tracer)(nil)
)
