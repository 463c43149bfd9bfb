// Package quad: sentinel errors, options and the result type.
package quad

import "errors"

// Sentinel errors for integration.
var (
	// ErrNilIntegrand indicates a nil integrand function.
	ErrNilIntegrand = errors.New("quad: integrand is nil")
	// ErrBadInterval indicates a degenerate or non-finite integration interval.
	ErrBadInterval = errors.New("quad: interval bounds must be finite with a < b")
	// ErrBadOptions indicates a non-positive subdivision budget or tolerances
	// that can never be met (both zero or negative).
	ErrBadOptions = errors.New("quad: invalid tolerance or subdivision limit")
	// ErrSubdivisionLimit indicates the requested tolerance was not reached
	// within Options.Limit subdivisions. The failure is final: the caller
	// decides whether to retry with a larger budget.
	ErrSubdivisionLimit = errors.New("quad: subdivision limit exceeded before convergence")
)

// Default tolerances and budget, mirroring the usual QAG-style settings.
const (
	// DefaultAbsTol is the default absolute tolerance.
	DefaultAbsTol = 1e-12
	// DefaultRelTol is the default relative tolerance.
	DefaultRelTol = 1e-8
	// DefaultLimit is the default maximum number of subdivisions.
	DefaultLimit = 1000
)

// Options configures Adaptive.
//
// Convergence is declared once the summed error estimate drops below
// max(AbsTol, RelTol·|integral|). Limit bounds the number of bisections;
// exhausting it is a hard error, never a silent truncation.
type Options struct {
	AbsTol float64
	RelTol float64
	Limit  int
}

// DefaultOptions returns the package defaults:
// AbsTol=1e-12, RelTol=1e-8, Limit=1000.
func DefaultOptions() Options {
	return Options{AbsTol: DefaultAbsTol, RelTol: DefaultRelTol, Limit: DefaultLimit}
}

// Result carries the integral estimate and its diagnostics.
type Result struct {
	// Value is the integral estimate.
	Value float64
	// AbsErr is the summed error estimate over all subintervals.
	AbsErr float64
	// Subintervals is the number of subintervals in the final partition.
	Subintervals int
}
