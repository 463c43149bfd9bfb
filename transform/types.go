// Package transform: sentinel errors, kernel contract and grid options.
package transform

import (
	"errors"
	"log/slog"
	"math"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrNilKernel indicates a nil position-space kernel.
	ErrNilKernel = errors.New("transform: kernel is nil")
	// ErrBadRange indicates an invalid q² or Y range (Q2Min must be positive
	// and below Q2Max; YMin must not exceed YMax; all bounds finite).
	ErrBadRange = errors.New("transform: invalid grid range")
	// ErrBadDimension indicates too few grid points for an axis.
	ErrBadDimension = errors.New("transform: invalid grid dimension")
	// ErrBadLimit indicates a non-positive subdivision budget.
	ErrBadLimit = errors.New("transform: subdivision limit must be positive")
	// ErrBadTolerance indicates quadrature tolerances that can never be met.
	ErrBadTolerance = errors.New("transform: invalid quadrature tolerance")
	// ErrBadKernelParam indicates an invalid kernel parameter.
	ErrBadKernelParam = errors.New("transform: invalid kernel parameter")
	// ErrNonPositive indicates the transform produced a non-positive grid
	// value, which the logarithmic grid representation cannot hold.
	ErrNonPositive = errors.New("transform: non-positive transform value on grid")
	// ErrAboveRange indicates an F query above Q2Max with clamping disabled.
	ErrAboveRange = errors.New("transform: q2 above grid maximum")
	// ErrYOutOfRange indicates a query outside the covered Y range.
	ErrYOutOfRange = errors.New("transform: Y outside grid range")
)

// Kernel supplies the position-space dipole correlator the grid is built
// from. Implementations must be pure: no state mutation, no failure modes.
// A kernel with a fixed scale simply ignores its y argument.
type Kernel interface {
	// S2 evaluates the dipole correlator at squared separation r2 and
	// rapidity y. Must satisfy S2(0, y) == 1 and decay to 0 as r2 → ∞.
	S2(r2, y float64) float64
	// Name labels the kernel including its defining parameters.
	Name() string
}

// Default grid geometry and quadrature settings.
const (
	DefaultQ2Min            = 1e-2
	DefaultQ2Max            = 1e2
	DefaultQ2Dim            = 192
	DefaultYMin             = 0.0
	DefaultYMax             = 8.0
	DefaultYDim             = 33
	DefaultSubdivisionLimit = 1000
	DefaultAbsTol           = 1e-12
	DefaultRelTol           = 1e-7
)

// Options configures grid construction and out-of-range behavior.
//
// Fields:
//   - Q2Min, Q2Max, Q2Dim — log-spaced transform-variable axis. Queries
//     below Q2Min take the series fallback; above Q2Max see ClampAbove.
//   - YMin, YMax, YDim — linear scale axis. YMin == YMax produces a 1-D
//     grid regardless of YDim.
//   - SubdivisionLimit, AbsTol, RelTol — per-integral quadrature budget and
//     tolerances (see the quad package). A budget overrun at any node is a
//     construction error, not a warning.
//   - ClampAbove — when true, F queries above Q2Max evaluate at the Q2Max
//     boundary instead of returning ErrAboveRange.
//   - Logger — optional; construction progress is logged through it.
type Options struct {
	Q2Min, Q2Max float64
	Q2Dim        int
	YMin, YMax   float64
	YDim         int

	SubdivisionLimit int
	AbsTol, RelTol   float64

	ClampAbove bool
	Logger     *slog.Logger
}

// DefaultOptions returns the documented defaults; the zero Options value is
// not usable.
func DefaultOptions() Options {
	return Options{
		Q2Min:            DefaultQ2Min,
		Q2Max:            DefaultQ2Max,
		Q2Dim:            DefaultQ2Dim,
		YMin:             DefaultYMin,
		YMax:             DefaultYMax,
		YDim:             DefaultYDim,
		SubdivisionLimit: DefaultSubdivisionLimit,
		AbsTol:           DefaultAbsTol,
		RelTol:           DefaultRelTol,
	}
}

// validate checks the option set and normalizes the degenerate scale axis.
func (o *Options) validate() error {
	if !(o.Q2Min > 0) || !(o.Q2Max > o.Q2Min) || o.Q2Max > 1e300 {
		return ErrBadRange
	}
	if o.YMin > o.YMax || math.IsNaN(o.YMin) || math.IsNaN(o.YMax) {
		return ErrBadRange
	}
	if o.Q2Dim < 2 {
		return ErrBadDimension
	}
	if o.YMin == o.YMax {
		o.YDim = 1
	} else if o.YDim < 2 {
		return ErrBadDimension
	}
	if o.SubdivisionLimit < 1 {
		return ErrBadLimit
	}
	if o.AbsTol <= 0 && o.RelTol <= 0 {
		return ErrBadTolerance
	}
	return nil
}
