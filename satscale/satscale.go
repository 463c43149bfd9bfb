package satscale

import (
	"errors"
	"math"
)

// Sentinel errors for Scale construction.
var (
	// ErrBadCoefficient indicates c or A is not strictly positive and finite.
	ErrBadCoefficient = errors.New("satscale: coefficient and mass number must be positive and finite")
	// ErrBadX0 indicates x0 lies outside the valid momentum-fraction domain (0, 1].
	ErrBadX0 = errors.New("satscale: x0 must lie in (0, 1]")
	// ErrBadLambda indicates a negative or non-finite growth exponent.
	ErrBadLambda = errors.New("satscale: lambda must be non-negative and finite")
)

// Scale converts between the momentum fraction x, the rapidity Y = ln(1/x),
// and the saturation scale Qs². It is immutable after New.
type Scale struct {
	q02x0lambda float64 // c · A^(1/3) · x0^λ, precomputed once
	lambda      float64
}

// New builds a Scale from the fit constants (c, A, x0, λ).
// Returns ErrBadCoefficient, ErrBadX0 or ErrBadLambda on invalid input.
func New(c, a, x0, lambda float64) (*Scale, error) {
	if !(c > 0) || !(a > 0) || math.IsInf(c, 1) || math.IsInf(a, 1) {
		return nil, ErrBadCoefficient
	}
	if !(x0 > 0) || x0 > 1 {
		return nil, ErrBadX0
	}
	if lambda < 0 || math.IsNaN(lambda) || math.IsInf(lambda, 1) {
		return nil, ErrBadLambda
	}
	return &Scale{
		q02x0lambda: c * math.Cbrt(a) * math.Pow(x0, lambda),
		lambda:      lambda,
	}, nil
}

// Lambda reports the growth exponent λ.
func (s *Scale) Lambda() float64 { return s.lambda }

// XY converts rapidity Y to momentum fraction x = exp(−Y).
func (s *Scale) XY(y float64) float64 { return math.Exp(-y) }

// YX converts momentum fraction x to rapidity Y = ln(1/x).
// XY and YX are mutual inverses on the valid domain.
func (s *Scale) YX(x float64) float64 { return -math.Log(x) }

// Qs2X evaluates the saturation scale at momentum fraction x.
func (s *Scale) Qs2X(x float64) float64 {
	return s.q02x0lambda * math.Pow(x, -s.lambda)
}

// Qs2Y evaluates the saturation scale at rapidity Y.
// Qs2Y(Y) == Qs2X(XY(Y)) up to floating-point rounding.
func (s *Scale) Qs2Y(y float64) float64 {
	return s.q02x0lambda * math.Exp(s.lambda*y)
}
