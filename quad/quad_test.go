package quad_test

import (
	"math"
	"testing"

	"github.com/fanghuoqianglfl/SOLO/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// knownIntegral is a definite integral with an exact value, in the spirit
// of the reference tables used to test quadrature rules.
type knownIntegral struct {
	name string
	a, b float64
	f    func(float64) float64
	want float64
}

func knownIntegrals() []knownIntegral {
	return []knownIntegral{
		{
			name: "∫_0^1 sin(x)dx",
			a:    0, b: 1,
			f:    math.Sin,
			want: 1 - math.Cos(1),
		},
		{
			name: "∫_0^1 x·exp(-x)dx",
			a:    0, b: 1,
			f:    func(x float64) float64 { return x * math.Exp(-x) },
			want: (math.E - 2) / math.E,
		},
		{
			name: "∫_0^1 sqrt(x)dx",
			a:    0, b: 1,
			f:    math.Sqrt,
			want: 2.0 / 3.0,
		},
		{
			name: "∫_{-1}^2 x^5 dx",
			a:    -1, b: 2,
			f:    func(x float64) float64 { return math.Pow(x, 5) },
			want: (math.Pow(2, 6) - math.Pow(-1, 6)) / 6,
		},
		{
			name: "∫_0^1 exp(x)/(x²+1)dx",
			a:    0, b: 1,
			f:    func(x float64) float64 { return math.Exp(x) / (x*x + 1) },
			want: 1.270724139833620220138,
		},
		{
			name: "∫_0^10 sin(50x)dx",
			a:    0, b: 10,
			f:    func(x float64) float64 { return math.Sin(50 * x) },
			want: (1 - math.Cos(500)) / 50,
		},
	}
}

// TestAdaptive_KnownIntegrals checks convergence to exact values well
// within the requested tolerance.
func TestAdaptive_KnownIntegrals(t *testing.T) {
	opts := quad.DefaultOptions()
	for _, ki := range knownIntegrals() {
		res, err := quad.Adaptive(ki.f, ki.a, ki.b, opts)
		require.NoError(t, err, "%s must converge", ki.name)
		assert.InDelta(t, ki.want, res.Value, 1e-7+1e-7*math.Abs(ki.want),
			"%s value", ki.name)
		assert.Positive(t, res.Subintervals, "%s must report its partition size", ki.name)
	}
}

// TestAdaptive_ErrorEstimateCoversTruth verifies the reported AbsErr
// actually bounds the true error for a non-trivial integrand.
func TestAdaptive_ErrorEstimateCoversTruth(t *testing.T) {
	res, err := quad.Adaptive(math.Sqrt, 0, 1, quad.DefaultOptions())
	require.NoError(t, err)
	assert.LessOrEqual(t, math.Abs(res.Value-2.0/3.0), math.Max(res.AbsErr, 1e-14),
		"true error must not exceed the estimate")
}

// TestAdaptive_SubdivisionLimit forces the budget failure on a singular
// integrand with an unreachable tolerance.
func TestAdaptive_SubdivisionLimit(t *testing.T) {
	opts := quad.Options{AbsTol: 1e-300, RelTol: 1e-15, Limit: 2}
	res, err := quad.Adaptive(math.Sqrt, 0, 1, opts)
	assert.ErrorIs(t, err, quad.ErrSubdivisionLimit, "budget exhaustion must surface")
	assert.InDelta(t, 2.0/3.0, res.Value, 1e-3,
		"the partial estimate should still be returned")
}

// TestAdaptive_Validation covers the construction sentinels.
func TestAdaptive_Validation(t *testing.T) {
	opts := quad.DefaultOptions()

	_, err := quad.Adaptive(nil, 0, 1, opts)
	assert.ErrorIs(t, err, quad.ErrNilIntegrand, "nil integrand")

	_, err = quad.Adaptive(math.Sin, 1, 1, opts)
	assert.ErrorIs(t, err, quad.ErrBadInterval, "empty interval")

	_, err = quad.Adaptive(math.Sin, 2, 1, opts)
	assert.ErrorIs(t, err, quad.ErrBadInterval, "reversed interval")

	_, err = quad.Adaptive(math.Sin, 0, math.Inf(1), opts)
	assert.ErrorIs(t, err, quad.ErrBadInterval, "infinite bound")

	_, err = quad.Adaptive(math.Sin, 0, 1, quad.Options{AbsTol: 0, RelTol: 0, Limit: 10})
	assert.ErrorIs(t, err, quad.ErrBadOptions, "unreachable tolerances")

	_, err = quad.Adaptive(math.Sin, 0, 1, quad.Options{AbsTol: 1e-8, RelTol: 0, Limit: 0})
	assert.ErrorIs(t, err, quad.ErrBadOptions, "zero budget")
}

// TestAdaptive_BesselWeightedGaussian integrates the kind of oscillatory,
// exponentially damped integrand the grid transform produces:
// ∫_0^∞ r·J0(q·r)·exp(-r²/4) dr = 2·exp(-q²), truncated where the
// Gaussian is negligible.
func TestAdaptive_BesselWeightedGaussian(t *testing.T) {
	for _, q := range []float64{0.5, 2, 5} {
		f := func(r float64) float64 {
			return r * math.J0(q*r) * math.Exp(-r*r/4)
		}
		res, err := quad.Adaptive(f, 0, 20, quad.DefaultOptions())
		require.NoError(t, err, "Hankel-type integrand must converge at q=%g", q)
		assert.InDelta(t, 2*math.Exp(-q*q), res.Value, 1e-8,
			"closed-form Hankel transform at q=%g", q)
	}
}
