package interpolate_test

import (
	"math"
	"testing"

	"github.com/fanghuoqianglfl/SOLO/interpolate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLinear_Validation covers the construction sentinels.
func TestNewLinear_Validation(t *testing.T) {
	_, err := interpolate.NewLinear([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, interpolate.ErrTooFewPoints, "single-point axis must be rejected")

	_, err = interpolate.NewLinear([]float64{1, 1, 2}, []float64{0, 0, 0})
	assert.ErrorIs(t, err, interpolate.ErrNotIncreasing, "repeated abscissa must be rejected")

	_, err = interpolate.NewLinear([]float64{1, 2, 3}, []float64{0, 0})
	assert.ErrorIs(t, err, interpolate.ErrLengthMismatch, "value count must match axis length")
}

// TestLinear_NodesAndMidpoints verifies node exactness and betweenness.
func TestLinear_NodesAndMidpoints(t *testing.T) {
	xs := []float64{0, 1, 2.5, 4}
	ys := []float64{1, 3, -2, 0.5}
	lin, err := interpolate.NewLinear(xs, ys)
	require.NoError(t, err)

	for i, x := range xs {
		v, err := lin.Eval(x)
		require.NoError(t, err, "node %d is inside the range", i)
		assert.Equal(t, ys[i], v, "evaluation at node %d must reproduce the stored value", i)
	}
	for i := 0; i < len(xs)-1; i++ {
		mid := (xs[i] + xs[i+1]) / 2
		v, err := lin.Eval(mid)
		require.NoError(t, err)
		lo, hi := math.Min(ys[i], ys[i+1]), math.Max(ys[i], ys[i+1])
		assert.GreaterOrEqual(t, v, lo, "midpoint value below segment range")
		assert.LessOrEqual(t, v, hi, "midpoint value above segment range")
	}
}

// TestLinear_OutOfRange checks that evaluation never extrapolates.
func TestLinear_OutOfRange(t *testing.T) {
	lin, err := interpolate.NewLinear([]float64{0, 1, 2}, []float64{0, 1, 4})
	require.NoError(t, err)

	_, err = lin.Eval(-0.001)
	assert.ErrorIs(t, err, interpolate.ErrOutOfRange, "below Min must error")
	_, err = lin.Eval(2.001)
	assert.ErrorIs(t, err, interpolate.ErrOutOfRange, "above Max must error")
	assert.Equal(t, 0.0, lin.Min(), "Min accessor")
	assert.Equal(t, 2.0, lin.Max(), "Max accessor")
}

// TestLinear_AccelSweep exercises the lookup cache with a monotone sweep,
// a backwards sweep, and random-order jumps.
func TestLinear_AccelSweep(t *testing.T) {
	n := 101
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) / 10
		ys[i] = math.Sin(xs[i])
	}
	lin, err := interpolate.NewLinear(xs, ys)
	require.NoError(t, err)

	probe := func(x float64) {
		v, err := lin.Eval(x)
		require.NoError(t, err)
		assert.InDelta(t, math.Sin(x), v, 5e-3, "linear interpolation of sin at x=%g", x)
	}
	for x := 0.0; x <= 10; x += 0.037 {
		probe(x)
	}
	for x := 10.0; x >= 0; x -= 0.041 {
		probe(x)
	}
	for _, x := range []float64{9.7, 0.2, 5.5, 0.0, 10.0, 3.3} {
		probe(x)
	}
}

// TestBilinear_NodesAndRanges verifies 2-D node exactness and range checks.
func TestBilinear_NodesAndRanges(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{10, 20}
	// f(x,y) = x + y at the nodes, fast axis x.
	vals := []float64{10, 11, 12, 20, 21, 22}
	bi, err := interpolate.NewBilinear(xs, ys, vals)
	require.NoError(t, err)

	for j, y := range ys {
		for i, x := range xs {
			v, err := bi.Eval(x, y)
			require.NoError(t, err)
			assert.Equal(t, vals[j*len(xs)+i], v, "node (%d,%d) must reproduce stored value", i, j)
		}
	}

	// Bilinear interpolation of a plane is exact everywhere.
	v, err := bi.Eval(1.5, 17)
	require.NoError(t, err)
	assert.InDelta(t, 18.5, v, 1e-12, "plane must be reproduced exactly off-node")

	_, err = bi.Eval(-0.5, 15)
	assert.ErrorIs(t, err, interpolate.ErrOutOfRange, "x below range must error")
	_, err = bi.Eval(1, 25)
	assert.ErrorIs(t, err, interpolate.ErrOutOfRange, "y above range must error")
}

// TestBilinear_Validation covers construction sentinels for the 2-D grid.
func TestBilinear_Validation(t *testing.T) {
	_, err := interpolate.NewBilinear([]float64{0, 1}, []float64{0}, []float64{1, 2})
	assert.ErrorIs(t, err, interpolate.ErrTooFewPoints, "degenerate slow axis must be rejected")

	_, err = interpolate.NewBilinear([]float64{0, 1}, []float64{0, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, interpolate.ErrLengthMismatch, "value count must be nx*ny")
}

// TestRef_IndependentCaches checks that a Ref shares data but answers
// identically regardless of the original's cache position.
func TestRef_IndependentCaches(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 8, 27}
	lin, err := interpolate.NewLinear(xs, ys)
	require.NoError(t, err)

	// Park the original's cache at the far end.
	_, err = lin.Eval(2.9)
	require.NoError(t, err)

	ref := lin.Ref()
	a, err := lin.Eval(0.4)
	require.NoError(t, err)
	b, err := ref.Eval(0.4)
	require.NoError(t, err)
	assert.Equal(t, a, b, "Ref must produce identical values")
}
