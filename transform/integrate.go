package transform

import (
	"fmt"
	"math"

	"github.com/fanghuoqianglfl/SOLO/quad"
)

// decayThreshold is the kernel magnitude below which the transform
// integrand is treated as zero when choosing the truncation radius.
const decayThreshold = 1e-18

// reachCap bounds the truncation-radius search for kernels that decay
// anomalously slowly; hitting it means the integral will be truncated
// there and the quadrature tolerances decide whether that is acceptable.
const reachCap = 1e9

// kernelReach finds a radius beyond which the kernel contributes nothing
// to the transform, by doubling until S2 has decayed below threshold.
func kernelReach(k Kernel, y float64) float64 {
	r := 1.0
	for k.S2(r*r, y) > decayThreshold && r < reachCap {
		r *= 2
	}
	return r
}

// hankelNode evaluates the transform integral
//
//	F(q², Y) = (1/2π) ∫₀^rmax r · J0(q·r) · S2(r², Y) dr
//
// at one grid node. A quadrature failure is returned with the node named,
// wrapping the quad sentinel so callers can match errors.Is.
func hankelNode(k Kernel, q2, y, rmax float64, qopts quad.Options) (float64, error) {
	q := math.Sqrt(q2)
	res, err := quad.Adaptive(func(r float64) float64 {
		return r * math.J0(q*r) * k.S2(r*r, y)
	}, 0, rmax, qopts)
	if err != nil {
		return 0, fmt.Errorf("transform: %s: F node (q2=%g, Y=%g): %w", k.Name(), q2, y, err)
	}
	return res.Value / (2 * math.Pi), nil
}

// seriesMoments computes the leading and subleading small-q² coefficients
// for one Y row, from the zeroth and first even moments of the kernel:
//
//	leading    = (1/2π) ∫ r·S2 dr
//	subleading = −(1/8π) ∫ r³·S2 dr
//
// (the first two terms of the J0 expansion of the transform).
func seriesMoments(k Kernel, y, rmax float64, qopts quad.Options) (leading, subleading float64, err error) {
	m0, err := quad.Adaptive(func(r float64) float64 {
		return r * k.S2(r*r, y)
	}, 0, rmax, qopts)
	if err != nil {
		return 0, 0, fmt.Errorf("transform: %s: leading moment (Y=%g): %w", k.Name(), y, err)
	}
	m1, err := quad.Adaptive(func(r float64) float64 {
		return r * r * r * k.S2(r*r, y)
	}, 0, rmax, qopts)
	if err != nil {
		return 0, 0, fmt.Errorf("transform: %s: subleading moment (Y=%g): %w", k.Name(), y, err)
	}
	return m0.Value / (2 * math.Pi), -m1.Value / (8 * math.Pi), nil
}
