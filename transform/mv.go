package transform

import (
	"fmt"
	"math"

	"github.com/fanghuoqianglfl/SOLO/satscale"
)

// MV is the McLerran–Venugopalan position-space kernel
//
//	S2(r², Y) = exp( −(r²·Qs²(Y)/4) · ln(1/(Λ·r) + e) )
//
// with the saturation scale taken from a shared satscale.Scale. The
// logarithm is regulated by the +e shift so the exponent stays positive
// for all r; S2(0, Y) = 1 is taken as the r → 0 limit.
//
// MV has no closed-form momentum-space transform, which is exactly what
// the grid machinery in this package exists for.
type MV struct {
	lambda float64 // Λ, the infrared regulator in GeV
	sc     *satscale.Scale
}

// NewMV builds an MV kernel with infrared regulator lambdaMV on a shared
// saturation scale. The Scale must outlive the kernel.
func NewMV(lambdaMV float64, sc *satscale.Scale) (*MV, error) {
	if sc == nil {
		return nil, ErrNilKernel
	}
	if !(lambdaMV > 0) || math.IsInf(lambdaMV, 1) {
		return nil, ErrBadKernelParam
	}
	return &MV{lambda: lambdaMV, sc: sc}, nil
}

// S2 evaluates the MV dipole at squared separation r2 and rapidity y.
func (m *MV) S2(r2, y float64) float64 {
	if r2 == 0 {
		return 1
	}
	qs2 := m.sc.Qs2Y(y)
	return mvDipole(r2, qs2, m.lambda)
}

// Name labels the kernel with its regulator.
func (m *MV) Name() string {
	return fmt.Sprintf("MV(LambdaMV=%g)", m.lambda)
}

// FixedScaleMV is the MV kernel frozen at one saturation scale. It accepts
// a y argument to satisfy the Kernel contract but ignores it, so a grid
// built on it degenerates to 1-D and its F is independent of Y.
type FixedScaleMV struct {
	lambda float64
	qs2    float64
}

// NewFixedScaleMV builds an MV kernel pinned at saturation scale qs2.
func NewFixedScaleMV(lambdaMV, qs2 float64) (*FixedScaleMV, error) {
	if !(lambdaMV > 0) || math.IsInf(lambdaMV, 1) {
		return nil, ErrBadKernelParam
	}
	if !(qs2 > 0) || math.IsInf(qs2, 1) {
		return nil, ErrBadKernelParam
	}
	return &FixedScaleMV{lambda: lambdaMV, qs2: qs2}, nil
}

// S2 evaluates the fixed-scale MV dipole; the y argument is ignored.
func (m *FixedScaleMV) S2(r2, _ float64) float64 {
	if r2 == 0 {
		return 1
	}
	return mvDipole(r2, m.qs2, m.lambda)
}

// Name labels the kernel with its regulator and frozen scale.
func (m *FixedScaleMV) Name() string {
	return fmt.Sprintf("fMV(LambdaMV=%g,Qs2=%g)", m.lambda, m.qs2)
}

// mvDipole evaluates the MV exponent for r2 > 0.
func mvDipole(r2, qs2, lambda float64) float64 {
	r := math.Sqrt(r2)
	return math.Exp(-0.25 * r2 * qs2 * math.Log(1/(lambda*r)+math.E))
}
