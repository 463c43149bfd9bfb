package gluondist

import (
	"math"

	"github.com/fanghuoqianglfl/SOLO/satscale"
)

// GBW is the Golec-Biernat–Wüsthoff closed-form distribution:
//
//	S2(r², Y) = exp(−r²·Qs²(Y)/4)
//	F(q², Y)  = exp(−q²/Qs²(Y)) / (π·Qs²(Y))
//
// F is the exact 2-D Fourier transform of the dipole, so no numerical
// machinery is involved; every query is a closed formula. The quadrupole
// factorizes into two dipoles (large-Nc approximation).
//
// GBW borrows the Scale: the Scale must outlive the distribution.
// Queries are pure and safe for concurrent use.
type GBW struct {
	sc *satscale.Scale
}

// NewGBW builds the closed-form model on a shared saturation scale.
// Returns ErrNilScale if sc is nil.
func NewGBW(sc *satscale.Scale) (*GBW, error) {
	if sc == nil {
		return nil, ErrNilScale
	}
	return &GBW{sc: sc}, nil
}

// S2 evaluates the dipole correlator. S2(0, y) == 1 for every y.
func (g *GBW) S2(r2, y float64) (float64, error) {
	return math.Exp(-0.25 * r2 * g.sc.Qs2Y(y)), nil
}

// S4 evaluates the quadrupole as the product of two dipoles at the same
// scale. r2 does not enter: the factorized form depends only on s2 and t2.
func (g *GBW) S4(_, s2, t2, y float64) (float64, error) {
	qs2 := g.sc.Qs2Y(y)
	return math.Exp(-0.25 * (s2 + t2) * qs2), nil
}

// F evaluates the momentum-space form. Its integral over the transverse
// momentum plane, ∫ F d²q, equals 1 for every y.
func (g *GBW) F(q2, y float64) (float64, error) {
	qs2 := g.sc.Qs2Y(y)
	return math.Exp(-q2/qs2) / (math.Pi * qs2), nil
}

// Name labels the model.
func (g *GBW) Name() string { return "GBW" }
