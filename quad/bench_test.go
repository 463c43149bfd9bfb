package quad_test

import (
	"math"
	"testing"

	"github.com/fanghuoqianglfl/SOLO/quad"
)

// BenchmarkAdaptive_Smooth measures a single-interval convergence.
func BenchmarkAdaptive_Smooth(b *testing.B) {
	opts := quad.DefaultOptions()
	for i := 0; i < b.N; i++ {
		if _, err := quad.Adaptive(math.Sin, 0, 1, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAdaptive_Oscillatory measures the refinement path on the kind
// of Bessel-weighted integrand the grid transform produces.
func BenchmarkAdaptive_Oscillatory(b *testing.B) {
	opts := quad.DefaultOptions()
	f := func(r float64) float64 {
		return r * math.J0(5*r) * math.Exp(-r*r/4)
	}
	for i := 0; i < b.N; i++ {
		if _, err := quad.Adaptive(f, 0, 20, opts); err != nil {
			b.Fatal(err)
		}
	}
}
