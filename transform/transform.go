package transform

import (
	"fmt"
	"io"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/fanghuoqianglfl/SOLO/gluondist"
	"github.com/fanghuoqianglfl/SOLO/interpolate"
	"github.com/fanghuoqianglfl/SOLO/quad"
)

// Compile-time check against the shared contract.
var _ gluondist.Distribution = (*Distribution)(nil)

// Distribution serves a position-space kernel and its numerically derived
// momentum-space transform from a precomputed grid. Build with New; the
// value is immutable afterwards, but its interpolation caches make queries
// unsafe for concurrent use.
type Distribution struct {
	kernel Kernel
	opts   Options

	lnq2 []float64 // log-spaced transform axis, strictly increasing
	ys   []float64 // linear scale axis, strictly increasing
	lnF  []float64 // row-major ln F values, fast axis lnq2

	// Effective q² bounds for query routing. The axis endpoints come out
	// of a log/exp round trip one ulp away from the requested Q2Min/Q2Max;
	// routing on these keeps every stored node on the grid path.
	q2lo, q2hi float64

	// Interpolation state: surface for a 2-D grid, line for a degenerate
	// one-row scale axis. Exactly one is non-nil.
	surface *interpolate.Bilinear
	line    *interpolate.Linear

	// Small-q² series coefficients: splines along Y for a 2-D grid,
	// constants for a degenerate one.
	leadSpline *interp.AkimaSpline
	subSpline  *interp.AkimaSpline
	lead0      float64
	sub0       float64
}

// New builds the interpolation grid and series fallback for kernel under
// opts. This is the expensive step: one adaptive integral per grid node
// plus two moment integrals per scale row. Any quadrature budget overrun,
// non-positive transform value, or invalid option aborts construction.
func New(kernel Kernel, opts Options) (*Distribution, error) {
	if kernel == nil {
		return nil, ErrNilKernel
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	d := &Distribution{kernel: kernel, opts: opts}
	start := time.Now()
	if err := d.setup(); err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		opts.Logger.Info("transform grid built",
			"kernel", kernel.Name(),
			"q2_dim", len(d.lnq2),
			"y_dim", len(d.ys),
			"elapsed", time.Since(start))
	}
	return d, nil
}

// setup runs the construction algorithm; see the package documentation.
func (d *Distribution) setup() error {
	o := &d.opts
	qopts := quad.Options{AbsTol: o.AbsTol, RelTol: o.RelTol, Limit: o.SubdivisionLimit}

	d.lnq2 = floats.Span(make([]float64, o.Q2Dim), math.Log(o.Q2Min), math.Log(o.Q2Max))
	d.q2lo = math.Min(o.Q2Min, math.Exp(d.lnq2[0]))
	d.q2hi = math.Max(o.Q2Max, math.Exp(d.lnq2[len(d.lnq2)-1]))
	if o.YDim == 1 {
		d.ys = []float64{o.YMin}
	} else {
		d.ys = floats.Span(make([]float64, o.YDim), o.YMin, o.YMax)
	}

	leads := make([]float64, len(d.ys))
	subs := make([]float64, len(d.ys))
	d.lnF = make([]float64, len(d.lnq2)*len(d.ys))

	for i, y := range d.ys {
		rmax := kernelReach(d.kernel, y)
		lead, sub, err := seriesMoments(d.kernel, y, rmax, qopts)
		if err != nil {
			return err
		}
		leads[i], subs[i] = lead, sub

		for j, lq := range d.lnq2 {
			f, err := hankelNode(d.kernel, math.Exp(lq), y, rmax, qopts)
			if err != nil {
				return err
			}
			if !(f > 0) {
				return fmt.Errorf("transform: %s: F(q2=%g, Y=%g) = %g: %w",
					d.kernel.Name(), math.Exp(lq), y, f, ErrNonPositive)
			}
			d.lnF[i*len(d.lnq2)+j] = math.Log(f)
		}
		if o.Logger != nil {
			o.Logger.Debug("transform grid row done", "y", y, "rmax", rmax)
		}
	}

	if len(d.ys) == 1 {
		line, err := interpolate.NewLinear(d.lnq2, d.lnF)
		if err != nil {
			return err
		}
		d.line = line
		d.lead0, d.sub0 = leads[0], subs[0]
		return nil
	}

	surface, err := interpolate.NewBilinear(d.lnq2, d.ys, d.lnF)
	if err != nil {
		return err
	}
	d.surface = surface

	d.leadSpline = &interp.AkimaSpline{}
	if err := d.leadSpline.Fit(d.ys, leads); err != nil {
		return fmt.Errorf("transform: fitting leading series coefficients: %w", err)
	}
	d.subSpline = &interp.AkimaSpline{}
	if err := d.subSpline.Fit(d.ys, subs); err != nil {
		return fmt.Errorf("transform: fitting subleading series coefficients: %w", err)
	}
	return nil
}

// degenerate reports whether the scale axis collapsed to a single row.
func (d *Distribution) degenerate() bool { return d.line != nil }

// checkY validates the scale argument against the grid; a degenerate grid
// ignores Y entirely.
func (d *Distribution) checkY(y float64) error {
	if d.degenerate() {
		return nil
	}
	if y < d.ys[0] || y > d.ys[len(d.ys)-1] || math.IsNaN(y) {
		return fmt.Errorf("transform: Y=%g not in [%g, %g]: %w",
			y, d.ys[0], d.ys[len(d.ys)-1], ErrYOutOfRange)
	}
	return nil
}

// S2 evaluates the kernel directly; position space needs no grid.
func (d *Distribution) S2(r2, y float64) (float64, error) {
	return d.kernel.S2(r2, y), nil
}

// S4 evaluates the quadrupole in the product-of-dipoles approximation
// S2(s2)·S2(t2); kernels with an exact quadrupole are out of scope here.
func (d *Distribution) S4(_, s2, t2, y float64) (float64, error) {
	return d.kernel.S2(s2, y) * d.kernel.S2(t2, y), nil
}

// F evaluates the momentum-space transform: series fallback below Q2Min,
// grid interpolation up to Q2Max, then ErrAboveRange or boundary clamping
// per Options.ClampAbove.
func (d *Distribution) F(q2, y float64) (float64, error) {
	if err := d.checkY(y); err != nil {
		return 0, err
	}
	if q2 < d.q2lo {
		return d.series(q2, y), nil
	}
	if q2 > d.q2hi {
		if !d.opts.ClampAbove {
			return 0, fmt.Errorf("transform: q2=%g above grid maximum %g: %w",
				q2, d.opts.Q2Max, ErrAboveRange)
		}
		q2 = d.q2hi
	}

	lq := math.Log(q2)
	// The axis endpoints were produced by the same Log; guard the one-ulp
	// mismatch a round trip through Exp can introduce.
	if lq < d.lnq2[0] {
		lq = d.lnq2[0]
	}
	if last := d.lnq2[len(d.lnq2)-1]; lq > last {
		lq = last
	}

	var lnf float64
	var err error
	if d.degenerate() {
		lnf, err = d.line.Eval(lq)
	} else {
		lnf, err = d.surface.Eval(lq, y)
	}
	if err != nil {
		return 0, fmt.Errorf("transform: grid lookup (q2=%g, Y=%g): %w", q2, y, err)
	}
	return math.Exp(lnf), nil
}

// series evaluates the small-q² fallback leading(Y) + subleading(Y)·q².
func (d *Distribution) series(q2, y float64) float64 {
	if d.degenerate() {
		return d.lead0 + d.sub0*q2
	}
	return d.leadSpline.Predict(y) + d.subSpline.Predict(y)*q2
}

// Name labels the distribution after its kernel.
func (d *Distribution) Name() string { return d.kernel.Name() }

// Q2Axis returns a copy of the stored transform-variable axis (q², not its
// logarithm), strictly increasing.
func (d *Distribution) Q2Axis() []float64 {
	out := make([]float64, len(d.lnq2))
	for i, lq := range d.lnq2 {
		out[i] = math.Exp(lq)
	}
	return out
}

// YAxis returns a copy of the stored scale axis, strictly increasing;
// a single entry when the axis is degenerate.
func (d *Distribution) YAxis() []float64 {
	out := make([]float64, len(d.ys))
	copy(out, d.ys)
	return out
}

// WriteGrid dumps the stored momentum-space grid as a whitespace table,
// one "Y q2 F" row per node, preceded by a header naming the kernel.
// The output is readable by the tabulated package's momentum reader.
func (d *Distribution) WriteGrid(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s momentum grid (%d x %d)\n# Y\tq2\tF\n",
		d.Name(), len(d.ys), len(d.lnq2)); err != nil {
		return err
	}
	for i, y := range d.ys {
		for j, lq := range d.lnq2 {
			// %.17g round-trips float64 exactly, so a reloaded table
			// reproduces the grid bit for bit.
			_, err := fmt.Fprintf(w, "%.17g\t%.17g\t%.17g\n",
				y, math.Exp(lq), math.Exp(d.lnF[i*len(d.lnq2)+j]))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
