package tabulated

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fanghuoqianglfl/SOLO/gluondist"
	"github.com/fanghuoqianglfl/SOLO/interpolate"
)

// Compile-time check against the shared contract.
var _ gluondist.Distribution = (*Distribution)(nil)

// grid is one interpolation surface over (ln coordinate, Y), degenerating
// to a line when the table holds a single Y value.
type grid struct {
	surface *interpolate.Bilinear
	line    *interpolate.Linear
}

// build turns a parsed table into its interpolation state.
func build(t *table, label string) (grid, error) {
	lnc := make([]float64, len(t.coords))
	for i, c := range t.coords {
		lnc[i] = math.Log(c)
	}
	if len(t.ys) == 1 {
		line, err := interpolate.NewLinear(lnc, t.vals)
		if err != nil {
			return grid{}, fmt.Errorf("tabulated: %s grid: %w", label, err)
		}
		return grid{line: line}, nil
	}
	surface, err := interpolate.NewBilinear(lnc, t.ys, t.vals)
	if err != nil {
		return grid{}, fmt.Errorf("tabulated: %s grid: %w", label, err)
	}
	return grid{surface: surface}, nil
}

// eval looks up (coordinate, Y), mapping backend range misses onto the
// package's domain-error sentinel.
func (g grid) eval(coord, y float64) (float64, error) {
	if !(coord > 0) {
		return 0, fmt.Errorf("tabulated: coordinate %g: %w", coord, ErrOutOfRange)
	}
	var v float64
	var err error
	if g.line != nil {
		v, err = g.line.Eval(math.Log(coord))
	} else {
		v, err = g.surface.Eval(math.Log(coord), y)
	}
	if errors.Is(err, interpolate.ErrOutOfRange) {
		return 0, fmt.Errorf("tabulated: (coord=%g, Y=%g): %w", coord, y, ErrOutOfRange)
	}
	return v, err
}

// Distribution serves S2/S4 from a position-space table and F from an
// independent momentum-space table. Immutable after construction; the
// interpolation caches make queries unsafe for concurrent use.
type Distribution struct {
	name string
	pos  grid
	mom  grid
}

// New reads the position-space and momentum-space tables and builds both
// grids. Any table defect (see the package documentation) is fatal and
// leaves no partially usable value.
func New(pos, mom io.Reader, opts Options) (*Distribution, error) {
	pt, err := readTable(pos, "position")
	if err != nil {
		return nil, err
	}
	mt, err := readTable(mom, "momentum")
	if err != nil {
		return nil, err
	}

	d := &Distribution{name: opts.Name}
	if d.name == "" {
		d.name = "tabulated"
	}
	if d.pos, err = build(pt, "position"); err != nil {
		return nil, err
	}
	if d.mom, err = build(mt, "momentum"); err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		opts.Logger.Info("tabulated distribution loaded",
			"name", d.name,
			"position_rows", len(pt.ys), "position_cols", len(pt.coords),
			"momentum_rows", len(mt.ys), "momentum_cols", len(mt.coords))
	}
	return d, nil
}

// NewFromFiles opens the two table files and builds the distribution; the
// only I/O this package ever performs, once, at startup. An empty
// opts.Name is replaced by the file names.
func NewFromFiles(posPath, momPath string, opts Options) (*Distribution, error) {
	pf, err := os.Open(posPath)
	if err != nil {
		return nil, fmt.Errorf("tabulated: opening position table: %w", err)
	}
	defer pf.Close()
	mf, err := os.Open(momPath)
	if err != nil {
		return nil, fmt.Errorf("tabulated: opening momentum table: %w", err)
	}
	defer mf.Close()

	if opts.Name == "" {
		opts.Name = fmt.Sprintf("file(%s,%s)", filepath.Base(posPath), filepath.Base(momPath))
	}
	return New(pf, mf, opts)
}

// S2 interpolates the position-space table at (r2, y).
// Returns ErrOutOfRange outside the tabulated rectangle.
func (d *Distribution) S2(r2, y float64) (float64, error) {
	return d.pos.eval(r2, y)
}

// S4 evaluates the quadrupole in the product-of-dipoles approximation from
// the position table.
func (d *Distribution) S4(_, s2, t2, y float64) (float64, error) {
	a, err := d.pos.eval(s2, y)
	if err != nil {
		return 0, err
	}
	b, err := d.pos.eval(t2, y)
	if err != nil {
		return 0, err
	}
	return a * b, nil
}

// F interpolates the momentum-space table at (q2, y).
// Returns ErrOutOfRange outside the tabulated rectangle.
func (d *Distribution) F(q2, y float64) (float64, error) {
	return d.mom.eval(q2, y)
}

// Name labels the distribution.
func (d *Distribution) Name() string { return d.name }
