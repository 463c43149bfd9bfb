package interpolate

// Bilinear interpolates over a 2-D rectangular grid. Values are stored
// row-major with xs as the fast axis: vals[j*len(xs)+i] is the value at
// (xs[i], ys[j]). Not safe for concurrent use; see Ref.
type Bilinear struct {
	xs   []float64
	ys   []float64
	vals []float64
	xacc accel
	yacc accel
}

// NewBilinear builds a 2-D interpolator over two strictly increasing axes.
// vals must hold len(xs)*len(ys) entries in row-major order (fast axis xs).
// The slices are retained, not copied.
func NewBilinear(xs, ys, vals []float64) (*Bilinear, error) {
	if err := checkAxis(xs); err != nil {
		return nil, err
	}
	if err := checkAxis(ys); err != nil {
		return nil, err
	}
	if len(vals) != len(xs)*len(ys) {
		return nil, ErrLengthMismatch
	}
	return &Bilinear{xs: xs, ys: ys, vals: vals}, nil
}

// XMin reports the smallest covered abscissa on the fast axis.
func (b *Bilinear) XMin() float64 { return b.xs[0] }

// XMax reports the largest covered abscissa on the fast axis.
func (b *Bilinear) XMax() float64 { return b.xs[len(b.xs)-1] }

// YMin reports the smallest covered abscissa on the slow axis.
func (b *Bilinear) YMin() float64 { return b.ys[0] }

// YMax reports the largest covered abscissa on the slow axis.
func (b *Bilinear) YMax() float64 { return b.ys[len(b.ys)-1] }

// Eval evaluates the interpolant at (x, y).
// Returns ErrOutOfRange if the point lies outside the covered rectangle.
func (b *Bilinear) Eval(x, y float64) (float64, error) {
	nx := len(b.xs)
	if x < b.xs[0] || x > b.xs[nx-1] || y < b.ys[0] || y > b.ys[len(b.ys)-1] {
		return 0, ErrOutOfRange
	}
	i := b.xacc.lookup(b.xs, x)
	j := b.yacc.lookup(b.ys, y)
	t := (x - b.xs[i]) / (b.xs[i+1] - b.xs[i])
	u := (y - b.ys[j]) / (b.ys[j+1] - b.ys[j])

	v00 := b.vals[j*nx+i]
	v10 := b.vals[j*nx+i+1]
	v01 := b.vals[(j+1)*nx+i]
	v11 := b.vals[(j+1)*nx+i+1]

	lo := v00*(1-t) + v10*t
	hi := v01*(1-t) + v11*t
	return lo*(1-u) + hi*u, nil
}

// Ref returns a shallow copy sharing the grid data but owning fresh
// lookup caches. Each goroutine querying the same grid must use its own Ref.
func (b *Bilinear) Ref() *Bilinear {
	return &Bilinear{xs: b.xs, ys: b.ys, vals: b.vals}
}
