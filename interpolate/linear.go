package interpolate

// Linear interpolates piecewise-linearly over a 1-D grid.
// Not safe for concurrent use; see Ref.
type Linear struct {
	xs  []float64
	ys  []float64
	acc accel
}

// NewLinear builds a 1-D interpolator over the strictly increasing
// abscissae xs with one value per point. The slices are retained, not
// copied; callers must not mutate them afterwards.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if err := checkAxis(xs); err != nil {
		return nil, err
	}
	if len(ys) != len(xs) {
		return nil, ErrLengthMismatch
	}
	return &Linear{xs: xs, ys: ys}, nil
}

// Min reports the smallest covered abscissa.
func (l *Linear) Min() float64 { return l.xs[0] }

// Max reports the largest covered abscissa.
func (l *Linear) Max() float64 { return l.xs[len(l.xs)-1] }

// Eval evaluates the interpolant at x.
// Returns ErrOutOfRange if x is outside [Min, Max].
func (l *Linear) Eval(x float64) (float64, error) {
	if x < l.xs[0] || x > l.xs[len(l.xs)-1] {
		return 0, ErrOutOfRange
	}
	i := l.acc.lookup(l.xs, x)
	t := (x - l.xs[i]) / (l.xs[i+1] - l.xs[i])
	return l.ys[i]*(1-t) + l.ys[i+1]*t, nil
}

// Ref returns a shallow copy sharing the grid data but owning a fresh
// lookup cache. Each goroutine querying the same grid must use its own Ref.
func (l *Linear) Ref() *Linear {
	return &Linear{xs: l.xs, ys: l.ys}
}
