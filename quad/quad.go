package quad

import (
	"container/heap"
	"math"
)

// Gauss-Kronrod 7/15 nodes and weights (positive half, QUADPACK qk15).
var (
	xgk = [8]float64{
		0.991455371120813, 0.949107912342759, 0.864864423359769,
		0.741531185599394, 0.586087235467691, 0.405845151377397,
		0.207784955007898, 0.0,
	}
	wgk = [8]float64{
		0.022935322010529, 0.063092092629979, 0.104790010322250,
		0.140653259715525, 0.169004726639267, 0.190350578064785,
		0.204432940075298, 0.209482141084728,
	}
	wg = [4]float64{
		0.129484966168870, 0.279705391489277, 0.381830050505119,
		0.417959183673469,
	}
)

// interval is one subinterval with its rule-pair estimates.
type interval struct {
	a, b   float64
	value  float64
	abserr float64
}

// intervalHeap orders intervals by descending error estimate.
type intervalHeap []interval

func (h intervalHeap) Len() int            { return len(h) }
func (h intervalHeap) Less(i, j int) bool  { return h[i].abserr > h[j].abserr }
func (h intervalHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intervalHeap) Push(x interface{}) { *h = append(*h, x.(interval)) }
func (h *intervalHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// gk15 applies the G7/K15 rule pair to [a, b].
func gk15(f func(float64) float64, a, b float64) interval {
	center := 0.5 * (a + b)
	hlgth := 0.5 * (b - a)

	var fv1, fv2 [7]float64
	fc := f(center)
	resg := fc * wg[3]
	resk := fc * wgk[7]
	resabs := math.Abs(resk)

	for j := 0; j < 3; j++ {
		jtw := 2*j + 1
		x := hlgth * xgk[jtw]
		f1 := f(center - x)
		f2 := f(center + x)
		fv1[jtw] = f1
		fv2[jtw] = f2
		sum := f1 + f2
		resg += wg[j] * sum
		resk += wgk[jtw] * sum
		resabs += wgk[jtw] * (math.Abs(f1) + math.Abs(f2))
	}
	for j := 0; j < 4; j++ {
		jtwm1 := 2 * j
		x := hlgth * xgk[jtwm1]
		f1 := f(center - x)
		f2 := f(center + x)
		fv1[jtwm1] = f1
		fv2[jtwm1] = f2
		resk += wgk[jtwm1] * (f1 + f2)
		resabs += wgk[jtwm1] * (math.Abs(f1) + math.Abs(f2))
	}

	reskh := 0.5 * resk
	resasc := wgk[7] * math.Abs(fc-reskh)
	for j := 0; j < 7; j++ {
		resasc += wgk[j] * (math.Abs(fv1[j]-reskh) + math.Abs(fv2[j]-reskh))
	}

	value := resk * hlgth
	resabs *= math.Abs(hlgth)
	resasc *= math.Abs(hlgth)

	abserr := math.Abs((resk - resg) * hlgth)
	if resasc != 0 && abserr != 0 {
		abserr = resasc * math.Min(1, math.Pow(200*abserr/resasc, 1.5))
	}
	epmach := math.Nextafter(1, 2) - 1
	if resabs > math.SmallestNonzeroFloat64/(50*epmach) {
		abserr = math.Max(epmach*50*resabs, abserr)
	}
	return interval{a: a, b: b, value: value, abserr: abserr}
}

// Adaptive integrates f over [a, b] to the tolerances in opts.
//
// On success the Result holds the integral, its error estimate and the
// number of subintervals used. Exceeding opts.Limit subdivisions returns
// ErrSubdivisionLimit together with the best estimate obtained so far, so
// callers can report how far the refinement got.
func Adaptive(f func(float64) float64, a, b float64, opts Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilIntegrand
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a >= b {
		return Result{}, ErrBadInterval
	}
	if opts.Limit < 1 || (opts.AbsTol <= 0 && opts.RelTol <= 0) {
		return Result{}, ErrBadOptions
	}

	h := intervalHeap{gk15(f, a, b)}
	heap.Init(&h)
	value, abserr := h[0].value, h[0].abserr

	tol := func() float64 {
		return math.Max(opts.AbsTol, opts.RelTol*math.Abs(value))
	}

	subdivisions := 0
	for abserr > tol() {
		if subdivisions >= opts.Limit {
			return Result{Value: value, AbsErr: abserr, Subintervals: len(h)},
				ErrSubdivisionLimit
		}
		worst := heap.Pop(&h).(interval)
		mid := 0.5 * (worst.a + worst.b)
		left := gk15(f, worst.a, mid)
		right := gk15(f, mid, worst.b)
		heap.Push(&h, left)
		heap.Push(&h, right)

		value += left.value + right.value - worst.value
		abserr += left.abserr + right.abserr - worst.abserr
		subdivisions++
	}
	return Result{Value: value, AbsErr: abserr, Subintervals: len(h)}, nil
}
