// Package interpolate: sentinel errors and the shared lookup accelerator.
package interpolate

import (
	"errors"
	"sort"
)

// Sentinel errors for grid construction and evaluation.
var (
	// ErrTooFewPoints indicates an axis with fewer than two abscissae.
	ErrTooFewPoints = errors.New("interpolate: axis needs at least two points")
	// ErrNotIncreasing indicates an axis that is not strictly increasing.
	ErrNotIncreasing = errors.New("interpolate: axis must be strictly increasing")
	// ErrLengthMismatch indicates value storage inconsistent with the axis lengths.
	ErrLengthMismatch = errors.New("interpolate: value count does not match grid dimensions")
	// ErrOutOfRange indicates an evaluation point outside the covered range.
	ErrOutOfRange = errors.New("interpolate: point outside interpolation range")
)

// accel caches the interval index of the previous lookup on one axis.
// Queries that land in the same or a neighboring interval avoid the
// binary search entirely.
type accel struct {
	last int
}

// lookup returns i such that xs[i] <= x <= xs[i+1].
// Caller guarantees xs[0] <= x <= xs[len(xs)-1].
func (a *accel) lookup(xs []float64, x float64) int {
	n := len(xs)
	i := a.last
	if i < 0 || i > n-2 {
		i = 0
	}
	switch {
	case x >= xs[i] && x <= xs[i+1]:
		// cache hit
	case i+2 <= n-1 && x > xs[i+1] && x <= xs[i+2]:
		i++
	case i-1 >= 0 && x < xs[i] && x >= xs[i-1]:
		i--
	default:
		i = sort.SearchFloat64s(xs, x) - 1
		if i < 0 {
			i = 0
		}
		if i > n-2 {
			i = n - 2
		}
	}
	a.last = i
	return i
}

// checkAxis validates one axis of a grid.
func checkAxis(xs []float64) error {
	if len(xs) < 2 {
		return ErrTooFewPoints
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return ErrNotIncreasing
		}
	}
	return nil
}
