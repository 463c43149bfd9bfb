package gluondist

import (
	"fmt"
	"io"
	"math"
)

// Tracer forwards every query to a wrapped Distribution and appends one
// record per call to a sink, without altering the numeric result.
//
// Record format, one line per call, tab-separated, fixed column order:
//
//	S2 <tab> r2 <tab> y          <tab> value
//	S4 <tab> r2 <tab> s2 <tab> t2 <tab> y <tab> value
//	F  <tab> q2 <tab> y          <tab> value
//
// Ordering is call order: the wrapped call runs first, then the record is
// written, then the result is returned. A failed call is still recorded,
// with NaN in the value column and the error text appended as a final
// column, before the error is propagated.
//
// Sink write failures are ignored: the trace is a diagnostic side channel
// and must never turn a correct physics result into an error. Name calls
// are forwarded without being recorded.
type Tracer struct {
	inner Distribution
	sink  io.Writer
}

// NewTracer wraps d so that every S2/S4/F call is mirrored to sink.
// Returns ErrNilDistribution or ErrNilSink on missing arguments.
func NewTracer(d Distribution, sink io.Writer) (*Tracer, error) {
	if d == nil {
		return nil, ErrNilDistribution
	}
	if sink == nil {
		return nil, ErrNilSink
	}
	return &Tracer{inner: d, sink: sink}, nil
}

// record appends one call record; see the type comment for the format.
func (t *Tracer) record(kind string, args []float64, value float64, err error) {
	for _, a := range args {
		kind += fmt.Sprintf("\t%g", a)
	}
	if err != nil {
		fmt.Fprintf(t.sink, "%s\t%g\t%v\n", kind, math.NaN(), err)
		return
	}
	fmt.Fprintf(t.sink, "%s\t%g\n", kind, value)
}

// S2 forwards to the wrapped distribution and records the call.
func (t *Tracer) S2(r2, y float64) (float64, error) {
	v, err := t.inner.S2(r2, y)
	t.record("S2", []float64{r2, y}, v, err)
	return v, err
}

// S4 forwards to the wrapped distribution and records the call.
func (t *Tracer) S4(r2, s2, t2, y float64) (float64, error) {
	v, err := t.inner.S4(r2, s2, t2, y)
	t.record("S4", []float64{r2, s2, t2, y}, v, err)
	return v, err
}

// F forwards to the wrapped distribution and records the call.
func (t *Tracer) F(q2, y float64) (float64, error) {
	v, err := t.inner.F(q2, y)
	t.record("F", []float64{q2, y}, v, err)
	return v, err
}

// Name forwards to the wrapped distribution; it is not recorded.
func (t *Tracer) Name() string { return t.inner.Name() }
