package gluondist_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fanghuoqianglfl/SOLO/gluondist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTracer_Validation covers the decorator's constructor sentinels.
func TestNewTracer_Validation(t *testing.T) {
	g, _ := newGBW(t)

	_, err := gluondist.NewTracer(nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, gluondist.ErrNilDistribution, "nil wrapped distribution")

	_, err = gluondist.NewTracer(g, nil)
	assert.ErrorIs(t, err, gluondist.ErrNilSink, "nil sink")
}

// TestTracer_TransparentForwarding checks that S2, S4 and F through the
// decorator return exactly the wrapped model's values and that exactly
// three records land on the sink, in call order.
func TestTracer_TransparentForwarding(t *testing.T) {
	g, _ := newGBW(t)
	var sink bytes.Buffer
	tr, err := gluondist.NewTracer(g, &sink)
	require.NoError(t, err)

	y := 1.2
	v1, err := tr.S2(0.5, y)
	require.NoError(t, err)
	v2, err := tr.S4(0.5, 0.3, 0.8, y)
	require.NoError(t, err)
	v3, err := tr.F(2.0, y)
	require.NoError(t, err)

	d1, _ := g.S2(0.5, y)
	d2, _ := g.S4(0.5, 0.3, 0.8, y)
	d3, _ := g.F(2.0, y)
	assert.Equal(t, d1, v1, "S2 must be unchanged by tracing")
	assert.Equal(t, d2, v2, "S4 must be unchanged by tracing")
	assert.Equal(t, d3, v3, "F must be unchanged by tracing")

	lines := strings.Split(strings.TrimRight(sink.String(), "\n"), "\n")
	require.Len(t, lines, 3, "exactly one record per call")
	assert.True(t, strings.HasPrefix(lines[0], "S2\t"), "first record kind")
	assert.True(t, strings.HasPrefix(lines[1], "S4\t"), "second record kind")
	assert.True(t, strings.HasPrefix(lines[2], "F\t"), "third record kind")

	// S4 record carries all four arguments plus the value.
	assert.Len(t, strings.Split(lines[1], "\t"), 6, "S4 record column count")

	assert.Equal(t, "GBW", tr.Name(), "Name forwards without recording")
	assert.Len(t, strings.Split(strings.TrimRight(sink.String(), "\n"), "\n"), 3,
		"Name must not append a record")
}

// failingDist returns a fixed error from every query.
type failingDist struct{ err error }

func (f *failingDist) S2(_, _ float64) (float64, error)       { return 0, f.err }
func (f *failingDist) S4(_, _, _, _ float64) (float64, error) { return 0, f.err }
func (f *failingDist) F(_, _ float64) (float64, error)        { return 0, f.err }
func (f *failingDist) Name() string                           { return "failing" }

// TestTracer_RecordsFailedCalls verifies that a failing wrapped call is
// recorded and the failure still propagates unchanged.
func TestTracer_RecordsFailedCalls(t *testing.T) {
	boom := errors.New("query out of range")
	var sink bytes.Buffer
	tr, err := gluondist.NewTracer(&failingDist{err: boom}, &sink)
	require.NoError(t, err)

	_, err = tr.F(1.0, 0.0)
	assert.ErrorIs(t, err, boom, "the wrapped error must propagate")

	out := sink.String()
	require.NotEmpty(t, out, "the attempt must still be recorded")
	assert.Contains(t, out, "F\t", "record names the call kind")
	assert.Contains(t, out, "query out of range", "record carries the error text")
	assert.Contains(t, out, "NaN", "value column is NaN on failure")
}
