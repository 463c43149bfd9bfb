// Package tabulated: sentinel errors and options.
package tabulated

import (
	"errors"
	"log/slog"
)

// Sentinel errors for table reading and queries.
var (
	// ErrEmptyTable indicates a table with no data rows.
	ErrEmptyTable = errors.New("tabulated: table has no data rows")
	// ErrMalformedRow indicates a row that does not parse as three numbers.
	ErrMalformedRow = errors.New("tabulated: malformed table row")
	// ErrBadCoordinate indicates a non-positive or non-finite coordinate,
	// which the logarithmic grid axis cannot hold.
	ErrBadCoordinate = errors.New("tabulated: coordinate must be positive and finite")
	// ErrDuplicatePoint indicates the same (Y, coordinate) pair appearing twice.
	ErrDuplicatePoint = errors.New("tabulated: duplicate grid point")
	// ErrNotRectangular indicates a table missing some (Y, coordinate)
	// combinations: the data must form a complete rectangular grid.
	ErrNotRectangular = errors.New("tabulated: table is not a complete rectangular grid")
	// ErrOutOfRange indicates a query outside the covered range of the
	// relevant table. Tabulated data is never extrapolated.
	ErrOutOfRange = errors.New("tabulated: query outside tabulated range")
)

// Options configures construction.
type Options struct {
	// Name labels the distribution; empty means "tabulated" (NewFromFiles
	// substitutes the file names).
	Name string
	// Logger, when non-nil, receives one record per loaded table.
	Logger *slog.Logger
}

// DefaultOptions returns the zero configuration; it is fully usable.
func DefaultOptions() Options { return Options{} }
