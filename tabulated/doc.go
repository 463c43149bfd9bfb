// Package tabulated serves a gluon distribution entirely from external
// data tables: one table for position space (the dipole S2) and an
// independent one for momentum space (the transform F). There is no kernel
// formula and no numerical transform at runtime — construction reads both
// tables once, validates them, builds one interpolation grid each, and the
// distribution is immutable from then on.
//
// 📄 Table format
//
//	Whitespace-delimited numeric rows, one grid point per row:
//
//	    Y  coordinate  value
//
//	where coordinate is r² (position table) or q² (momentum table), in any
//	row order. Blank lines and lines starting with '#' are ignored. The
//	rows must form a complete rectangle: every combination of the distinct
//	Y values with the distinct coordinate values must appear exactly once.
//	Coordinates must be positive (the grid axis is logarithmic); a table
//	with a single distinct Y value produces a 1-D grid whose queries ignore
//	the Y argument, exactly like a fixed-scale kernel.
//
//	The transform package's WriteGrid emits this format, so a numerically
//	built momentum grid can be dumped once and re-served from file.
//
// Errors are construction-time and fatal: a malformed row, a non-positive
// coordinate, a duplicate grid point, or an incomplete rectangle leaves no
// partially usable object. At query time, points outside either table's
// covered range return ErrOutOfRange — never an extrapolated number.
//
// S4 is the product-of-dipoles approximation S2(s²)·S2(t²) built from the
// position table.
package tabulated
