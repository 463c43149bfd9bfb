package tabulated

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// table is one parsed data set: distinct sorted axes and a dense row-major
// value array (fast axis = coordinate, slow axis = Y).
type table struct {
	ys     []float64
	coords []float64
	vals   []float64
}

// point keys the rectangularity check. Coordinates parsed from identical
// text yield identical float64s, so exact equality is the right notion of
// "same grid line" here.
type point struct{ y, coord float64 }

// readTable parses one whitespace-delimited "Y coordinate value" table and
// validates that it forms a complete rectangle.
func readTable(r io.Reader, label string) (*table, error) {
	seen := make(map[point]float64)
	yset := make(map[float64]struct{})
	cset := make(map[float64]struct{})

	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("tabulated: %s table line %d: %d columns: %w",
				label, lineno, len(fields), ErrMalformedRow)
		}
		nums := make([]float64, 3)
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("tabulated: %s table line %d: %q: %w",
					label, lineno, f, ErrMalformedRow)
			}
			nums[i] = v
		}
		y, coord, val := nums[0], nums[1], nums[2]
		if !(coord > 0) || math.IsInf(coord, 1) {
			return nil, fmt.Errorf("tabulated: %s table line %d: coordinate %g: %w",
				label, lineno, coord, ErrBadCoordinate)
		}
		p := point{y: y, coord: coord}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("tabulated: %s table line %d: (Y=%g, coord=%g): %w",
				label, lineno, y, coord, ErrDuplicatePoint)
		}
		seen[p] = val
		yset[y] = struct{}{}
		cset[coord] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tabulated: reading %s table: %w", label, err)
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("tabulated: %s table: %w", label, ErrEmptyTable)
	}

	t := &table{
		ys:     sortedKeys(yset),
		coords: sortedKeys(cset),
	}
	if len(seen) != len(t.ys)*len(t.coords) {
		return nil, fmt.Errorf("tabulated: %s table: %d rows for a %dx%d grid: %w",
			label, len(seen), len(t.ys), len(t.coords), ErrNotRectangular)
	}
	// Unique rows plus a matching count guarantee every combination is
	// present, so the fill below cannot miss.
	t.vals = make([]float64, len(t.ys)*len(t.coords))
	for i, y := range t.ys {
		for j, c := range t.coords {
			t.vals[i*len(t.coords)+j] = seen[point{y: y, coord: c}]
		}
	}
	return t, nil
}

// sortedKeys flattens a float set into a sorted slice.
func sortedKeys(set map[float64]struct{}) []float64 {
	out := make([]float64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}
