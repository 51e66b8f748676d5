package dataprocessing

import "nbsrates/internal/errors"

// Region is the half-open row span [Start, End) of a sheet that holds
// genuine monthly data, with the title rows above and footnote rows below
// already excluded.
type Region struct {
	Start int
	End   int
}

// Len returns the number of data rows in the region.
func (r Region) Len() int {
	return r.End - r.Start
}

// DetectRegion finds the contiguous data-row span of a grid by probing the
// month column: forward from the top until a month token resolves, then
// backward from the bottom. Both scans are bounded by the row count; a
// grid in which no row resolves yields errors.ErrNoDataRegion instead of
// an out-of-range walk.
func DetectRegion(grid Grid, monthCol int) (Region, error) {
	rows := grid.NumRows()

	start := 0
	for start < rows {
		if _, ok := ResolveMonth(grid.Cell(start, monthCol)); ok {
			break
		}
		start++
	}
	if start == rows {
		return Region{}, errors.ErrNoDataRegion
	}

	last := rows - 1
	for last >= start {
		if _, ok := ResolveMonth(grid.Cell(last, monthCol)); ok {
			break
		}
		last--
	}

	return Region{Start: start, End: last + 1}, nil
}
