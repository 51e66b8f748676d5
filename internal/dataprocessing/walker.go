package dataprocessing

import (
	"fmt"

	"nbsrates/internal/errors"
)

// DatedRow is one data row of a purpose block with its resolved period.
type DatedRow struct {
	Row   int // absolute row index in the grid
	Year  int
	Month int
}

// RowWalker iterates the rows of a detected region in order, resolving
// (year, month) for each from the fixed date columns. The year column is
// only populated on the first row of each year; the walker carries the
// last resolved year forward across the rows that omit it. A walker is a
// single finite pass; make a new one to walk again.
type RowWalker struct {
	grid     Grid
	region   Region
	yearCol  int
	monthCol int

	next     int
	year     int
	haveYear bool
}

// NewRowWalker returns a walker over the region's rows. yearCol and
// monthCol are absolute grid columns (0 and 1 on every bulletin sheet).
func NewRowWalker(grid Grid, region Region, yearCol, monthCol int) *RowWalker {
	return &RowWalker{
		grid:     grid,
		region:   region,
		yearCol:  yearCol,
		monthCol: monthCol,
		next:     region.Start,
	}
}

// Next yields the next data row. The second return is false once the
// region is exhausted. A non-nil error is a row-level data problem
// (unresolvable month, missing year with nothing to carry); the walker
// stays usable and the caller decides whether to skip the row.
func (w *RowWalker) Next() (DatedRow, bool, error) {
	if w.next >= w.region.End {
		return DatedRow{}, false, nil
	}
	row := w.next
	w.next++

	if year, ok := CellYear(w.grid.Cell(row, w.yearCol)); ok {
		w.year = year
		w.haveYear = true
	} else if !w.haveYear {
		return DatedRow{Row: row}, true, errors.RowError{
			Row: row,
			Err: fmt.Errorf("year cell is blank and no earlier row supplied one"),
		}
	}

	token := w.grid.Cell(row, w.monthCol)
	month, ok := ResolveMonth(token)
	if !ok {
		return DatedRow{Row: row}, true, errors.RowError{
			Row: row,
			Err: fmt.Errorf("unresolvable month token %q", token),
		}
	}

	return DatedRow{Row: row, Year: w.year, Month: month}, true, nil
}
