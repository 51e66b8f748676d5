package dataprocessing

import (
	"math"
	"strconv"
	"strings"
)

// Grid is an immutable 2-D view of one spreadsheet. Rows may be ragged;
// Cell treats anything outside the stored data as blank.
type Grid [][]string

// NumRows returns the number of rows in the grid.
func (g Grid) NumRows() int {
	return len(g)
}

// Cell returns the raw cell text at (row, col), or "" when the position is
// outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	if col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// Width returns the widest row of the grid.
func (g Grid) Width() int {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// naPlaceholders are the cell spellings the bulletin uses for "no value".
var naPlaceholders = map[string]bool{
	"": true, "-": true, "- ": true, " -": true, "--": true, "n/a": true,
}

// CellFloat parses a numeric cell into a nullable float. Blank cells and
// the bulletin's dash placeholders yield nil, as does anything that fails
// to parse or parses to NaN. Thousands separators are tolerated.
func CellFloat(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if naPlaceholders[strings.ToLower(trimmed)] {
		return nil
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64)
	if err != nil || math.IsNaN(value) {
		return nil
	}
	return &value
}

// CellYear parses a year cell. The bulletin stores years numerically, so
// excel readers may render them as "2020" or "2020.0".
func CellYear(raw string) (int, bool) {
	value := CellFloat(raw)
	if value == nil {
		return 0, false
	}
	year := int(*value)
	if float64(year) != *value || year < 1900 || year > 2200 {
		return 0, false
	}
	return year, true
}
