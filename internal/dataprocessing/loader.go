package dataprocessing

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadSheet opens a workbook and returns the named sheet as a Grid. The
// sheet name is matched ignoring surrounding whitespace because the
// bulletin's tab names carry stray trailing blanks that vary between
// releases.
func LoadSheet(path, sheet string) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	name, err := matchSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	return Grid(rows), nil
}

func matchSheet(f *excelize.File, sheet string) (string, error) {
	want := strings.TrimSpace(sheet)
	for _, name := range f.GetSheetList() {
		if strings.TrimSpace(name) == want {
			return name, nil
		}
	}
	return "", fmt.Errorf("workbook has no sheet %q (available: %s)",
		sheet, strings.Join(f.GetSheetList(), ", "))
}
