package dataprocessing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	require.NoError(t, f.DeleteSheet("Sheet1"))

	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &cells))
	}

	path := filepath.Join(t.TempDir(), "bulletin.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadSheet(t *testing.T) {
	path := writeWorkbook(t, "Tab 1", [][]any{
		{"Godina", "Mesec", "Ukupno"},
		{2020, "jan", 3.25},
		{"", "feb", "-"},
	})

	grid, err := LoadSheet(path, "Tab 1")
	require.NoError(t, err)

	require.Equal(t, 3, grid.NumRows())
	assert.Equal(t, "Godina", grid.Cell(0, 0))
	assert.Equal(t, "jan", grid.Cell(1, 1))
	assert.Equal(t, "2020", grid.Cell(1, 0))
	assert.Equal(t, "-", grid.Cell(2, 2))
}

func TestLoadSheetTrimsTabName(t *testing.T) {
	path := writeWorkbook(t, "Tab 1 ", [][]any{{"Godina", "Mesec"}})

	grid, err := LoadSheet(path, "Tab 1")
	require.NoError(t, err)
	assert.Equal(t, 1, grid.NumRows())
}

func TestLoadSheetMissing(t *testing.T) {
	path := writeWorkbook(t, "Tab 1", [][]any{{"x"}})

	_, err := LoadSheet(path, "Tab 9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no sheet "Tab 9"`)
}

func TestLoadSheetBadPath(t *testing.T) {
	_, err := LoadSheet(filepath.Join(t.TempDir(), "missing.xlsx"), "Tab 1")
	assert.Error(t, err)
}
