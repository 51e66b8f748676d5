package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nbsrates/internal/errors"
)

func row(year, month string, values ...string) []string {
	return append([]string{year, month}, values...)
}

func TestDetectRegion(t *testing.T) {
	grid := Grid{
		{"Kamatne stope na kredite odobrene stanovništvu"},
		{},
		{"Godina", "Mesec", "Ukupno"},
		row("2020", "jan", "3.1"),
		row("", "feb", "3.2"),
		row("", "mar", "3.3"),
		{"Izvor: NBS"},
		{"1) Preliminarni podaci"},
	}

	region, err := DetectRegion(grid, 1)
	require.NoError(t, err)
	assert.Equal(t, Region{Start: 3, End: 6}, region)
	assert.Equal(t, 3, region.Len())
}

func TestDetectRegionWholeGrid(t *testing.T) {
	grid := Grid{
		row("2020", "jan"),
		row("", "feb"),
	}

	region, err := DetectRegion(grid, 1)
	require.NoError(t, err)
	assert.Equal(t, Region{Start: 0, End: 2}, region)
}

func TestDetectRegionSingleDataRow(t *testing.T) {
	grid := Grid{
		{"title"},
		row("2020", "dec"),
		{"footer"},
	}

	region, err := DetectRegion(grid, 1)
	require.NoError(t, err)
	assert.Equal(t, Region{Start: 1, End: 2}, region)
}

func TestDetectRegionNoData(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
	}{
		{name: "empty grid", grid: Grid{}},
		{name: "headers only", grid: Grid{{"Godina", "Mesec"}, {"title"}, {"footnote"}}},
		{name: "months in wrong column", grid: Grid{{"jan", "2020"}, {"feb", "2020"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DetectRegion(tt.grid, 1)
			assert.ErrorIs(t, err, errors.ErrNoDataRegion)
		})
	}
}
