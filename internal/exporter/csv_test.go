package exporter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nbsrates/pkg/contracts/domain"
)

func ptr(f float64) *float64 { return &f }

func sampleTable() domain.FlatTable {
	return domain.FlatTable{
		Columns: []string{"year", "month", "local_rates.non_indexed", "total"},
		Rows: [][]any{
			{2020, 1, ptr(3.1), ptr(4.25)},
			{2020, 2, (*float64)(nil), ptr(4.3)},
		},
	}
}

func TestCSVWriterWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVWriter{}.Write(&buf, sampleTable()))

	want := "year,month,local_rates.non_indexed,total\n" +
		"2020,1,3.10,4.25\n" +
		"2020,2,,4.30\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVWriterBOMPrefix(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVWriter{BOMPrefix: true}.Write(&buf, sampleTable()))

	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, buf.Bytes()[:3])
}

func TestCSVWriterEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	table := domain.FlatTable{Columns: []string{"year", "month", "total"}}

	require.NoError(t, CSVWriter{}.Write(&buf, table))
	assert.Equal(t, "year,month,total\n", buf.String())
}

func TestCSVWriterWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "household_loans.csv")

	require.NoError(t, CSVWriter{}.WriteFile(path, sampleTable()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2020,1,3.10,4.25")
}
