// Package exporter renders flat reconstruction tables for consumption
// outside the store, currently as CSV.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"nbsrates/pkg/contracts/domain"
)

// CSVWriter writes reconstruction tables as CSV.
type CSVWriter struct {
	// BOMPrefix prepends a UTF-8 BOM so Excel opens the file with the
	// right encoding.
	BOMPrefix bool
}

// Write renders the table to out: the column header first, then one
// record per row. NULL cells become empty fields.
func (w CSVWriter) Write(out io.Writer, table domain.FlatTable) error {
	if w.BOMPrefix {
		if _, err := out.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(out)
	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range table.Rows {
		record := make([]string, len(row))
		for j, value := range row {
			record[j] = formatCell(value)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFile renders the table into a file, creating parent directories as
// needed and truncating any previous export.
func (w CSVWriter) WriteFile(path string, table domain.FlatTable) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	if err := w.Write(file, table); err != nil {
		return err
	}
	return file.Close()
}

// formatCell renders one table cell. Rates keep the bulletin's two
// decimal places; NULL pointers render as the empty field.
func formatCell(value any) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case *float64:
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', 2, 64)
	default:
		return fmt.Sprint(v)
	}
}
