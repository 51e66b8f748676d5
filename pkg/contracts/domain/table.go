package domain

// FlatTable is a denormalized, presentation-ready result set. Columns from
// joined shared-rate tables are prefixed with the relation name, e.g.
// "local_rates.total_local". Cell values are *float64 for rate and
// aggregate columns (nil for NULL) and int for year/month.
type FlatTable struct {
	Columns []string
	Rows    [][]any
}

// Empty reports whether the table holds no rows.
func (t FlatTable) Empty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex returns the position of a named column, or -1 when the
// column is not present.
func (t FlatTable) ColumnIndex(name string) int {
	for i, column := range t.Columns {
		if column == name {
			return i
		}
	}
	return -1
}
