package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, category := range Categories {
		parsed, err := ParseCategory(string(category))
		require.NoError(t, err)
		assert.Equal(t, category, parsed)
	}

	_, err := ParseCategory("mortgage_rates")
	assert.Error(t, err)
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Kamatne stope na kredite odobrene stanovništvu",
		CategoryHouseholdLoans.Label())
	assert.Equal(t, "bogus", Category("bogus").Label())
}

func TestValidPurpose(t *testing.T) {
	assert.True(t, ValidPurpose(CategoryHouseholdLoans, PurposeHousing))
	assert.True(t, ValidPurpose(CategoryNonFinancialTermDepositsBySize, PurposeTotal))
	assert.False(t, ValidPurpose(CategoryHouseholdLoans, PurposeMicro))
	assert.False(t, ValidPurpose(Category("bogus"), PurposeHousing))
}

func TestPurposesForEveryCategory(t *testing.T) {
	for _, category := range Categories {
		purposes := PurposesFor(category)
		require.NotEmpty(t, purposes, category)
		for _, purpose := range purposes {
			assert.True(t, ValidPurpose(category, purpose))
		}
	}
}

func TestFiscalRangeMonths(t *testing.T) {
	tests := []struct {
		fiscal FiscalRange
		want   MonthRange
	}{
		{FiscalQ1, MonthRange{First: 1, Last: 3}},
		{FiscalQ2, MonthRange{First: 4, Last: 6}},
		{FiscalQ3, MonthRange{First: 7, Last: 9}},
		{FiscalQ4, MonthRange{First: 10, Last: 12}},
		{FiscalYear, MonthRange{First: 1, Last: 12}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.fiscal.Months())
	}
}

func TestParseFiscalRange(t *testing.T) {
	fiscal, err := ParseFiscalRange("Q2")
	require.NoError(t, err)
	assert.Equal(t, FiscalQ2, fiscal)

	_, err = ParseFiscalRange("H1")
	assert.Error(t, err)
}

func TestMonthRangeContains(t *testing.T) {
	r := MonthRange{First: 4, Last: 6}
	assert.False(t, r.Contains(3))
	assert.True(t, r.Contains(4))
	assert.True(t, r.Contains(6))
	assert.False(t, r.Contains(7))
}

func TestFlatTable(t *testing.T) {
	var empty FlatTable
	assert.True(t, empty.Empty())

	table := FlatTable{
		Columns: []string{"year", "month", "total"},
		Rows:    [][]any{{2020, 1, nil}},
	}
	assert.False(t, table.Empty())
	assert.Equal(t, 2, table.ColumnIndex("total"))
	assert.Equal(t, -1, table.ColumnIndex("bogus"))
}
