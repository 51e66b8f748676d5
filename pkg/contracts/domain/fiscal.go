package domain

import "fmt"

// MonthRange is an inclusive month span within one year.
type MonthRange struct {
	First int
	Last  int
}

// Contains reports whether month falls inside the range.
func (r MonthRange) Contains(month int) bool {
	return month >= r.First && month <= r.Last
}

// FiscalRange selects a quarter or the whole year for the query layer.
type FiscalRange string

const (
	FiscalQ1   FiscalRange = "Q1"
	FiscalQ2   FiscalRange = "Q2"
	FiscalQ3   FiscalRange = "Q3"
	FiscalQ4   FiscalRange = "Q4"
	FiscalYear FiscalRange = "YEAR"
)

var fiscalMonths = map[FiscalRange]MonthRange{
	FiscalQ1:   {First: 1, Last: 3},
	FiscalQ2:   {First: 4, Last: 6},
	FiscalQ3:   {First: 7, Last: 9},
	FiscalQ4:   {First: 10, Last: 12},
	FiscalYear: {First: 1, Last: 12},
}

var fiscalLabels = map[FiscalRange]string{
	FiscalQ1:   "Prvi kvartal",
	FiscalQ2:   "Drugi kvartal",
	FiscalQ3:   "Treći kvartal",
	FiscalQ4:   "Četvrti kvartal",
	FiscalYear: "Godišnji nivo",
}

// Months returns the inclusive month range the fiscal selection covers.
func (f FiscalRange) Months() MonthRange {
	return fiscalMonths[f]
}

// Label returns the display label for the fiscal selection.
func (f FiscalRange) Label() string {
	if label, ok := fiscalLabels[f]; ok {
		return label
	}
	return string(f)
}

// ParseFiscalRange converts a configuration or CLI string into a
// FiscalRange.
func ParseFiscalRange(s string) (FiscalRange, error) {
	f := FiscalRange(s)
	if _, ok := fiscalMonths[f]; !ok {
		return "", fmt.Errorf("unknown fiscal range %q", s)
	}
	return f, nil
}
