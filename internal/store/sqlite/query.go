package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"nbsrates/pkg/contracts/domain"
)

// joinLeg describes one shared-rate relation a fact table references. The
// relation name prefixes the flattened output columns.
type joinLeg struct {
	relation string
	table    string
	fkColumn string
	columns  []string
}

// categorySpec is the per-category schema knowledge that drives the
// reconstruction queries: the fact table, its aggregate columns and its
// join legs.
type categorySpec struct {
	table       string
	factColumns []string
	joins       []joinLeg
}

var localLeg = joinLeg{
	relation: "local_rates",
	table:    "local_interest_rates",
	fkColumn: "local_rates_id",
	columns: []string{
		"non_indexed", "reference_rate", "belibor_1m", "belibor_3m",
		"belibor_6m", "other_local", "total_local",
	},
}

var foreignLeg = joinLeg{
	relation: "foreign_rates",
	table:    "foreign_interest_rates",
	fkColumn: "foreign_rates_id",
	columns:  []string{"eur", "chf", "usd", "other_foreign", "total_foreign"},
}

var enterpriseColumns = []string{"up_to_one", "one_up_to_two", "over_two"}

var categorySpecs = map[domain.Category]categorySpec{
	domain.CategoryHouseholdLoans: {
		table:       "household_loans",
		factColumns: []string{"total"},
		joins:       []joinLeg{localLeg, foreignLeg},
	},
	domain.CategoryHouseholdTermDeposits: {
		table:       "household_term_deposits",
		factColumns: []string{"total"},
		joins:       []joinLeg{localLeg, foreignLeg},
	},
	domain.CategoryNonFinancialLoans: {
		table:       "non_financial_loans",
		factColumns: []string{"total"},
		joins:       []joinLeg{localLeg, foreignLeg},
	},
	domain.CategoryNonFinancialTermDeposits: {
		table:       "non_financial_term_deposits",
		factColumns: []string{"total"},
		joins:       []joinLeg{localLeg, foreignLeg},
	},
	domain.CategoryNonFinancialTermDepositsBySize: {
		table:       "non_financial_term_deposits_by_size",
		factColumns: []string{"local_total", "foreign_total"},
		joins: []joinLeg{
			{
				relation: "local_enterprise_rates",
				table:    "enterprise_interest_rates",
				fkColumn: "local_enterprise_rates_id",
				columns:  enterpriseColumns,
			},
			{
				relation: "foreign_enterprise_rates",
				table:    "enterprise_interest_rates",
				fkColumn: "foreign_enterprise_rates_id",
				columns:  enterpriseColumns,
			},
		},
	},
	domain.CategoryTotalLoansByCurrency: {
		table:       "total_loans_by_currency",
		factColumns: []string{"household_total", "non_financial_total", "total"},
	},
}

// GetData reconstructs the flat presentation table for one (category,
// purpose, year, month range) selection: fact rows inner-joined to their
// shared-rate rows, ordered by month. Fact rows whose rate foreign key is
// NULL drop out of the join, and a selection that matches nothing is an
// empty table, not an error.
func (s *Store) GetData(ctx context.Context, category domain.Category, purpose domain.Purpose, year int, months domain.MonthRange) (domain.FlatTable, error) {
	spec, ok := categorySpecs[category]
	if !ok || !domain.ValidPurpose(category, purpose) {
		return domain.FlatTable{}, nil
	}

	columns := []string{"year", "month"}
	selects := []string{"f.year", "f.month"}
	joins := make([]string, 0, len(spec.joins))
	for i, leg := range spec.joins {
		alias := fmt.Sprintf("r%d", i)
		for _, column := range leg.columns {
			columns = append(columns, leg.relation+"."+column)
			selects = append(selects, alias+"."+column)
		}
		joins = append(joins, fmt.Sprintf("JOIN %s %s ON f.%s = %s.id", leg.table, alias, leg.fkColumn, alias))
	}
	for _, column := range spec.factColumns {
		columns = append(columns, column)
		selects = append(selects, "f."+column)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s f %s
		WHERE f.purpose = ? AND f.year = ? AND f.month BETWEEN ? AND ?
		ORDER BY f.month`,
		strings.Join(selects, ", "), spec.table, strings.Join(joins, " "))

	rows, err := s.db.QueryContext(ctx, query, purpose, year, months.First, months.Last)
	if err != nil {
		return domain.FlatTable{}, fmt.Errorf("query %s: %w", spec.table, err)
	}
	defer rows.Close()

	table := domain.FlatTable{Columns: columns}
	for rows.Next() {
		var (
			rowYear  int
			rowMonth int
		)
		values := make([]sql.NullFloat64, len(columns)-2)
		dest := make([]any, 0, len(columns))
		dest = append(dest, &rowYear, &rowMonth)
		for i := range values {
			dest = append(dest, &values[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return domain.FlatTable{}, fmt.Errorf("scan %s row: %w", spec.table, err)
		}

		row := make([]any, 0, len(columns))
		row = append(row, rowYear, rowMonth)
		for _, value := range values {
			row = append(row, nullableFloat(value))
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return domain.FlatTable{}, err
	}
	return table, nil
}

// GetYears returns the sorted distinct years present in a category's fact
// table. Unknown categories yield an empty list.
func (s *Store) GetYears(ctx context.Context, category domain.Category) ([]int, error) {
	spec, ok := categorySpecs[category]
	if !ok {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT DISTINCT year FROM %s ORDER BY year`, spec.table))
	if err != nil {
		return nil, fmt.Errorf("query %s years: %w", spec.table, err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	return years, rows.Err()
}

func nullableFloat(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	f := value.Float64
	return &f
}
