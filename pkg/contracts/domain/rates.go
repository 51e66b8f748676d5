package domain

// LocalRates is one row of dinar-denominated weighted interest rates.
// Every field is either a parsed value or nil (stored NULL); the loader
// never produces NaN.
type LocalRates struct {
	NonIndexed    *float64 `db:"non_indexed"`
	ReferenceRate *float64 `db:"reference_rate"`
	Belibor1M     *float64 `db:"belibor_1m"`
	Belibor3M     *float64 `db:"belibor_3m"`
	Belibor6M     *float64 `db:"belibor_6m"`
	OtherLocal    *float64 `db:"other_local"`
	TotalLocal    *float64 `db:"total_local"`
}

// ForeignRates is one row of foreign-currency weighted interest rates.
type ForeignRates struct {
	EUR          *float64 `db:"eur"`
	CHF          *float64 `db:"chf"`
	USD          *float64 `db:"usd"`
	OtherForeign *float64 `db:"other_foreign"`
	TotalForeign *float64 `db:"total_foreign"`
}

// EnterpriseRates is one row of deposit rates broken down by maturity,
// used by the enterprise-size category.
type EnterpriseRates struct {
	UpToOne    *float64 `db:"up_to_one"`
	OneUpToTwo *float64 `db:"one_up_to_two"`
	OverTwo    *float64 `db:"over_two"`
}

// StandardFact is a fact row for the 13-column categories (household
// loans/deposits, non-financial loans/deposits). Nil foreign keys mean
// the corresponding rate block was absent for the purpose.
type StandardFact struct {
	Purpose        Purpose
	Year           int
	Month          int
	LocalRatesID   *int64
	ForeignRatesID *int64
	Total          *float64
}

// BySizeFact is a fact row for the enterprise-size deposit category.
type BySizeFact struct {
	Purpose                  Purpose
	Year                     int
	Month                    int
	LocalEnterpriseRatesID   *int64
	ForeignEnterpriseRatesID *int64
	LocalTotal               *float64
	ForeignTotal             *float64
}

// CurrencyFact is a fact row for the per-currency totals category. It has
// no shared-rate references, only aggregates.
type CurrencyFact struct {
	Purpose           Purpose
	Year              int
	Month             int
	HouseholdTotal    *float64
	NonFinancialTotal *float64
	Total             *float64
}
