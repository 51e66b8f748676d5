package ingest

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"nbsrates/pkg/contracts/domain"
)

// span is a half-open column range relative to its block start.
type span struct {
	From int `validate:"min=0"`
	To   int `validate:"min=1"`
}

func (s span) width() int {
	return s.To - s.From
}

// standardBlock maps one purpose of a 13-column category onto the sheet.
// Offsets inside the block are relative to Start; the bulletin's column
// order is a fixed contract per sub-table, not something derivable from
// headers.
type standardBlock struct {
	Purpose domain.Purpose `validate:"required"`
	Start   int            `validate:"min=2"`
	Width   int            `validate:"min=1"`
	Local   *span          // dinar rates, nil for foreign-only blocks
	Foreign *span          // foreign-currency rates
	Total   int            // relative offset of the aggregate, -1 when absent
}

// bySizeBlock maps one enterprise size onto its split local/foreign
// column ranges. All columns here are absolute. Rate spans are nil for
// the TOTAL purpose, which stores aggregates only.
type bySizeBlock struct {
	Purpose      domain.Purpose `validate:"required"`
	LocalRates   *span
	LocalTotal   int `validate:"min=2"`
	ForeignRates *span
	ForeignTotal int `validate:"min=2"`
}

// currencyBlock maps one currency onto its three-column aggregate block.
type currencyBlock struct {
	Purpose domain.Purpose `validate:"required"`
	Start   int            `validate:"min=2"`
}

// sheetLayout is the full column map for one category's source sheet.
// Exactly one of the block slices is populated, matching the category's
// fact-table shape.
type sheetLayout struct {
	YearCol  int `validate:"min=0"`
	MonthCol int `validate:"min=0"`
	MinWidth int `validate:"min=3"`

	Standard []standardBlock `validate:"dive"`
	BySize   []bySizeBlock   `validate:"dive"`
	Currency []currencyBlock `validate:"dive"`
}

const (
	localRatesWidth   = 7
	foreignRatesWidth = 5
	sizeRatesWidth    = 3
	currencyWidth     = 3
)

// standard13 is the recurring full block shape: seven local-rate columns,
// five foreign-rate columns, then the aggregate.
func standard13(purpose domain.Purpose, start int) standardBlock {
	return standardBlock{
		Purpose: purpose,
		Start:   start,
		Width:   13,
		Local:   &span{From: 0, To: 7},
		Foreign: &span{From: 7, To: 12},
		Total:   12,
	}
}

// totalBlock is the leading TOTAL block, which the bulletin prints one
// column narrower: it has no aggregate of its own.
func totalBlock(start int) standardBlock {
	return standardBlock{
		Purpose: domain.PurposeTotal,
		Start:   start,
		Width:   12,
		Local:   &span{From: 0, To: 7},
		Foreign: &span{From: 7, To: 12},
		Total:   -1,
	}
}

// foreignOnly is the import-credit block shape: five foreign-rate
// columns, no dinar rates, no aggregate.
func foreignOnly(purpose domain.Purpose, start int) standardBlock {
	return standardBlock{
		Purpose: purpose,
		Start:   start,
		Width:   5,
		Foreign: &span{From: 0, To: 5},
		Total:   -1,
	}
}

func sizeBlock(purpose domain.Purpose, localStart, foreignStart int) bySizeBlock {
	return bySizeBlock{
		Purpose:      purpose,
		LocalRates:   &span{From: localStart, To: localStart + 3},
		LocalTotal:   localStart + 3,
		ForeignRates: &span{From: foreignStart, To: foreignStart + 3},
		ForeignTotal: foreignStart + 3,
	}
}

// sheetLayouts is the schema knowledge of every source sheet, keyed by
// category. Purposes are laid out in sheet order; dates always sit in
// columns 0-1.
var sheetLayouts = map[domain.Category]sheetLayout{
	domain.CategoryHouseholdLoans: {
		YearCol: 0, MonthCol: 1, MinWidth: 66,
		Standard: []standardBlock{
			totalBlock(2),
			standard13(domain.PurposeHousing, 14),
			standard13(domain.PurposeConsumer, 27),
			standard13(domain.PurposeCash, 40),
			standard13(domain.PurposeOther, 53),
		},
	},
	domain.CategoryHouseholdTermDeposits: {
		YearCol: 0, MonthCol: 1, MinWidth: 53,
		Standard: []standardBlock{
			totalBlock(2),
			standard13(domain.PurposeUpToOne, 14),
			standard13(domain.PurposeOneUpToTwo, 27),
			standard13(domain.PurposeOverTwo, 40),
		},
	},
	domain.CategoryNonFinancialLoans: {
		YearCol: 0, MonthCol: 1, MinWidth: 63,
		Standard: []standardBlock{
			totalBlock(2),
			standard13(domain.PurposeCurrentAssets, 14),
			standard13(domain.PurposeInvestment, 27),
			standard13(domain.PurposeOtherLocal, 40),
			foreignOnly(domain.PurposeImports, 53),
			foreignOnly(domain.PurposeOtherForeign, 58),
		},
	},
	domain.CategoryNonFinancialTermDeposits: {
		YearCol: 0, MonthCol: 1, MinWidth: 53,
		Standard: []standardBlock{
			totalBlock(2),
			standard13(domain.PurposeUpToOne, 14),
			standard13(domain.PurposeOneUpToTwo, 27),
			standard13(domain.PurposeOverTwo, 40),
		},
	},
	domain.CategoryNonFinancialTermDepositsBySize: {
		YearCol: 0, MonthCol: 1, MinWidth: 36,
		BySize: []bySizeBlock{
			sizeBlock(domain.PurposeMicro, 2, 19),
			sizeBlock(domain.PurposeSmall, 6, 23),
			sizeBlock(domain.PurposeMedium, 10, 27),
			sizeBlock(domain.PurposeLarge, 14, 31),
			{Purpose: domain.PurposeTotal, LocalTotal: 18, ForeignTotal: 35},
		},
	},
	domain.CategoryTotalLoansByCurrency: {
		YearCol: 0, MonthCol: 1, MinWidth: 17,
		Currency: []currencyBlock{
			{Purpose: domain.PurposeRSD, Start: 2},
			{Purpose: domain.PurposeEUR, Start: 5},
			{Purpose: domain.PurposeCHF, Start: 8},
			{Purpose: domain.PurposeTotalForeign, Start: 11},
			{Purpose: domain.PurposeTotal, Start: 14},
		},
	},
}

// ValidateLayouts checks every layout table for internal consistency:
// struct constraints, purposes that belong to their category, rate spans
// of the contracted widths, and blocks that fit inside the declared sheet
// width. Call it once at startup; a failure here is a programming error,
// not a data error.
func ValidateLayouts() error {
	validate := validator.New()

	for category, layout := range sheetLayouts {
		if err := validate.Struct(layout); err != nil {
			return fmt.Errorf("layout %s: %w", category, err)
		}

		populated := 0
		for _, n := range []int{len(layout.Standard), len(layout.BySize), len(layout.Currency)} {
			if n > 0 {
				populated++
			}
		}
		if populated != 1 {
			return fmt.Errorf("layout %s: exactly one block kind must be populated", category)
		}

		for _, block := range layout.Standard {
			if err := validateStandardBlock(category, layout, block); err != nil {
				return err
			}
		}
		for _, block := range layout.BySize {
			if err := validateBySizeBlock(category, layout, block); err != nil {
				return err
			}
		}
		for _, block := range layout.Currency {
			if !domain.ValidPurpose(category, block.Purpose) {
				return fmt.Errorf("layout %s: purpose %s not in category", category, block.Purpose)
			}
			if block.Start+currencyWidth > layout.MinWidth {
				return fmt.Errorf("layout %s/%s: block exceeds sheet width %d", category, block.Purpose, layout.MinWidth)
			}
		}
	}
	return nil
}

func validateStandardBlock(category domain.Category, layout sheetLayout, block standardBlock) error {
	if !domain.ValidPurpose(category, block.Purpose) {
		return fmt.Errorf("layout %s: purpose %s not in category", category, block.Purpose)
	}
	if block.Start+block.Width > layout.MinWidth {
		return fmt.Errorf("layout %s/%s: block exceeds sheet width %d", category, block.Purpose, layout.MinWidth)
	}
	if block.Local != nil && block.Local.width() != localRatesWidth {
		return fmt.Errorf("layout %s/%s: local span must cover %d columns", category, block.Purpose, localRatesWidth)
	}
	if block.Foreign != nil && block.Foreign.width() != foreignRatesWidth {
		return fmt.Errorf("layout %s/%s: foreign span must cover %d columns", category, block.Purpose, foreignRatesWidth)
	}
	if block.Total >= block.Width {
		return fmt.Errorf("layout %s/%s: total offset outside block", category, block.Purpose)
	}
	return nil
}

func validateBySizeBlock(category domain.Category, layout sheetLayout, block bySizeBlock) error {
	if !domain.ValidPurpose(category, block.Purpose) {
		return fmt.Errorf("layout %s: purpose %s not in category", category, block.Purpose)
	}
	for _, rates := range []*span{block.LocalRates, block.ForeignRates} {
		if rates == nil {
			continue
		}
		if rates.width() != sizeRatesWidth {
			return fmt.Errorf("layout %s/%s: rate span must cover %d columns", category, block.Purpose, sizeRatesWidth)
		}
		if rates.To > layout.MinWidth {
			return fmt.Errorf("layout %s/%s: block exceeds sheet width %d", category, block.Purpose, layout.MinWidth)
		}
	}
	if block.LocalTotal >= layout.MinWidth || block.ForeignTotal >= layout.MinWidth {
		return fmt.Errorf("layout %s/%s: total column exceeds sheet width %d", category, block.Purpose, layout.MinWidth)
	}
	return nil
}
