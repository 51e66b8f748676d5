package domain

import "fmt"

// Category identifies one statistical category, i.e. one fact table fed by
// one source sheet of the monthly bulletin.
type Category string

const (
	CategoryHouseholdLoans                 Category = "household_loans"
	CategoryHouseholdTermDeposits          Category = "household_term_deposits"
	CategoryNonFinancialLoans              Category = "non_financial_loans"
	CategoryNonFinancialTermDeposits       Category = "non_financial_term_deposits"
	CategoryNonFinancialTermDepositsBySize Category = "non_financial_term_deposits_by_size"
	CategoryTotalLoansByCurrency           Category = "total_loans_by_currency"
)

// Categories lists every known category in a stable order.
var Categories = []Category{
	CategoryHouseholdLoans,
	CategoryHouseholdTermDeposits,
	CategoryNonFinancialLoans,
	CategoryNonFinancialTermDeposits,
	CategoryNonFinancialTermDepositsBySize,
	CategoryTotalLoansByCurrency,
}

// categoryLabels holds the human-readable (Serbian) bulletin titles. These
// are presentation strings only; the Category value itself is the stable
// identifier used in storage and configuration.
var categoryLabels = map[Category]string{
	CategoryHouseholdLoans:                 "Kamatne stope na kredite odobrene stanovništvu",
	CategoryHouseholdTermDeposits:          "Kamatne stope na primljene oročene depozite stanovništva",
	CategoryNonFinancialLoans:              "Kamatne stope na kredite odobrene nefinansijskom sektoru",
	CategoryNonFinancialTermDeposits:       "Kamatne stope na primljene oročene depozite nefinansijskog sektora",
	CategoryNonFinancialTermDepositsBySize: "Kamatne stope na primljene oročene depozite nefinansijskog sektora, po veličini preduzeća",
	CategoryTotalLoansByCurrency:           "Kamatne stope odobrene stanovništvu i nefinansijskom sektoru, po valutama",
}

// Label returns the display title for the category, or the raw value when
// the category is unknown.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory converts a configuration string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Purpose is the statistical sub-category a fact row belongs to within its
// category. The tag value is what gets persisted; the localized label is
// display-only.
type Purpose string

// Household loan purposes.
const (
	PurposeTotal    Purpose = "TOTAL"
	PurposeHousing  Purpose = "HOUSING"
	PurposeConsumer Purpose = "CONSUMER"
	PurposeCash     Purpose = "CASH"
	PurposeOther    Purpose = "OTHER"
)

// Term-deposit maturity purposes (household and non-financial).
const (
	PurposeUpToOne    Purpose = "UP_TO_ONE"
	PurposeOneUpToTwo Purpose = "ONE_UP_TO_TWO"
	PurposeOverTwo    Purpose = "OVER_TWO"
)

// Non-financial loan purposes.
const (
	PurposeCurrentAssets Purpose = "CURRENT_ASSETS"
	PurposeInvestment    Purpose = "INVESTMENT"
	PurposeOtherLocal    Purpose = "OTHER_LOCAL"
	PurposeImports       Purpose = "IMPORTS"
	PurposeOtherForeign  Purpose = "OTHER_FOREIGN"
)

// Enterprise-size purposes.
const (
	PurposeMicro  Purpose = "MICRO"
	PurposeSmall  Purpose = "SMALL"
	PurposeMedium Purpose = "MEDIUM"
	PurposeLarge  Purpose = "LARGE"
)

// Currency-breakdown purposes.
const (
	PurposeRSD          Purpose = "RSD"
	PurposeEUR          Purpose = "EUR"
	PurposeCHF          Purpose = "CHF"
	PurposeOtherFX      Purpose = "OTHER_FX"
	PurposeTotalForeign Purpose = "TOTAL_FOREIGN"
)

// categoryPurposes is the closed purpose enumeration per category.
var categoryPurposes = map[Category][]Purpose{
	CategoryHouseholdLoans: {
		PurposeTotal, PurposeHousing, PurposeConsumer, PurposeCash, PurposeOther,
	},
	CategoryHouseholdTermDeposits: {
		PurposeTotal, PurposeUpToOne, PurposeOneUpToTwo, PurposeOverTwo,
	},
	CategoryNonFinancialLoans: {
		PurposeTotal, PurposeCurrentAssets, PurposeInvestment, PurposeOtherLocal,
		PurposeImports, PurposeOtherForeign,
	},
	CategoryNonFinancialTermDeposits: {
		PurposeTotal, PurposeUpToOne, PurposeOneUpToTwo, PurposeOverTwo,
	},
	CategoryNonFinancialTermDepositsBySize: {
		PurposeMicro, PurposeSmall, PurposeMedium, PurposeLarge, PurposeTotal,
	},
	CategoryTotalLoansByCurrency: {
		PurposeRSD, PurposeEUR, PurposeCHF, PurposeTotalForeign, PurposeTotal,
	},
}

// purposeLabels maps purpose tags to the bulletin's localized labels.
var purposeLabels = map[Purpose]string{
	PurposeTotal:         "Ukupno",
	PurposeHousing:       "Stambeni krediti",
	PurposeConsumer:      "Potrošački krediti",
	PurposeCash:          "Gotovinski krediti",
	PurposeOther:         "Ostali krediti",
	PurposeUpToOne:       "Oročeni depoziti do 1 godine",
	PurposeOneUpToTwo:    "Oročeni depoziti preko 1 do 2 godine",
	PurposeOverTwo:       "Oročeni depoziti preko 2 godine",
	PurposeCurrentAssets: "Krediti za obrtna sredstva",
	PurposeInvestment:    "Investicioni krediti",
	PurposeOtherLocal:    "Ostali dinarski krediti",
	PurposeImports:       "Krediti za uvoz",
	PurposeOtherForeign:  "Ostali devizni krediti",
	PurposeMicro:         "Mikro preduzeće",
	PurposeSmall:         "Malo preduzeće",
	PurposeMedium:        "Srednje preduzeće",
	PurposeLarge:         "Veliko preduzeće",
	PurposeRSD:           "Dinarski krediti",
	PurposeEUR:           "Krediti u EUR",
	PurposeCHF:           "Krediti u CHF",
	PurposeOtherFX:       "Krediti u ostalim valutama",
	PurposeTotalForeign:  "Krediti u stranim valutama",
}

// Label returns the display label for the purpose, or the raw tag when no
// translation is known.
func (p Purpose) Label() string {
	if label, ok := purposeLabels[p]; ok {
		return label
	}
	return string(p)
}

// PurposesFor returns the closed purpose set for a category, in sheet
// order. The returned slice must not be modified.
func PurposesFor(c Category) []Purpose {
	return categoryPurposes[c]
}

// ValidPurpose reports whether p belongs to category c.
func ValidPurpose(c Category, p Purpose) bool {
	for _, candidate := range categoryPurposes[c] {
		if candidate == p {
			return true
		}
	}
	return false
}
