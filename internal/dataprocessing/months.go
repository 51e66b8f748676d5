package dataprocessing

import "strings"

// monthAliases maps every accepted spelling of a month token to its 1-12
// number. The bulletin mixes English abbreviations with Serbian-latin
// names, sometimes full, sometimes clipped, so lookup is exact-match over
// a fixed alias table rather than anything fuzzy.
var monthAliases = map[string]int{}

func init() {
	aliases := [12][]string{
		{"jan", "january", "januar"},
		{"feb", "february", "februar"},
		{"mar", "march", "mart"},
		{"apr", "april"},
		{"may", "maj"},
		{"jun", "june"},
		{"jul", "july"},
		{"aug", "avg", "august", "avgust"},
		{"sep", "september", "septembar"},
		{"oct", "okt", "october", "oktobar"},
		{"nov", "november", "novembar"},
		{"dec", "december", "decembar"},
	}
	for i, spellings := range aliases {
		for _, spelling := range spellings {
			monthAliases[spelling] = i + 1
		}
	}
}

// ResolveMonth maps a free-text month token to its month number. It
// returns (0, false) for anything it does not recognize; callers rely on
// that to tell data rows apart from header and footer rows.
func ResolveMonth(token string) (int, bool) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	month, ok := monthAliases[normalized]
	return month, ok
}
