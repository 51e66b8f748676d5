package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMonth(t *testing.T) {
	aliases := map[int][]string{
		1:  {"jan", "january", "januar"},
		2:  {"feb", "february", "februar"},
		3:  {"mar", "march", "mart"},
		4:  {"apr", "april"},
		5:  {"may", "maj"},
		6:  {"jun", "june"},
		7:  {"jul", "july"},
		8:  {"aug", "avg", "august", "avgust"},
		9:  {"sep", "september", "septembar"},
		10: {"oct", "okt", "october", "oktobar"},
		11: {"nov", "november", "novembar"},
		12: {"dec", "december", "decembar"},
	}

	for want, spellings := range aliases {
		for _, spelling := range spellings {
			month, ok := ResolveMonth(spelling)
			assert.True(t, ok, "alias %q should resolve", spelling)
			assert.Equal(t, want, month, "alias %q", spelling)
		}
	}
}

func TestResolveMonthNormalization(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "uppercase", token: "JAN", want: 1},
		{name: "mixed case full form", token: "Oktobar", want: 10},
		{name: "surrounding whitespace", token: "  mart  ", want: 3},
		{name: "trailing tab", token: "dec\t", want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, ok := ResolveMonth(tt.token)
			assert.True(t, ok)
			assert.Equal(t, tt.want, month)
		})
	}
}

func TestResolveMonthNoMatch(t *testing.T) {
	tokens := []string{
		"", " ", "-", "2020", "Godina", "Mesec", "januकाry", "janu",
		"month", "13", "avgus", "U dinarima",
	}
	for _, token := range tokens {
		month, ok := ResolveMonth(token)
		assert.False(t, ok, "token %q must not resolve", token)
		assert.Zero(t, month)
	}
}
