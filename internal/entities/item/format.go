package item

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatPower renders a computed stat rounded to two decimals, always
// keeping at least one fractional digit (345.0, 57.5).
func formatPower(v float64) string {
	s := strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// formatAmount renders a stored stat in its shortest form (10, 12.5).
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// capitalize title-cases the first letter and lower-cases everything else
// ("attack-BOOST" -> "Attack-boost").
func capitalize(s string) string {
	lower := cases.Lower(language.English).String(s)
	_, size := utf8.DecodeRuneInString(lower)
	return cases.Title(language.English).String(lower[:size]) + lower[size:]
}
