package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders a monetary amount with two decimal places and
// thousands separators, e.g. 1234567.5 -> "1,234,567.50".
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}
