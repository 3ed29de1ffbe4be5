package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatVND renders an amount with vi-VN digit grouping, rounded to whole
// đồng. Example: 1234567 -> "1.234.567".
func FormatVND(amount decimal.Decimal) string {
	s := amount.Round(0).String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatVNDCurrency renders an amount with the đồng sign, matching the
// vi-VN currency display. Example: 1234567 -> "1.234.567 ₫".
func FormatVNDCurrency(amount decimal.Decimal) string {
	return FormatVND(amount) + " ₫"
}
