package ledger

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches an optional leading minus sign, one or more digits,
// and an optional fraction of one or more digits. Anything else is treated
// as malformed and parses to zero.
var amountPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// ParseAmount parses a monetary token into a decimal amount. The token is
// trimmed first; a token that does not match the amount pattern yields zero.
// Partial or corrupted transaction lines must not abort the batch, so there
// is no error return.
func ParseAmount(token string) decimal.Decimal {
	token = strings.TrimSpace(token)
	if !amountPattern.MatchString(token) {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders an amount for display. It uses the natural decimal
// string form, with integer values first given a ".0" suffix, and a single
// trailing ".0" rewritten to ".00" so integer-valued amounts display with
// two decimal places.
//
// The rule intentionally does not normalize other truncated fractions: an
// amount the input carried as "3.1" renders as "3.1". Amounts with two or
// more fraction digits pass through unchanged.
func FormatAmount(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	if strings.HasSuffix(s, ".0") {
		s += "0"
	}
	return s
}
