// Package money holds the rounding, parsing and formatting rules shared by the
// split calculators. All amounts are decimal.Decimal so cent boundaries are exact.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits in a currency amount.
const Places = 2

// Inputs longer than maxInputLen or with an exponent beyond maxExponent
// parse as zero; huge exponents make decimal arithmetic arbitrarily slow.
const (
	maxInputLen = 32
	maxExponent = 12
)

var hundred = decimal.NewFromInt(100)

// RoundToCents rounds half-to-even to two decimal places.
func RoundToCents(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(Places)
}

// RoundUpToCents rounds toward the next cent. Values already on a cent
// boundary are returned unchanged (10.000 -> 10.00, 10.001 -> 10.01).
func RoundUpToCents(d decimal.Decimal) decimal.Decimal {
	return d.RoundCeil(Places)
}

// Parse converts user-entered text to an amount. It is deliberately lenient:
// empty or unparseable input yields zero and is never reported as an error.
// Surrounding whitespace, a leading "$", a trailing "%" and "," group
// separators are tolerated. Oversized input also yields zero.
func Parse(text string) decimal.Decimal {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxInputLen {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero
	}
	return d
}

// Percent converts a percentage (e.g. 18) to a fraction (0.18).
func Percent(d decimal.Decimal) decimal.Decimal {
	return d.Div(hundred)
}

// Format renders an amount with exactly two decimals, e.g. "14.50".
func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}
