// Package types provides common type aliases and utilities.
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors. Rounding to two
// decimal places happens only at display/export time.
type Money = decimal.Decimal

// Quantity represents a line item quantity. Fractional values are allowed
// (e.g. 2.5 hours of labour, 4.5 metres of pipe).
type Quantity = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use MustMoney or ParseAmount for string input; floats lose
// precision past a few decimal places.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// ParseAmount parses free-form numeric input from the boundary.
// Invalid or negative input degrades to zero instead of failing, matching
// how the entry form treats unparseable quantity and price fields.
func ParseAmount(s string) Money {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders a value with exactly two decimal places prefixed by
// the currency symbol, e.g. "₹810.00".
func FormatAmount(symbol string, v Money) string {
	return symbol + v.StringFixed(2)
}
