// Package money converts between the integer pence used internally and the
// decimal pounds that appear in CSV files. Keeping arithmetic in pence
// means a purchase total can never drift from its unit price and quantity.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParsePounds converts a decimal pounds string such as "1.50" to pence.
func ParsePounds(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// Pounds formats pence as a two-decimal pounds string: 150 -> "1.50".
func Pounds(pence int64) string {
	return decimal.New(pence, -2).StringFixed(2)
}
