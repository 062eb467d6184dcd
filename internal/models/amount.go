package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// currency symbols stripped before numeric parsing
var currencyReplacer = strings.NewReplacer("$", "", "€", "", "£", "", ",", "")

// ParseAmount converts a matched amount string into a decimal value, stripping
// any leading currency symbol and thousands separators. "-$4.50" → -4.50,
// "$3,500.00" → 3500.00.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(currencyReplacer.Replace(s))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}
