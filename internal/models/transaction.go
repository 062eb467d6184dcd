// Package models defines the data structures shared by the ingestion and
// categorization pipeline.
package models

import (
	"github.com/shopspring/decimal"
)

// Transaction is a single statement line recovered from a page.
//
// RawDate holds the text exactly as matched on the page. Date holds the
// normalized YYYY-MM-DD form, or falls back to RawDate when the raw text
// could not be parsed as a date.
type Transaction struct {
	ID          string           `json:"id" csv:"-"`
	RawDate     string           `json:"rawDate" csv:"-"`
	Date        string           `json:"date" csv:"Date"`
	Description string           `json:"description" csv:"Description"`
	Amount      decimal.Decimal  `json:"amount" csv:"Amount"`
	Balance     *decimal.Decimal `json:"balance,omitempty" csv:"-"`
	Category    string           `json:"category" csv:"Category"`
	Type        string           `json:"type" csv:"Type"`
}

// HasBalance reports whether the source line carried a trailing balance figure.
func (t Transaction) HasBalance() bool {
	return t.Balance != nil
}

// IsIncome reports whether the transaction counts as income. A zero amount
// counts as income.
func (t Transaction) IsIncome() bool {
	return !t.Amount.IsNegative()
}
