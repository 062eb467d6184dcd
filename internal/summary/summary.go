// Package summary aggregates a transaction set into financial totals.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

// Summarize computes the aggregate figures for a transaction set. It is pure,
// synchronous and idempotent over an unmodified input.
//
// TotalIncome sums amounts strictly greater than zero; TotalExpense sums the
// absolute values of the rest, so both totals stay non-negative and
// Balance = TotalIncome - TotalExpense. The per-category buckets accumulate
// the signed amounts: expense categories come out negative. That is a display
// convention, not a "total spent" figure, and it makes the bucket sum equal
// the balance.
func Summarize(transactions []models.Transaction) models.Summary {
	s := models.Summary{
		Categories: make(map[string]decimal.Decimal),
	}

	for _, tx := range transactions {
		if tx.Amount.IsPositive() {
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		} else {
			s.TotalExpense = s.TotalExpense.Add(tx.Amount.Abs())
		}
		s.Categories[tx.Category] = s.Categories[tx.Category].Add(tx.Amount)
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}
