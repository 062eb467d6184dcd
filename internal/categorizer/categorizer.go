// Package categorizer assigns a category and an income/expense type to each
// transaction from its description and signed amount.
package categorizer

import (
	"github.com/shopspring/decimal"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/logging"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

var log = logging.GetLogger()

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Categorize is the pure classification function. The type follows solely
// from the amount sign: zero counts as income. Positive amounts are tested
// against the income rules; everything else walks the ordered expense rules,
// first match wins, falling back to Other.
func Categorize(description string, amount decimal.Decimal) (category, txType string) {
	if amount.IsNegative() {
		txType = models.TypeExpense
	} else {
		txType = models.TypeIncome
	}

	if amount.IsPositive() {
		if c := firstMatch(incomeRules, description); c != "" {
			return c, txType
		}
		return models.CategoryOther, txType
	}

	if c := firstMatch(expenseRules, description); c != "" {
		return c, txType
	}
	return models.CategoryOther, txType
}

// Categorizer applies the fixed rule tables, optionally extended with user
// keyword rules loaded from a YAML file. User rules run after the built-in
// tables and before the Other fallback, so the built-in precedence is never
// disturbed.
type Categorizer struct {
	extra []Rule
}

// New creates a Categorizer with the built-in rules only.
func New() *Categorizer {
	return &Categorizer{}
}

// Categorize classifies one transaction, consulting user rules when the
// built-in tables fall through to Other.
func (c *Categorizer) Categorize(description string, amount decimal.Decimal) (string, string) {
	category, txType := Categorize(description, amount)
	if category == models.CategoryOther && len(c.extra) > 0 {
		if extra := firstMatch(c.extra, description); extra != "" {
			return extra, txType
		}
	}
	return category, txType
}

// Apply tags every transaction in place with its category and type and
// returns the same slice for chaining.
func (c *Categorizer) Apply(transactions []models.Transaction) []models.Transaction {
	for i := range transactions {
		transactions[i].Category, transactions[i].Type = c.Categorize(
			transactions[i].Description, transactions[i].Amount)
	}
	log.Debug("Categorized transactions",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions
}

// Reassign moves the transaction with the given ID to a new category. The
// income/expense type never changes: it is derived from the amount sign alone.
// Returns false when the ID is unknown or the category is not in the fixed set.
func (c *Categorizer) Reassign(transactions []models.Transaction, id, category string) bool {
	if !models.IsValidCategory(category) {
		return false
	}
	for i := range transactions {
		if transactions[i].ID == id {
			transactions[i].Category = category
			log.Debug("Reassigned transaction category",
				logging.Field{Key: logging.FieldCategory, Value: category})
			return true
		}
	}
	return false
}
