// Package view filters and orders a live transaction set for review.
package view

import (
	"sort"
	"strings"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

// TypeFilter restricts a view to one transaction type.
type TypeFilter string

// Type filter values.
const (
	FilterAll     TypeFilter = "all"
	FilterIncome  TypeFilter = models.TypeIncome
	FilterExpense TypeFilter = models.TypeExpense
)

// SortKey names a sortable transaction field.
type SortKey string

// Sort keys. Dates compare by their normalized form, amounts numerically,
// the rest lexicographically.
const (
	SortByDate        SortKey = "date"
	SortByDescription SortKey = "description"
	SortByAmount      SortKey = "amount"
	SortByCategory    SortKey = "category"
)

// View holds the current search, filter and sort state. The zero value shows
// everything unsorted.
type View struct {
	Search string
	Filter TypeFilter

	sortKey    SortKey
	descending bool
	sorted     bool
}

// SortBy selects the sort key. Re-selecting the current key toggles the
// direction; selecting a new key resets to ascending.
func (v *View) SortBy(key SortKey) {
	if v.sorted && v.sortKey == key {
		v.descending = !v.descending
	} else {
		v.sortKey = key
		v.descending = false
	}
	v.sorted = true
}

// SortState returns the active sort key and direction. ok is false until
// SortBy has been called.
func (v *View) SortState() (key SortKey, descending, ok bool) {
	return v.sortKey, v.descending, v.sorted
}

// Apply returns the filtered, ordered view of the given transactions. The
// input slice is never modified; ties keep their prior relative order.
func (v *View) Apply(transactions []models.Transaction) []models.Transaction {
	result := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if v.matches(tx) {
			result = append(result, tx)
		}
	}

	if v.sorted {
		less := lessFunc(v.sortKey)
		sort.SliceStable(result, func(i, j int) bool {
			if v.descending {
				return less(result[j], result[i])
			}
			return less(result[i], result[j])
		})
	}

	return result
}

// matches applies the search and type filter. An empty search matches all;
// otherwise the description or category must contain the search text,
// case-insensitively.
func (v *View) matches(tx models.Transaction) bool {
	if v.Filter != "" && v.Filter != FilterAll && string(v.Filter) != tx.Type {
		return false
	}
	if v.Search == "" {
		return true
	}
	needle := strings.ToLower(v.Search)
	return strings.Contains(strings.ToLower(tx.Description), needle) ||
		strings.Contains(strings.ToLower(tx.Category), needle)
}

func lessFunc(key SortKey) func(a, b models.Transaction) bool {
	switch key {
	case SortByAmount:
		return func(a, b models.Transaction) bool { return a.Amount.LessThan(b.Amount) }
	case SortByDescription:
		return func(a, b models.Transaction) bool { return a.Description < b.Description }
	case SortByCategory:
		return func(a, b models.Transaction) bool { return a.Category < b.Category }
	default:
		return func(a, b models.Transaction) bool { return a.Date < b.Date }
	}
}
