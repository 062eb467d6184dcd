package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Page holds everything recovered from a single document page.
// Index is 1-based and unique within a Document.
type Page struct {
	Index        int           `json:"index"`
	Image        []byte        `json:"-"`
	Thumbnail    []byte        `json:"-"`
	Text         string        `json:"-"`
	Transactions []Transaction `json:"transactions"`
	Tables       []Table       `json:"tables"`
}

// Table is a detected, independently selectable cluster of transactions on
// one page. The grouper emits at most one per page.
type Table struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Selected     bool          `json:"selected"`
	Transactions []Transaction `json:"transactions"`
	Preview      []byte        `json:"-"`
}

// Document is the assembled result of ingesting a statement file. Pages are
// ordered by ascending index.
type Document struct {
	Pages []Page `json:"pages"`
}

// PageCount returns the number of successfully ingested pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Transactions returns every transaction across all pages in page order.
func (d *Document) Transactions() []Transaction {
	var all []Transaction
	for _, p := range d.Pages {
		all = append(all, p.Transactions...)
	}
	return all
}

// Validate checks the page index invariant: strictly increasing order.
// Gaps are permitted, since failed pages are omitted from the document.
func (d *Document) Validate() error {
	prev := 0
	for _, p := range d.Pages {
		if p.Index <= prev {
			return fmt.Errorf("page index %d out of order after %d", p.Index, prev)
		}
		prev = p.Index
	}
	return nil
}

// Summary holds the aggregate financial figures for a transaction set.
// TotalIncome and TotalExpense are non-negative; Categories accumulates the
// signed amount per category, so expense buckets stay negative.
type Summary struct {
	TotalIncome  decimal.Decimal            `json:"totalIncome"`
	TotalExpense decimal.Decimal            `json:"totalExpense"`
	Balance      decimal.Decimal            `json:"balance"`
	Categories   map[string]decimal.Decimal `json:"categorySummary"`
}
