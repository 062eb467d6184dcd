package view

import (
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/categorizer"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

// Session is the interactive state layered over an immutable pipeline result:
// which tables are selected, the categorized transaction set, and the current
// view. The pipeline output itself is never mutated, so it stays reusable for
// batch or headless callers.
type Session struct {
	tables       []models.Table
	transactions []models.Transaction
	cat          *categorizer.Categorizer
	View         View
}

// NewSession builds a session over a freshly ingested document. Every table
// starts selected and all transactions of selected tables are categorized.
func NewSession(doc *models.Document, cat *categorizer.Categorizer) *Session {
	if cat == nil {
		cat = categorizer.New()
	}
	s := &Session{cat: cat}
	for _, page := range doc.Pages {
		s.tables = append(s.tables, page.Tables...)
	}
	s.rebuild()
	return s
}

// Tables returns the session's table regions.
func (s *Session) Tables() []models.Table {
	return s.tables
}

// SetTableSelected toggles a table region in or out of the working set.
// Returns false for an unknown table ID.
func (s *Session) SetTableSelected(id string, selected bool) bool {
	for i := range s.tables {
		if s.tables[i].ID == id {
			s.tables[i].Selected = selected
			s.rebuild()
			return true
		}
	}
	return false
}

// Transactions returns the current filtered, ordered view over the selected,
// categorized transactions.
func (s *Session) Transactions() []models.Transaction {
	return s.View.Apply(s.transactions)
}

// All returns every selected transaction regardless of the view state.
func (s *Session) All() []models.Transaction {
	return s.transactions
}

// Reassign moves one transaction to a new category. The income/expense type
// is untouched.
func (s *Session) Reassign(id, category string) bool {
	return s.cat.Reassign(s.transactions, id, category)
}

// rebuild recollects and categorizes the transactions of selected tables.
// Manual category reassignments are lost when the selection changes; the
// original behaves the same way, re-deriving categories from the new set.
func (s *Session) rebuild() {
	s.transactions = nil
	for _, t := range s.tables {
		if !t.Selected {
			continue
		}
		s.transactions = append(s.transactions, t.Transactions...)
	}
	s.cat.Apply(s.transactions)
}
