// Package tables groups a page's transactions into selectable table regions.
package tables

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

// Group emits the table regions for one page. A page that yielded at least one
// transaction produces exactly one table holding all of them, initially
// selected; an empty page produces none. One table per page is a deliberate
// simplification: pages with multiple independent statement sections are a
// known limitation.
func Group(pageNumber int, transactions []models.Transaction, preview []byte) []models.Table {
	if len(transactions) == 0 {
		return nil
	}

	return []models.Table{{
		ID:           uuid.NewString(),
		Name:         fmt.Sprintf("Transaction Table %d", pageNumber),
		Selected:     true,
		Transactions: transactions,
		Preview:      preview,
	}}
}
