package tables

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

func TestGroup(t *testing.T) {
	transactions := []models.Transaction{
		{Description: "Coffee Shop", Amount: decimal.NewFromFloat(-4.50)},
		{Description: "Payroll", Amount: decimal.NewFromInt(3500)},
	}
	preview := []byte{0x89, 0x50, 0x4e, 0x47}

	tables := Group(3, transactions, preview)
	require.Len(t, tables, 1)

	table := tables[0]
	assert.NotEmpty(t, table.ID)
	assert.Equal(t, "Transaction Table 3", table.Name)
	assert.True(t, table.Selected)
	assert.Equal(t, transactions, table.Transactions)
	assert.Equal(t, preview, table.Preview)
}

func TestGroupEmptyPage(t *testing.T) {
	assert.Nil(t, Group(1, nil, nil))
}

func TestGroupUniqueIDs(t *testing.T) {
	transactions := []models.Transaction{{Description: "x"}}
	a := Group(1, transactions, nil)[0]
	b := Group(1, transactions, nil)[0]
	assert.NotEqual(t, a.ID, b.ID)
}
