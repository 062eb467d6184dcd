package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

func tx(amount int64, category string) models.Transaction {
	return models.Transaction{Amount: decimal.NewFromInt(amount), Category: category}
}

func TestSummarize(t *testing.T) {
	transactions := []models.Transaction{
		tx(3000, models.CategorySalary),
		tx(-1200, models.CategoryRent),
		tx(-300, models.CategoryGroceries),
		tx(-100, models.CategoryGroceries),
		tx(0, models.CategoryOther),
	}

	sum := Summarize(transactions)

	assert.True(t, sum.TotalIncome.Equal(decimal.NewFromInt(3000)),
		"zero amounts contribute to neither total: income = %s", sum.TotalIncome)
	assert.True(t, sum.TotalExpense.Equal(decimal.NewFromInt(1600)))
	assert.True(t, sum.Balance.Equal(decimal.NewFromInt(1400)))

	require.Contains(t, sum.Categories, models.CategoryGroceries)
	assert.True(t, sum.Categories[models.CategoryGroceries].Equal(decimal.NewFromInt(-400)),
		"category buckets keep the signed amount")
	assert.True(t, sum.Categories[models.CategorySalary].Equal(decimal.NewFromInt(3000)))
}

func TestSummarizeBalanceEqualsCategorySum(t *testing.T) {
	transactions := []models.Transaction{
		tx(500, models.CategorySalary),
		tx(-120, models.CategoryDining),
		tx(-80, models.CategoryShopping),
		tx(45, models.CategoryOther),
	}

	sum := Summarize(transactions)

	total := decimal.Zero
	for _, v := range sum.Categories {
		total = total.Add(v)
	}
	assert.True(t, total.Equal(sum.Balance),
		"signed category buckets must sum to the balance: %s != %s", total, sum.Balance)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)

	assert.True(t, sum.TotalIncome.IsZero())
	assert.True(t, sum.TotalExpense.IsZero())
	assert.True(t, sum.Balance.IsZero())
	assert.Empty(t, sum.Categories)
}
