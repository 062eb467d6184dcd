package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/summary"
)

func sampleTransactions() []models.Transaction {
	balance := decimal.NewFromFloat(10200)
	return []models.Transaction{
		{
			ID:          "tx-1",
			Date:        "2023-01-02",
			Description: "Coffee Shop",
			Amount:      decimal.NewFromFloat(-4.50),
			Category:    models.CategoryShopping,
			Type:        models.TypeExpense,
		},
		{
			ID:          "tx-2",
			Date:        "2023-01-05",
			Description: "Payroll Deposit",
			Amount:      decimal.NewFromInt(3500),
			Balance:     &balance,
			Category:    models.CategorySalary,
			Type:        models.TypeIncome,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Template: TemplateStandard, FileFormat: FormatCSV}
	assert.NoError(t, valid.Validate())

	assert.Error(t, Config{Template: "fancy", FileFormat: FormatCSV}.Validate())
	assert.Error(t, Config{Template: TemplateStandard, FileFormat: "pdf"}.Validate())
}

func TestWriteCSVStandard(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Template: TemplateStandard, FileFormat: FormatCSV}

	txs := sampleTransactions()
	require.NoError(t, Write(&buf, txs, summary.Summarize(txs), cfg))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Description,Amount", lines[0])
	assert.Equal(t, "2023-01-02,Coffee Shop,-4.50", lines[1])
	assert.Equal(t, "2023-01-05,Payroll Deposit,3500.00", lines[2])
	assert.NotContains(t, out, "Category", "standard template never carries categories")
}

func TestWriteCSVFinancialWithSummary(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Template:          TemplateFinancial,
		FileFormat:        FormatCSV,
		IncludeCategories: true,
		IncludeSummary:    true,
	}

	txs := sampleTransactions()
	require.NoError(t, Write(&buf, txs, summary.Summarize(txs), cfg))

	out := buf.String()
	assert.Contains(t, out, "Date,Description,Amount,Type,Category")
	assert.Contains(t, out, "2023-01-02,Coffee Shop,-4.50,expense,Shopping")
	assert.Contains(t, out, "Total Income,3500.00")
	assert.Contains(t, out, "Total Expense,4.50")
	assert.Contains(t, out, "Balance,3495.50")
	assert.Contains(t, out, "Salary,3500.00")
	assert.Contains(t, out, "Shopping,-4.50", "category buckets stay signed")
}

func TestWriteCSVAccounting(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Template: TemplateAccounting, FileFormat: FormatCSV}

	txs := sampleTransactions()
	require.NoError(t, Write(&buf, txs, summary.Summarize(txs), cfg))

	out := buf.String()
	assert.Contains(t, out, "Date,Description,Debit,Credit,Balance,Category")
	assert.Contains(t, out, "2023-01-02,Coffee Shop,4.50,,,", "expenses land in the debit column as positives")
	assert.Contains(t, out, "2023-01-05,Payroll Deposit,,3500.00,10200.00,")
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Template:          TemplateFinancial,
		FileFormat:        FormatXLSX,
		IncludeCategories: true,
		IncludeSummary:    true,
	}

	txs := sampleTransactions()
	require.NoError(t, Write(&buf, txs, summary.Summarize(txs), cfg))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(transactionSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Description", "Amount", "Type", "Category"}, rows[0])
	assert.Equal(t, "Coffee Shop", rows[1][1])
	assert.Equal(t, "-4.5", rows[1][2], "amounts are numeric cells")
	assert.Equal(t, "Salary", rows[2][4])

	summaryRows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.NotEmpty(t, summaryRows)
	assert.Equal(t, "Total Income", summaryRows[0][0])
	assert.Equal(t, "3500", summaryRows[0][1])
}

func TestWriteWorkbookWithoutSummarySheet(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Template: TemplateStandard, FileFormat: FormatXLSX}

	txs := sampleTransactions()
	require.NoError(t, Write(&buf, txs, summary.Summarize(txs), cfg))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	_, err = f.GetRows(summarySheet)
	assert.Error(t, err, "no summary sheet unless requested")

	rows, err := f.GetRows(transactionSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, rows[0])
}

func TestWriteTaxTemplateAlwaysHasCategories(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Template: TemplateTax, FileFormat: FormatCSV, IncludeCategories: false}

	txs := sampleTransactions()
	require.NoError(t, Write(&buf, txs, summary.Summarize(txs), cfg))

	assert.Contains(t, buf.String(), "Category")
	assert.Contains(t, buf.String(), "Shopping")
}

func TestWriteRejectsInvalidConfig(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, nil, models.Summary{}, Config{Template: "fancy", FileFormat: FormatCSV})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
