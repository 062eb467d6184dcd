package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

// CSV row shapes, one per column layout. gocsv derives the header row from
// the struct tags.

type basicRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
}

type detailRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
}

type ledgerRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Debit       string `csv:"Debit"`
	Credit      string `csv:"Credit"`
	Balance     string `csv:"Balance"`
	Category    string `csv:"Category"`
}

// writeCSV marshals the transactions in the template's layout and, when
// requested, appends a summary section after a blank line.
func writeCSV(w io.Writer, transactions []models.Transaction, sum models.Summary, cfg Config) error {
	var err error
	switch {
	case cfg.Template == TemplateAccounting:
		err = gocsv.Marshal(ledgerRows(transactions, cfg), w)
	case cfg.withCategories():
		err = gocsv.Marshal(detailRows(transactions), w)
	default:
		err = gocsv.Marshal(basicRows(transactions), w)
	}
	if err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	if cfg.IncludeSummary {
		if err := writeCSVSummary(w, sum); err != nil {
			return fmt.Errorf("writing CSV summary: %w", err)
		}
	}
	return nil
}

func basicRows(transactions []models.Transaction) []basicRow {
	rows := make([]basicRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, basicRow{
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
		})
	}
	return rows
}

func detailRows(transactions []models.Transaction) []detailRow {
	rows := make([]detailRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, detailRow{
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Type:        tx.Type,
			Category:    tx.Category,
		})
	}
	return rows
}

// ledgerRows splits each amount into a debit or credit column. The balance
// column stays empty for lines that carried no running balance.
func ledgerRows(transactions []models.Transaction, cfg Config) []ledgerRow {
	rows := make([]ledgerRow, 0, len(transactions))
	for _, tx := range transactions {
		row := ledgerRow{
			Date:        tx.Date,
			Description: tx.Description,
		}
		if tx.Amount.IsNegative() {
			row.Debit = tx.Amount.Abs().StringFixed(2)
		} else {
			row.Credit = tx.Amount.StringFixed(2)
		}
		if tx.HasBalance() {
			row.Balance = tx.Balance.StringFixed(2)
		}
		if cfg.withCategories() {
			row.Category = tx.Category
		}
		rows = append(rows, row)
	}
	return rows
}

// writeCSVSummary appends the totals and per-category breakdown as a trailing
// section. Categories are sorted by name for a stable file.
func writeCSVSummary(w io.Writer, sum models.Summary) error {
	lines := [][2]string{
		{"", ""},
		{"Total Income", sum.TotalIncome.StringFixed(2)},
		{"Total Expense", sum.TotalExpense.StringFixed(2)},
		{"Balance", sum.Balance.StringFixed(2)},
	}

	names := make([]string, 0, len(sum.Categories))
	for name := range sum.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, [2]string{name, sum.Categories[name].StringFixed(2)})
	}

	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s,%s\n", line[0], line[1]); err != nil {
			return err
		}
	}
	return nil
}
