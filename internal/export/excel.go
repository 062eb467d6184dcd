package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

const (
	transactionSheet = "Transactions"
	summarySheet     = "Summary"
)

// writeWorkbook builds an OOXML workbook with a transaction sheet and, when
// requested, a summary sheet.
func writeWorkbook(w io.Writer, transactions []models.Transaction, sum models.Summary, cfg Config) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", transactionSheet); err != nil {
		return fmt.Errorf("naming transaction sheet: %w", err)
	}

	headers := columnHeaders(cfg)
	if err := setRow(f, transactionSheet, 1, headers); err != nil {
		return err
	}
	for i, tx := range transactions {
		if err := setRow(f, transactionSheet, i+2, rowValues(tx, cfg)); err != nil {
			return err
		}
	}

	if cfg.IncludeSummary {
		if err := writeSummarySheet(f, sum); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// columnHeaders returns the header row for the configured template.
func columnHeaders(cfg Config) []interface{} {
	var headers []interface{}
	if cfg.Template == TemplateAccounting {
		headers = []interface{}{"Date", "Description", "Debit", "Credit", "Balance"}
	} else {
		headers = []interface{}{"Date", "Description", "Amount"}
		if cfg.Template != TemplateStandard {
			headers = append(headers, "Type")
		}
	}
	if cfg.withCategories() {
		headers = append(headers, "Category")
	}
	return headers
}

// rowValues renders one transaction in the template's column order. Amounts
// are written as numbers so spreadsheet formulas work on them.
func rowValues(tx models.Transaction, cfg Config) []interface{} {
	var values []interface{}
	if cfg.Template == TemplateAccounting {
		var debit, credit interface{}
		if tx.Amount.IsNegative() {
			debit = tx.Amount.Abs().InexactFloat64()
		} else {
			credit = tx.Amount.InexactFloat64()
		}
		var balance interface{}
		if tx.HasBalance() {
			balance = tx.Balance.InexactFloat64()
		}
		values = []interface{}{tx.Date, tx.Description, debit, credit, balance}
	} else {
		values = []interface{}{tx.Date, tx.Description, tx.Amount.InexactFloat64()}
		if cfg.Template != TemplateStandard {
			values = append(values, tx.Type)
		}
	}
	if cfg.withCategories() {
		values = append(values, tx.Category)
	}
	return values
}

// writeSummarySheet adds the totals and per-category breakdown on a second
// sheet, categories sorted by name.
func writeSummarySheet(f *excelize.File, sum models.Summary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Total Income", sum.TotalIncome.InexactFloat64()},
		{"Total Expense", sum.TotalExpense.InexactFloat64()},
		{"Balance", sum.Balance.InexactFloat64()},
		{},
		{"Category", "Amount"},
	}

	names := make([]string, 0, len(sum.Categories))
	for name := range sum.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, []interface{}{name, sum.Categories[name].InexactFloat64()})
	}

	for i, row := range rows {
		if err := setRow(f, summarySheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		if value == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("addressing cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("writing cell %s: %w", cell, err)
		}
	}
	return nil
}
