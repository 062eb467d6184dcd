// Package export writes a categorized transaction set to a spreadsheet or CSV
// file. It is the collaborator the pipeline hands its output to; nothing in
// here feeds back into ingestion or categorization.
package export

import (
	"fmt"
	"io"
	"os"

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

// Template selects the column layout of the export.
type Template string

// Export templates.
const (
	TemplateStandard   Template = "standard"
	TemplateFinancial  Template = "financial"
	TemplateAccounting Template = "accounting"
	TemplateTax        Template = "tax"
)

// FileFormat selects the output serialization.
type FileFormat string

// Export file formats. An xls request produces an OOXML workbook under the
// requested name; excelize writes no legacy BIFF.
const (
	FormatXLSX FileFormat = "xlsx"
	FormatCSV  FileFormat = "csv"
	FormatXLS  FileFormat = "xls"
)

// Config is the export configuration chosen by the caller.
type Config struct {
	Template          Template   `json:"template"`
	IncludeCategories bool       `json:"includeCategories"`
	IncludeSummary    bool       `json:"includeSummary"`
	FileFormat        FileFormat `json:"fileFormat"`
}

// Validate rejects configurations outside the supported enums.
func (c Config) Validate() error {
	switch c.Template {
	case TemplateStandard, TemplateFinancial, TemplateAccounting, TemplateTax:
	default:
		return fmt.Errorf("unknown export template %q", c.Template)
	}
	switch c.FileFormat {
	case FormatXLSX, FormatCSV, FormatXLS:
	default:
		return fmt.Errorf("unknown export file format %q", c.FileFormat)
	}
	return nil
}

// withCategories reports whether the layout carries a Category column. The
// tax template always does; the standard template never does.
func (c Config) withCategories() bool {
	switch c.Template {
	case TemplateStandard:
		return false
	case TemplateTax:
		return true
	default:
		return c.IncludeCategories
	}
}

// Write serializes the transaction set and summary to w in the configured
// format.
func Write(w io.Writer, transactions []models.Transaction, sum models.Summary, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Info("Exporting transactions",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldTemplate, Value: string(cfg.Template)},
		logging.Field{Key: logging.FieldFormat, Value: string(cfg.FileFormat)})

	if cfg.FileFormat == FormatCSV {
		return writeCSV(w, transactions, sum, cfg)
	}
	return writeWorkbook(w, transactions, sum, cfg)
}

// WriteFile serializes to a file path, creating or truncating it.
func WriteFile(path string, transactions []models.Transaction, sum models.Summary, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close export file",
				logging.Field{Key: logging.FieldOutputFile, Value: path})
		}
	}()

	if err := Write(f, transactions, sum, cfg); err != nil {
		return err
	}

	log.Info("Export written",
		logging.Field{Key: logging.FieldOutputFile, Value: path})
	return nil
}
