// Package convert handles the PDF statement conversion command
package convert

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/cmd/root"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/export"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/extract"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/ingest"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/render"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/summary"
)

var (
	template   string
	fileFormat string
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a PDF statement to a spreadsheet or CSV",
	Long: `Convert extracts the transactions of a PDF bank statement, categorizes
them and writes the result in the configured export template and format.`,
	RunE: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&template, "template", "t", "", "Export template (standard, financial, accounting, tax)")
	Cmd.Flags().StringVarP(&fileFormat, "format", "f", "", "Export format (xlsx, csv, xls)")
}

func convertFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return cmd.Usage()
	}

	data, err := root.ReadInput()
	if err != nil {
		return err
	}

	cfg := root.Cfg
	pipeline := ingest.New(
		render.New(cfg.Render.Scale, cfg.Render.ThumbnailSize),
		extract.New(),
		cfg.Pipeline.Workers)

	result, err := pipeline.Run(context.Background(), data)
	if err != nil {
		return err
	}
	for _, pageErr := range result.PageErrors {
		root.Log.WithError(pageErr.Err).Warnf("Skipped page %d", pageErr.Page)
	}

	transactions := root.NewCategorizer().Apply(result.Document.Transactions())
	sum := summary.Summarize(transactions)

	exportCfg := export.Config{
		Template:          export.Template(cfg.Export.Template),
		FileFormat:        export.FileFormat(cfg.Export.FileFormat),
		IncludeCategories: cfg.Export.IncludeCategories,
		IncludeSummary:    cfg.Export.IncludeSummary,
	}
	if template != "" {
		exportCfg.Template = export.Template(template)
	}
	if fileFormat != "" {
		exportCfg.FileFormat = export.FileFormat(fileFormat)
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = defaultOutput(root.SharedFlags.Input, string(exportCfg.FileFormat))
	}

	if err := export.WriteFile(output, transactions, sum, exportCfg); err != nil {
		return err
	}

	root.Log.WithField("transactions", len(transactions)).
		Infof("Converted %s to %s", root.SharedFlags.Input, output)
	return nil
}

// defaultOutput derives the output path from the input path and the export
// format, replacing the extension.
func defaultOutput(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}
