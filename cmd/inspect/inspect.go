// Package inspect handles the statement inspection command
package inspect

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/cmd/root"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/extract"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/ingest"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/render"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/summary"
)

// Cmd represents the inspect command
var Cmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show what would be extracted from a PDF statement",
	Long: `Inspect runs the extraction pipeline without writing any output file and
prints a per-page report plus the income/expense summary.`,
	RunE: inspectFunc,
}

func inspectFunc(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	report := result.Report

	fmt.Fprintf(out, "File:         %s\n", root.SharedFlags.Input)
	fmt.Fprintf(out, "Pages:        %d\n", report.PageCount)
	fmt.Fprintf(out, "Transactions: %d\n", report.TotalTransactions)
	if report.DateRange.Start != "" {
		fmt.Fprintf(out, "Date range:   %s to %s\n", report.DateRange.Start, report.DateRange.End)
	}
	fmt.Fprintln(out)

	for _, page := range report.Pages {
		fmt.Fprintf(out, "Page %d: %d transactions, %d characters of text\n",
			page.Index, page.TransactionCount, page.TextLength)
	}
	for _, pageErr := range result.PageErrors {
		fmt.Fprintf(out, "Page %d: skipped (%v)\n", pageErr.Page, pageErr.Err)
	}
	fmt.Fprintln(out)

	transactions := root.NewCategorizer().Apply(result.Document.Transactions())
	sum := summary.Summarize(transactions)

	fmt.Fprintf(out, "Total income:  %s\n", sum.TotalIncome.StringFixed(2))
	fmt.Fprintf(out, "Total expense: %s\n", sum.TotalExpense.StringFixed(2))
	fmt.Fprintf(out, "Balance:       %s\n", sum.Balance.StringFixed(2))

	names := make([]string, 0, len(sum.Categories))
	for name := range sum.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-15s %s\n", name, sum.Categories[name].StringFixed(2))
	}

	return nil
}
