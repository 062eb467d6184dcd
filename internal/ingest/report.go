package ingest

import (
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

// PageSummary describes one ingested page for downstream consumers.
type PageSummary struct {
	Index            int    `json:"index"`
	TextLength       int    `json:"textLength"`
	TransactionCount int    `json:"transactionCount"`
	Thumbnail        []byte `json:"thumbnail"`
	FullImage        []byte `json:"fullImage"`
}

// DateRange spans the first and last transaction of the document in
// extraction order. The bounds are raw dates, not chronological extremes.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Report is the ingestion result handed to downstream collaborators.
type Report struct {
	PageCount         int           `json:"pageCount"`
	Pages             []PageSummary `json:"pages"`
	TotalTransactions int           `json:"totalTransactions"`
	DateRange         DateRange     `json:"dateRange"`
}

// buildReport summarizes an assembled document.
func buildReport(doc *models.Document) Report {
	report := Report{
		PageCount: doc.PageCount(),
		Pages:     make([]PageSummary, 0, doc.PageCount()),
	}

	var first, last string
	for _, page := range doc.Pages {
		report.Pages = append(report.Pages, PageSummary{
			Index:            page.Index,
			TextLength:       len(page.Text),
			TransactionCount: len(page.Transactions),
			Thumbnail:        page.Thumbnail,
			FullImage:        page.Image,
		})
		report.TotalTransactions += len(page.Transactions)

		for _, tx := range page.Transactions {
			if first == "" {
				first = tx.RawDate
			}
			last = tx.RawDate
		}
	}

	report.DateRange = DateRange{Start: first, End: last}
	return report
}
