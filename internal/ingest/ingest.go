// Package ingest orchestrates the per-page pipeline: render, extract, parse
// and group, fanned out over a bounded worker pool and reassembled strictly
// by page index.
package ingest

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/document"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/logging"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/pipelineerror"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/tables"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/txparser"
)

var log = logging.GetLogger()

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// DefaultWorkers bounds the page fan-out when no worker count is configured.
const DefaultWorkers = 4

// Renderer rasterizes one page into a full image and a thumbnail.
type Renderer interface {
	Render(src document.Source, index int) (full, thumbnail []byte, err error)
}

// Extractor recovers the raw text of one page.
type Extractor interface {
	Text(src document.Source, index int) (string, error)
}

// Pipeline ingests a statement document page by page. It carries no mutable
// state of its own, so one Pipeline is safe to reuse across documents.
type Pipeline struct {
	renderer  Renderer
	extractor Extractor
	workers   int
}

// New creates a Pipeline. A non-positive worker count falls back to
// DefaultWorkers.
func New(renderer Renderer, extractor Extractor, workers int) *Pipeline {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Pipeline{
		renderer:  renderer,
		extractor: extractor,
		workers:   workers,
	}
}

// Result is a complete or partial ingestion outcome. PageErrors lists the
// pages that failed; the document keeps the surviving pages in ascending
// index order.
type Result struct {
	Document   *models.Document
	PageErrors pipelineerror.PageErrors
	Report     Report
}

// Run opens the raw bytes as a document and ingests every page. A container
// that cannot be decoded is fatal and returns a *pipelineerror.DecodeError
// with no partial result.
func (p *Pipeline) Run(ctx context.Context, data []byte) (*Result, error) {
	src, err := document.Open(data)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.WithError(err).Warn("Failed to close document")
		}
	}()

	return p.RunSource(ctx, src)
}

// RunSource ingests every page of an already opened document source.
//
// Pages are mutually independent, so they fan out across the worker pool.
// Each worker writes into an index-addressed slot; completion order never
// determines the final sequence. A page-scoped failure is recorded and does
// not cancel sibling pages. No worker outlives this call.
func (p *Pipeline) RunSource(ctx context.Context, src document.Source) (*Result, error) {
	pageCount := src.PageCount()

	log.Info("Ingesting document",
		logging.Field{Key: logging.FieldPages, Value: pageCount},
		logging.Field{Key: logging.FieldWorkers, Value: p.workers})

	pageSlots := make([]*models.Page, pageCount)
	errSlots := make([]error, pageCount)

	var g errgroup.Group
	g.SetLimit(p.workers)

	for i := 1; i <= pageCount; i++ {
		index := i
		g.Go(func() error {
			// Cooperative cancellation check between pages; pages already
			// running are left to finish.
			if err := ctx.Err(); err != nil {
				errSlots[index-1] = err
				return nil
			}
			page, err := p.processPage(src, index)
			if err != nil {
				errSlots[index-1] = err
				return nil
			}
			pageSlots[index-1] = page
			return nil
		})
	}

	// Workers only record into their slots, so Wait cannot fail.
	_ = g.Wait()

	return p.merge(pageSlots, errSlots), nil
}

// processPage runs the render → extract → parse stages for one page.
func (p *Pipeline) processPage(src document.Source, index int) (*models.Page, error) {
	full, thumbnail, err := p.renderer.Render(src, index)
	if err != nil {
		log.WithError(err).Warn("Page render failed",
			logging.Field{Key: logging.FieldPage, Value: index})
		return nil, err
	}

	text, err := p.extractor.Text(src, index)
	if err != nil {
		log.WithError(err).Warn("Page text extraction failed",
			logging.Field{Key: logging.FieldPage, Value: index})
		return nil, err
	}

	transactions := txparser.Parse(text)

	log.Debug("Processed page",
		logging.Field{Key: logging.FieldPage, Value: index},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return &models.Page{
		Index:        index,
		Image:        full,
		Thumbnail:    thumbnail,
		Text:         text,
		Transactions: transactions,
	}, nil
}

// merge reassembles the slots into a document ordered by ascending page
// index, normalizes dates, assigns transaction IDs and groups table regions.
func (p *Pipeline) merge(pageSlots []*models.Page, errSlots []error) *Result {
	result := &Result{Document: &models.Document{}}

	for i, page := range pageSlots {
		if page == nil {
			if err := errSlots[i]; err != nil {
				result.PageErrors = append(result.PageErrors,
					pipelineerror.PageError{Page: i + 1, Err: err})
			}
			continue
		}

		for j := range page.Transactions {
			page.Transactions[j].ID = uuid.NewString()
			page.Transactions[j].Date = models.NormalizeDate(page.Transactions[j].RawDate)
		}
		page.Tables = tables.Group(page.Index, page.Transactions, page.Image)

		result.Document.Pages = append(result.Document.Pages, *page)
	}

	result.Report = buildReport(result.Document)

	log.Info("Document ingested",
		logging.Field{Key: logging.FieldPages, Value: result.Document.PageCount()},
		logging.Field{Key: logging.FieldCount, Value: result.Report.TotalTransactions})

	return result
}
