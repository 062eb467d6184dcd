// Package extract recovers the raw text of a document page.
//
// No column or table layout reconstruction is attempted: the downstream parser
// is line-oriented and tolerant of loosely ordered runs, so runs are simply
// concatenated in document order with single spaces between them.
package extract

import (
	"strings"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/document"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/logging"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/pipelineerror"
)

var log = logging.GetLogger()

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Extractor concatenates every recognized text run of a page into one string.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Text returns the page's text runs joined by single spaces. Failure is scoped
// to the page and reported as a *pipelineerror.PageExtractError. A page that
// yields no runs produces an empty string, not an error.
func (e *Extractor) Text(src document.Source, index int) (string, error) {
	runs, err := src.TextRuns(index)
	if err != nil {
		return "", &pipelineerror.PageExtractError{Page: index, Err: err}
	}

	text := strings.Join(runs, " ")

	log.Debug("Extracted page text",
		logging.Field{Key: logging.FieldPage, Value: index},
		logging.Field{Key: logging.FieldCount, Value: len(runs)})

	return text, nil
}
