// Package pipelineerror defines the error types produced by the ingestion pipeline.
package pipelineerror

import (
	"fmt"
	"strings"
)

// DecodeError is fatal: the document container could not be opened at all
// (corrupt or encrypted input). No partial result accompanies it.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot decode document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot decode document: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PageRenderError is scoped to a single page: rasterization failed. The page is
// omitted from the result and sibling pages continue.
type PageRenderError struct {
	Page int
	Err  error
}

func (e *PageRenderError) Error() string {
	return fmt.Sprintf("page %d: render failed: %v", e.Page, e.Err)
}

func (e *PageRenderError) Unwrap() error {
	return e.Err
}

// PageExtractError is scoped to a single page: text extraction failed.
type PageExtractError struct {
	Page int
	Err  error
}

func (e *PageExtractError) Error() string {
	return fmt.Sprintf("page %d: text extraction failed: %v", e.Page, e.Err)
}

func (e *PageExtractError) Unwrap() error {
	return e.Err
}

// PageError pairs a 1-based page index with the error that sank it.
type PageError struct {
	Page int
	Err  error
}

func (e PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e PageError) Unwrap() error {
	return e.Err
}

// PageErrors accumulates page-scoped failures so the caller can judge whether a
// partial document is usable.
type PageErrors []PageError

func (es PageErrors) Error() string {
	if len(es) == 0 {
		return "no page errors"
	}
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Pages returns the failing page indices in the order they were recorded.
func (es PageErrors) Pages() []int {
	pages := make([]int, len(es))
	for i, e := range es {
		pages[i] = e.Page
	}
	return pages
}
