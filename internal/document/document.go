// Package document opens raw statement bytes as a paged document handle.
//
// Two views are kept over the same bytes: a MuPDF handle for rasterization and
// a text-run reader for extraction. Upstream validation (mime type, size) has
// already happened; the only fatal failure here is a container that cannot be
// decoded at all.
package document

import (
	"bytes"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/pipelineerror"
)

// Source is the paged-document abstraction the pipeline stages consume.
// *File is the production implementation; tests substitute mocks.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Image rasterizes the 1-based page at the given scale (1.0 = 72 DPI).
	Image(index int, scale float64) (image.Image, error)

	// TextRuns returns every recognized text run on the 1-based page, in
	// document order.
	TextRuns(index int) ([]string, error)

	// Close releases the underlying document resources.
	Close() error
}

// File is a paged document handle backed by an in-memory PDF.
type File struct {
	raster *fitz.Document
	text   *pdf.Reader
	pages  int
}

// Open decodes the given bytes as a PDF document. A corrupt or encrypted
// container yields a *pipelineerror.DecodeError with no partial result.
func Open(data []byte) (*File, error) {
	raster, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, &pipelineerror.DecodeError{Reason: "unreadable container", Err: err}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		_ = raster.Close()
		return nil, &pipelineerror.DecodeError{Reason: "unreadable page tree", Err: err}
	}

	return &File{
		raster: raster,
		text:   reader,
		pages:  raster.NumPage(),
	}, nil
}

// PageCount returns the number of pages in the document.
func (f *File) PageCount() int {
	return f.pages
}

// Image rasterizes the page with the given 1-based index at the given scale.
func (f *File) Image(index int, scale float64) (image.Image, error) {
	if index < 1 || index > f.pages {
		return nil, fmt.Errorf("page index %d out of range [1,%d]", index, f.pages)
	}
	// go-fitz pages are 0-based; 72 DPI corresponds to scale 1.0
	img, err := f.raster.ImageDPI(index-1, 72*scale)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// TextRuns returns the text runs of the page with the given 1-based index in
// document order. Pages without embedded text yield an empty slice, not an
// error.
func (f *File) TextRuns(index int) ([]string, error) {
	if index < 1 || index > f.pages {
		return nil, fmt.Errorf("page index %d out of range [1,%d]", index, f.pages)
	}

	page := f.text.Page(index)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d has no content", index)
	}

	content := page.Content()
	runs := make([]string, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		runs = append(runs, t.S)
	}
	return runs, nil
}

// Close releases the underlying document resources.
func (f *File) Close() error {
	return f.raster.Close()
}
