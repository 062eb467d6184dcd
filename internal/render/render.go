// Package render rasterizes document pages into full-size images and thumbnails.
package render

import (
	"bytes"
	"image"
	"image/png"

	"golang.org/x/image/draw"

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

// DefaultScale is the render scale used when none is configured.
const DefaultScale = 1.5

// DefaultThumbnailSize is the target length of a thumbnail's longer side.
const DefaultThumbnailSize = 150

// Renderer turns a page handle into PNG raster bytes plus a thumbnail whose
// longer side measures ThumbnailSize pixels.
type Renderer struct {
	Scale         float64
	ThumbnailSize int
}

// New creates a Renderer, substituting defaults for non-positive parameters.
func New(scale float64, thumbnailSize int) *Renderer {
	if scale <= 0 {
		scale = DefaultScale
	}
	if thumbnailSize <= 0 {
		thumbnailSize = DefaultThumbnailSize
	}
	return &Renderer{Scale: scale, ThumbnailSize: thumbnailSize}
}

// Render rasterizes the 1-based page. Failure is scoped to the page and is
// reported as a *pipelineerror.PageRenderError carrying the page index.
func (r *Renderer) Render(src document.Source, index int) (full, thumbnail []byte, err error) {
	img, renderErr := src.Image(index, r.Scale)
	if renderErr != nil {
		return nil, nil, &pipelineerror.PageRenderError{Page: index, Err: renderErr}
	}

	full, encodeErr := encodePNG(img)
	if encodeErr != nil {
		return nil, nil, &pipelineerror.PageRenderError{Page: index, Err: encodeErr}
	}

	thumbnail, thumbErr := encodePNG(r.downscale(img))
	if thumbErr != nil {
		return nil, nil, &pipelineerror.PageRenderError{Page: index, Err: thumbErr}
	}

	log.Debug("Rendered page",
		logging.Field{Key: logging.FieldPage, Value: index},
		logging.Field{Key: logging.FieldScale, Value: r.Scale})

	return full, thumbnail, nil
}

// downscale shrinks img so its longer side equals ThumbnailSize. Images
// already smaller than the target are returned unchanged.
func (r *Renderer) downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	longer := w
	if h > longer {
		longer = h
	}
	if longer <= r.ThumbnailSize {
		return img
	}

	scale := float64(r.ThumbnailSize) / float64(longer)
	tw := int(float64(w) * scale)
	th := int(float64(h) * scale)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
