package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/pipelineerror"
)

type fakeSource struct {
	img image.Image
	err error
}

func (f *fakeSource) PageCount() int { return 1 }
func (f *fakeSource) Image(index int, scale float64) (image.Image, error) {
	return f.img, f.err
}
func (f *fakeSource) TextRuns(index int) ([]string, error) { return nil, nil }
func (f *fakeSource) Close() error                         { return nil }

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestRenderProducesFullImageAndThumbnail(t *testing.T) {
	src := &fakeSource{img: image.NewRGBA(image.Rect(0, 0, 300, 200))}
	r := New(1.5, 150)

	full, thumbnail, err := r.Render(src, 1)
	require.NoError(t, err)

	fullImg := decodePNG(t, full)
	assert.Equal(t, 300, fullImg.Bounds().Dx())
	assert.Equal(t, 200, fullImg.Bounds().Dy())

	thumbImg := decodePNG(t, thumbnail)
	assert.Equal(t, 150, thumbImg.Bounds().Dx(), "longer side shrinks to the target")
	assert.Equal(t, 100, thumbImg.Bounds().Dy(), "aspect ratio is preserved")
}

func TestRenderPortraitThumbnail(t *testing.T) {
	src := &fakeSource{img: image.NewRGBA(image.Rect(0, 0, 100, 400))}
	r := New(1.0, 200)

	_, thumbnail, err := r.Render(src, 1)
	require.NoError(t, err)

	thumbImg := decodePNG(t, thumbnail)
	assert.Equal(t, 50, thumbImg.Bounds().Dx())
	assert.Equal(t, 200, thumbImg.Bounds().Dy())
}

func TestRenderSmallImageNotUpscaled(t *testing.T) {
	src := &fakeSource{img: image.NewRGBA(image.Rect(0, 0, 80, 60))}
	r := New(1.0, 150)

	_, thumbnail, err := r.Render(src, 1)
	require.NoError(t, err)

	thumbImg := decodePNG(t, thumbnail)
	assert.Equal(t, 80, thumbImg.Bounds().Dx())
	assert.Equal(t, 60, thumbImg.Bounds().Dy())
}

func TestRenderFailureCarriesPageIndex(t *testing.T) {
	src := &fakeSource{err: errors.New("raster boom")}
	r := New(1.5, 150)

	_, _, err := r.Render(src, 7)
	require.Error(t, err)

	var pageErr *pipelineerror.PageRenderError
	require.ErrorAs(t, err, &pageErr)
	assert.Equal(t, 7, pageErr.Page)
}

func TestNewSubstitutesDefaults(t *testing.T) {
	r := New(0, 0)
	assert.Equal(t, DefaultScale, r.Scale)
	assert.Equal(t, DefaultThumbnailSize, r.ThumbnailSize)
}
