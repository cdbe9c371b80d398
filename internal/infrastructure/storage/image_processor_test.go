package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	p := NewImageProcessor(5 * 1024 * 1024)

	assert.NoError(t, p.ValidateImage(encodePNG(t, 10, 10)))
}

func TestValidateImage_RejectsOversize(t *testing.T) {
	p := NewImageProcessor(64)

	err := p.ValidateImage(encodePNG(t, 100, 100))
	assert.Error(t, err)
}

func TestValidateImage_RejectsNonImage(t *testing.T) {
	p := NewImageProcessor(5 * 1024 * 1024)

	err := p.ValidateImage([]byte("%PDF-1.4 definitely not an image"))
	assert.Error(t, err)
}

func TestProcessImage(t *testing.T) {
	p := NewImageProcessor(5 * 1024 * 1024)

	variants, err := p.ProcessImage(encodePNG(t, 2000, 1000))
	require.NoError(t, err)
	require.Len(t, variants, 3)

	sizes := map[string]int{"large": 1200, "medium": 600, "thumbnail": 300}
	for name, max := range sizes {
		body, ok := variants[name]
		require.True(t, ok, name)

		img, err := jpeg.Decode(bytes.NewReader(body))
		require.NoError(t, err, name)

		bounds := img.Bounds()
		assert.LessOrEqual(t, bounds.Dx(), max, name)
		assert.LessOrEqual(t, bounds.Dy(), max, name)
	}
}

func TestProcessImage_NeverUpscalesBeyondFit(t *testing.T) {
	p := NewImageProcessor(5 * 1024 * 1024)

	variants, err := p.ProcessImage(encodePNG(t, 2400, 1200))
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(variants["large"]))
	require.NoError(t, err)

	// 2:1 aspect ratio is preserved when fitting into the 1200 box.
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}
