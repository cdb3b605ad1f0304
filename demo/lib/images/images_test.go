package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// twoRows is 3x2: red on top, blue below.
func twoRows() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for x := 0; x < 3; x++ {
		img.Set(x, 0, red)
		img.Set(x, 1, blue)
	}
	return img
}

func TestDecodeFlipsRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, twoRows()))

	rgba, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), rgba.Bounds())
	assert.Equal(t, blue, rgba.RGBAAt(0, 0))
	assert.Equal(t, red, rgba.RGBAAt(2, 1))
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, twoRows()))

	rgba, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, blue, rgba.RGBAAt(1, 0))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestFlipVerticalOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(0, 1, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 2, blue)

	FlipVertical(img)
	assert.Equal(t, blue, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, img.RGBAAt(0, 1))
	assert.Equal(t, red, img.RGBAAt(0, 2))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, twoRows()))
	require.NoError(t, f.Close())

	rgba, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, rgba.Bounds().Dx())
}

func TestLoadOrFallsBack(t *testing.T) {
	img, err := LoadOr(filepath.Join(t.TempDir(), "missing.jpg"), red, blue)
	assert.Error(t, err)
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())
}

func TestChecker(t *testing.T) {
	img := Checker(4, 2, red, blue)
	assert.Equal(t, red, img.RGBAAt(0, 0))
	assert.Equal(t, red, img.RGBAAt(1, 1))
	assert.Equal(t, blue, img.RGBAAt(2, 0))
	assert.Equal(t, blue, img.RGBAAt(0, 3))
	assert.Equal(t, red, img.RGBAAt(3, 3))
}
