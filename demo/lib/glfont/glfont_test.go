package glfont

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func inked(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestRender(t *testing.T) {
	f, err := LoadFont(nil, 16)
	require.NoError(t, err)

	img, err := f.Render([]string{"pos 0.00 0.00 5.00", "yaw -90.0 pitch 0.0"}, color.White)
	require.NoError(t, err)

	assert.Equal(t, f.Measure([]string{"pos 0.00 0.00 5.00", "yaw -90.0 pitch 0.0"}), img.Bounds().Size())
	assert.Equal(t, 2*f.LineHeight()+8, img.Bounds().Dy())
	assert.Greater(t, inked(img), 50)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
}

func TestMeasureGrowsWithText(t *testing.T) {
	f, err := LoadFont(goregular.TTF, 14)
	require.NoError(t, err)

	short := f.Measure([]string{"fps"})
	long := f.Measure([]string{"fps 60.0 frame 16.6ms"})
	assert.Greater(t, long.X, short.X)
	assert.Equal(t, short.Y, long.Y)
}

func TestRenderEmpty(t *testing.T) {
	f, err := LoadFont(nil, 12)
	require.NoError(t, err)
	_, err = f.Render(nil, color.White)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestLoadFontErrors(t *testing.T) {
	_, err := LoadFont([]byte("not a font"), 12)
	assert.Error(t, err)

	_, err = LoadFont(nil, 0)
	assert.Error(t, err)
}
