package glfont

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var ErrNoText = errors.New("no text to render")

// Font rasterizes lines of text into RGBA images that can be uploaded as
// textures.
type Font struct {
	ttf     *truetype.Font
	size    float64
	face    font.Face
	padding int
}

// LoadFont parses a TrueType font. A nil ttf selects the embedded Go Mono.
func LoadFont(ttf []byte, size float64) (*Font, error) {
	if ttf == nil {
		ttf = gomono.TTF
	}
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if size <= 0 {
		return nil, fmt.Errorf("font size %v", size)
	}
	return &Font{
		ttf:     f,
		size:    size,
		face:    truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}),
		padding: 4,
	}, nil
}

// LineHeight is the distance between two baselines in pixels.
func (f *Font) LineHeight() int {
	return int(math.Ceil(f.size * 1.25))
}

// Measure returns the pixel size of the image Render would produce.
func (f *Font) Measure(lines []string) image.Point {
	var width fixed.Int26_6
	for _, l := range lines {
		if w := font.MeasureString(f.face, l); w > width {
			width = w
		}
	}
	return image.Pt(width.Ceil()+2*f.padding, len(lines)*f.LineHeight()+2*f.padding)
}

// Render draws lines top to bottom in fg over a transparent background.
func (f *Font) Render(lines []string, fg color.Color) (*image.RGBA, error) {
	if len(lines) == 0 {
		return nil, ErrNoText
	}
	size := f.Measure(lines)
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f.ttf)
	c.SetFontSize(f.size)
	c.SetClip(dst.Bounds())
	c.SetDst(dst)
	c.SetSrc(image.NewUniform(fg))
	c.SetHinting(font.HintingFull)

	ascent := f.face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		pt := freetype.Pt(f.padding, f.padding+ascent+i*f.LineHeight())
		if _, err := c.DrawString(l, pt); err != nil {
			return nil, fmt.Errorf("draw %q: %w", l, err)
		}
	}
	return dst, nil
}
