package images

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an image in any registered format and returns it as RGBA with
// the rows flipped, so the first row is the bottom of the picture as OpenGL
// expects for texture coordinates.
func Decode(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if rgba.Stride != rgba.Rect.Size().X*4 {
		return nil, fmt.Errorf("unsupported stride")
	}
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	FlipVertical(rgba)
	return rgba, nil
}

func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture %q not found on disk: %w", path, err)
	}
	defer f.Close()
	rgba, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return rgba, nil
}

// FlipVertical swaps the rows of img in place.
func FlipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Rect.Dx()*4)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+len(row)]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+len(row)]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// Checker draws a size x size checkerboard with cells squares per side. It
// stands in for textures that are missing on disk.
func Checker(size, cells int, a, b color.RGBA) *image.RGBA {
	if cells <= 0 {
		cells = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// LoadOr loads path and falls back to a checkerboard when it cannot.
func LoadOr(path string, a, b color.RGBA) (*image.RGBA, error) {
	img, err := Load(path)
	if err != nil {
		return Checker(256, 8, a, b), err
	}
	return img, nil
}
