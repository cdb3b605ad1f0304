package canvas

import (
	"image"
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"cubecam/demo/mesh"
)

// Overlay draws an RGBA image as a screen-space rectangle on top of the scene.
type Overlay struct {
	shader  *Shader
	quad    *VertexArray
	texture uint32
	size    image.Point
}

func NewOverlay(fsys fs.FS, vertName, fragName string) (*Overlay, error) {
	shader, err := LoadShader(fsys, vertName, fragName)
	if err != nil {
		return nil, err
	}
	o := &Overlay{
		shader: shader,
		quad:   MakeVao(mesh.Quad()),
	}
	o.texture = NewTexture(image.NewRGBA(image.Rect(0, 0, 1, 1)), TextureOptions{})
	return o, nil
}

func (o *Overlay) Shader() *Shader { return o.shader }

// SetImage replaces the overlay contents. The first row of img is drawn at
// the top.
func (o *Overlay) SetImage(img *image.RGBA) {
	UpdateTexture(o.texture, img)
	o.size = img.Bounds().Size()
}

// Draw renders the image with its top-left corner at (x, y) pixels.
func (o *Overlay) Draw(x, y float32, screenW, screenH int) {
	if o.size.X == 0 || o.size.Y == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetVec4("rect", mgl32.Vec4{x, y, float32(o.size.X), float32(o.size.Y)})
	o.shader.SetVec2("screen", mgl32.Vec2{float32(screenW), float32(screenH)})
	o.shader.SetInt("text", 0)
	BindTexture(0, o.texture)
	o.quad.Draw()

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (o *Overlay) Delete() {
	o.quad.Delete()
	DeleteTexture(o.texture)
	o.shader.Delete()
}
