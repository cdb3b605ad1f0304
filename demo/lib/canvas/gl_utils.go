package canvas

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"cubecam/demo/mesh"
)

func NewProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		kind := "vertex"
		if shaderType == gl.FRAGMENT_SHADER {
			kind = "fragment"
		}
		return 0, fmt.Errorf("failed to compile %s shader: %v", kind, strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

// TextureOptions controls sampling of an uploaded texture.
type TextureOptions struct {
	Repeat  bool
	Mipmaps bool
}

// NewTexture uploads an RGBA image. Rows are used as stored, flip them
// beforehand if the image is top-down.
func NewTexture(rgba *image.RGBA, opts TextureOptions) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	wrap := int32(gl.CLAMP_TO_EDGE)
	if opts.Repeat {
		wrap = gl.REPEAT
	}
	minFilter := int32(gl.LINEAR)
	if opts.Mipmaps {
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	uploadTexture(rgba)
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// UpdateTexture replaces the contents of texture with rgba, resizing it.
func UpdateTexture(texture uint32, rgba *image.RGBA) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
	uploadTexture(rgba)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func uploadTexture(rgba *image.RGBA) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix))
}

func BindTexture(unit uint32, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

// VertexArray is a VAO with its single interleaved VBO.
type VertexArray struct {
	vao, vbo uint32
	count    int32
}

func MakeVao(data mesh.Data) *VertexArray {
	va := &VertexArray{count: data.Count()}

	gl.GenVertexArrays(1, &va.vao)
	gl.GenBuffers(1, &va.vbo)

	gl.BindVertexArray(va.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(data.Vertices), gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	stride := data.Layout.Stride()
	for i, a := range data.Layout {
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, stride, gl.PtrOffset(data.Layout.Offset(i)))
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindVertexArray(0)
	return va
}

func (va *VertexArray) Draw() {
	gl.BindVertexArray(va.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, va.count)
	gl.BindVertexArray(0)
}

func (va *VertexArray) Delete() {
	gl.DeleteVertexArrays(1, &va.vao)
	gl.DeleteBuffers(1, &va.vbo)
}
