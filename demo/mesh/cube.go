package mesh

import "github.com/go-gl/mathgl/mgl32"

const floatSize = 4

// Attrib is one vertex attribute: the shader location and component count.
type Attrib struct {
	Location uint32
	Size     int32
}

// Layout describes interleaved float32 vertices.
type Layout []Attrib

// Stride is the size of one vertex in bytes.
func (l Layout) Stride() int32 {
	var n int32
	for _, a := range l {
		n += a.Size
	}
	return n * floatSize
}

// Offset is the byte offset of attribute i inside a vertex.
func (l Layout) Offset(i int) int {
	var n int32
	for _, a := range l[:i] {
		n += a.Size
	}
	return int(n * floatSize)
}

// Data is interleaved vertex data plus its layout.
type Data struct {
	Vertices []float32
	Layout   Layout
}

// Count is the number of vertices.
func (d Data) Count() int32 {
	per := d.Layout.Stride() / floatSize
	if per == 0 {
		return 0
	}
	return int32(len(d.Vertices)) / per
}

// Positions copies the first attribute (location 0) of every vertex into a
// tightly packed buffer.
func (d Data) Positions() Data {
	if len(d.Layout) == 0 {
		return d
	}
	per := int(d.Layout.Stride() / floatSize)
	size := int(d.Layout[0].Size)
	out := make([]float32, 0, int(d.Count())*size)
	for i := 0; i+per <= len(d.Vertices); i += per {
		out = append(out, d.Vertices[i:i+size]...)
	}
	return Data{
		Vertices: out,
		Layout:   Layout{{d.Layout[0].Location, d.Layout[0].Size}},
	}
}

// TexturedCube is a unit cube as 12 triangles: position(0) xyz, uv(1).
func TexturedCube() Data {
	return Data{
		Vertices: append([]float32(nil), texturedCube...),
		Layout:   Layout{{0, 3}, {1, 2}},
	}
}

// LitCube is a unit cube: position(0) xyz, normal(1) xyz, uv(2).
func LitCube() Data {
	return Data{
		Vertices: append([]float32(nil), litCube...),
		Layout:   Layout{{0, 3}, {1, 3}, {2, 2}},
	}
}

// LightCube is the position-only cube drawn at the light source.
func LightCube() Data {
	return LitCube().Positions()
}

// CubePositions are the world positions of the cubes in the lit scene.
var CubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

var texturedCube = []float32{
	// front
	-0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,

	// back
	-0.5, -0.5, -0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0,

	// left
	-0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, 0.5, 1.0, 0.0,

	// right
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,

	// bottom
	-0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,

	// top
	-0.5, 0.5, -0.5, 0.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
}

var litCube = []float32{
	// positions          // normals           // texture coords
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,

	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,

	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 1.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,

	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,

	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,

	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
}

// Quad is a unit square in [0,1]^2 for screen-space overlays: position(0)
// xy, uv(1). v runs downwards so images uploaded top row first appear upright.
func Quad() Data {
	return Data{
		Vertices: []float32{
			0, 0, 0, 0,
			1, 0, 1, 0,
			1, 1, 1, 1,
			1, 1, 1, 1,
			0, 1, 0, 1,
			0, 0, 0, 0,
		},
		Layout: Layout{{0, 2}, {1, 2}},
	}
}
