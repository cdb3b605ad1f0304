package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	l := Layout{{0, 3}, {1, 3}, {2, 2}}
	assert.Equal(t, int32(32), l.Stride())
	assert.Equal(t, 0, l.Offset(0))
	assert.Equal(t, 12, l.Offset(1))
	assert.Equal(t, 24, l.Offset(2))
}

func TestCubeCounts(t *testing.T) {
	assert.Equal(t, int32(36), TexturedCube().Count())
	assert.Equal(t, int32(36), LitCube().Count())
	assert.Equal(t, int32(6), Quad().Count())
	assert.Equal(t, int32(0), Data{}.Count())
}

func TestCubeVerticesInUnitBox(t *testing.T) {
	for _, d := range []Data{TexturedCube(), LitCube()} {
		per := int(d.Layout.Stride() / floatSize)
		for i := 0; i < len(d.Vertices); i += per {
			for _, c := range d.Vertices[i : i+3] {
				assert.Contains(t, []float32{-0.5, 0.5}, c)
			}
		}
	}
}

func TestLitCubeNormalsPointOutwards(t *testing.T) {
	d := LitCube()
	for i := 0; i < len(d.Vertices); i += 8 {
		p := mgl32.Vec3{d.Vertices[i], d.Vertices[i+1], d.Vertices[i+2]}
		n := mgl32.Vec3{d.Vertices[i+3], d.Vertices[i+4], d.Vertices[i+5]}
		assert.InDelta(t, 1, n.Len(), 1e-6)
		assert.InDelta(t, 0.5, p.Dot(n), 1e-6)
	}
}

func TestLightCube(t *testing.T) {
	d := LightCube()
	assert.Equal(t, Layout{{0, 3}}, d.Layout)
	assert.Equal(t, int32(36), d.Count())
	assert.Len(t, d.Vertices, 36*3)

	lit := LitCube()
	assert.Equal(t, lit.Vertices[8:11], d.Vertices[3:6])
}

func TestCopiesAreIndependent(t *testing.T) {
	a := TexturedCube()
	a.Vertices[0] = 42
	assert.Equal(t, float32(-0.5), TexturedCube().Vertices[0])
}

func TestCubePositions(t *testing.T) {
	assert.Len(t, CubePositions, 10)
	assert.Equal(t, mgl32.Vec3{}, CubePositions[0])
}
