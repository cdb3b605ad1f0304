package gui

import (
	"fmt"
	"image/color"
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"cubecam/demo/assets"
	"cubecam/demo/config"
	"cubecam/demo/frame"
	"cubecam/demo/lib/canvas"
	"cubecam/demo/lib/images"
	"cubecam/demo/mesh"
)

// Scene draws the world with the matrices of the current frame.
type Scene interface {
	Render(elapsed float32, m frame.Matrices)
	Shaders() []*canvas.Shader
	Delete()
}

func NewScene(cfg *config.Config, fsys fs.FS, log *zap.Logger) (Scene, error) {
	switch cfg.Scene.Mode {
	case config.SceneTextured:
		return newTexturedScene(cfg, fsys, log)
	case config.SceneLit:
		return newLitScene(cfg, fsys, log)
	}
	return nil, fmt.Errorf("%w: unknown scene %q", config.ErrInvalid, cfg.Scene.Mode)
}

var (
	checkerDark  = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	checkerLight = color.RGBA{R: 0xd0, G: 0xa0, B: 0x40, A: 0xff}
)

// loadTexture uploads path, or a checkerboard when it cannot be read so a
// missing asset does not stop the demo.
func loadTexture(path string, log *zap.Logger) uint32 {
	img, err := images.LoadOr(path, checkerDark, checkerLight)
	if err != nil {
		log.Warn("texture fallback", zap.String("path", path), zap.Error(err))
	}
	return canvas.NewTexture(img, canvas.TextureOptions{Repeat: true, Mipmaps: true})
}

func loadShader(fsys fs.FS, name string) (*canvas.Shader, error) {
	return canvas.LoadShader(fsys, assets.VertexFile(name), assets.FragmentFile(name))
}

// texturedScene is one spinning cube blending two textures.
type texturedScene struct {
	shader   *canvas.Shader
	cube     *canvas.VertexArray
	texture1 uint32
	texture2 uint32
	spin     *frame.Spin
}

func newTexturedScene(cfg *config.Config, fsys fs.FS, log *zap.Logger) (*texturedScene, error) {
	shader, err := loadShader(fsys, assets.ShaderTextured)
	if err != nil {
		return nil, err
	}
	return &texturedScene{
		shader:   shader,
		cube:     canvas.MakeVao(mesh.TexturedCube()),
		texture1: loadTexture(cfg.Assets.Texture1, log),
		texture2: loadTexture(cfg.Assets.Texture2, log),
		spin:     frame.NewSpin(cfg.Scene.RotationSpeed),
	}, nil
}

func (s *texturedScene) Render(elapsed float32, m frame.Matrices) {
	model := s.spin.Advance(elapsed)

	s.shader.Use()
	s.shader.SetInt("texture1", 0)
	s.shader.SetInt("texture2", 1)
	s.shader.SetFloat("mixValue", 0.2)
	s.shader.SetMat4("projection", m.Projection)
	s.shader.SetMat4("view", m.View)
	s.shader.SetMat4("model", model)

	canvas.BindTexture(0, s.texture1)
	canvas.BindTexture(1, s.texture2)
	s.cube.Draw()
}

func (s *texturedScene) Shaders() []*canvas.Shader {
	return []*canvas.Shader{s.shader}
}

func (s *texturedScene) Delete() {
	s.cube.Delete()
	canvas.DeleteTexture(s.texture1)
	canvas.DeleteTexture(s.texture2)
	s.shader.Delete()
}

// litScene is a field of boxes lit by one point light with attenuation.
type litScene struct {
	shader      *canvas.Shader
	lampShader  *canvas.Shader
	cube        *canvas.VertexArray
	lamp        *canvas.VertexArray
	diffuseMap  uint32
	specularMap uint32
	spin        *frame.Spin
	lightPos    mgl32.Vec3
}

func newLitScene(cfg *config.Config, fsys fs.FS, log *zap.Logger) (*litScene, error) {
	shader, err := loadShader(fsys, assets.ShaderLit)
	if err != nil {
		return nil, err
	}
	lampShader, err := loadShader(fsys, assets.ShaderLight)
	if err != nil {
		shader.Delete()
		return nil, err
	}
	return &litScene{
		shader:      shader,
		lampShader:  lampShader,
		cube:        canvas.MakeVao(mesh.LitCube()),
		lamp:        canvas.MakeVao(mesh.LightCube()),
		diffuseMap:  loadTexture(cfg.Assets.DiffuseMap, log),
		specularMap: loadTexture(cfg.Assets.SpecularMap, log),
		spin:        frame.NewSpin(cfg.Scene.RotationSpeed),
		lightPos:    mgl32.Vec3{1.2, 1.0, 2.0},
	}, nil
}

func (s *litScene) Render(elapsed float32, m frame.Matrices) {
	s.spin.Advance(elapsed)

	s.shader.Use()
	s.shader.SetVec3("viewPos", m.Eye)
	s.shader.SetInt("material.diffuse", 0)
	s.shader.SetInt("material.specular", 1)
	s.shader.SetFloat("material.shininess", 32)
	s.shader.SetVec3("light.position", s.lightPos)
	s.shader.SetVec3("light.ambient", mgl32.Vec3{0.2, 0.2, 0.2})
	s.shader.SetVec3("light.diffuse", mgl32.Vec3{0.5, 0.5, 0.5})
	s.shader.SetVec3("light.specular", mgl32.Vec3{1, 1, 1})
	s.shader.SetFloat("light.constant", 1)
	s.shader.SetFloat("light.linear", 0.09)
	s.shader.SetFloat("light.quadratic", 0.032)
	s.shader.SetMat4("projection", m.Projection)
	s.shader.SetMat4("view", m.View)

	canvas.BindTexture(0, s.diffuseMap)
	canvas.BindTexture(1, s.specularMap)
	axis := s.spin.Axis.Normalize()
	for i, pos := range mesh.CubePositions {
		angle := mgl32.DegToRad(20*float32(i) + s.spin.Angle)
		model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(mgl32.HomogRotate3D(angle, axis))
		s.shader.SetMat4("model", model)
		s.cube.Draw()
	}

	s.lampShader.Use()
	s.lampShader.SetVec3("lightColor", mgl32.Vec3{1, 1, 1})
	s.lampShader.SetMat4("projection", m.Projection)
	s.lampShader.SetMat4("view", m.View)
	model := mgl32.Translate3D(s.lightPos.X(), s.lightPos.Y(), s.lightPos.Z()).Mul4(mgl32.Scale3D(0.2, 0.2, 0.2))
	s.lampShader.SetMat4("model", model)
	s.lamp.Draw()
}

func (s *litScene) Shaders() []*canvas.Shader {
	return []*canvas.Shader{s.shader, s.lampShader}
}

func (s *litScene) Delete() {
	s.cube.Delete()
	s.lamp.Delete()
	canvas.DeleteTexture(s.diffuseMap)
	canvas.DeleteTexture(s.specularMap)
	s.shader.Delete()
	s.lampShader.Delete()
}
