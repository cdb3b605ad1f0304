package canvas

import (
	"fmt"
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a linked program loaded from a vertex and a fragment file.
type Shader struct {
	ID uint32

	fsys     fs.FS
	vertName string
	fragName string

	uniforms map[string]int32
}

func LoadShader(fsys fs.FS, vertName, fragName string) (*Shader, error) {
	s := &Shader{fsys: fsys, vertName: vertName, fragName: fragName}
	id, err := s.build()
	if err != nil {
		return nil, err
	}
	s.ID = id
	s.uniforms = make(map[string]int32)
	return s, nil
}

func (s *Shader) build() (uint32, error) {
	vert, err := fs.ReadFile(s.fsys, s.vertName)
	if err != nil {
		return 0, fmt.Errorf("read vertex shader %s: %w", s.vertName, err)
	}
	frag, err := fs.ReadFile(s.fsys, s.fragName)
	if err != nil {
		return 0, fmt.Errorf("read fragment shader %s: %w", s.fragName, err)
	}
	id, err := NewProgram(string(vert), string(frag))
	if err != nil {
		return 0, fmt.Errorf("%s/%s: %w", s.vertName, s.fragName, err)
	}
	return id, nil
}

// Files returns the vertex and fragment file names inside the shader FS.
func (s *Shader) Files() (vert, frag string) {
	return s.vertName, s.fragName
}

// Reload rebuilds the program from its files. On failure the old program
// stays in use.
func (s *Shader) Reload() error {
	id, err := s.build()
	if err != nil {
		return err
	}
	gl.DeleteProgram(s.ID)
	s.ID = id
	s.uniforms = make(map[string]int32)
	return nil
}

func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

func (s *Shader) SetInt(name string, v int32) {
	gl.Uniform1i(s.location(name), v)
}

func (s *Shader) SetFloat(name string, v float32) {
	gl.Uniform1f(s.location(name), v)
}

func (s *Shader) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2fv(s.location(name), 1, &v[0])
}

func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &v[0])
}

func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(s.location(name), 1, &v[0])
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}
