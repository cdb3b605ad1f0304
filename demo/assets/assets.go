package assets

import (
	"embed"
	"io/fs"
	"os"
)

// Shader program names. Each has a <name>.vert and <name>.frag file.
const (
	ShaderTextured = "textured"
	ShaderLit      = "lit"
	ShaderLight    = "light"
	ShaderHUD      = "hud"
)

//go:embed shaders
var embedded embed.FS

// Shaders returns dir on disk when set, otherwise the shaders built into
// the binary.
func Shaders(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(embedded, "shaders")
	if err != nil {
		panic(err)
	}
	return sub
}

func VertexFile(name string) string   { return name + ".vert" }
func FragmentFile(name string) string { return name + ".frag" }
