package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedShaders(t *testing.T) {
	fsys := Shaders("")
	for _, name := range []string{ShaderTextured, ShaderLit, ShaderLight, ShaderHUD} {
		for _, file := range []string{VertexFile(name), FragmentFile(name)} {
			src, err := fs.ReadFile(fsys, file)
			require.NoError(t, err, file)
			assert.True(t, strings.HasPrefix(string(src), "#version 330 core"), file)
			assert.Contains(t, string(src), "void main()", file)
		}
	}
}

func TestMatrixUniformsDeclared(t *testing.T) {
	fsys := Shaders("")
	for _, name := range []string{ShaderTextured, ShaderLit, ShaderLight} {
		src, err := fs.ReadFile(fsys, VertexFile(name))
		require.NoError(t, err)
		for _, u := range []string{"uniform mat4 model;", "uniform mat4 view;", "uniform mat4 projection;"} {
			assert.Contains(t, string(src), u, name)
		}
	}
}

func TestShadersFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lit.frag"), []byte("custom"), 0o644))

	src, err := fs.ReadFile(Shaders(dir), FragmentFile(ShaderLit))
	require.NoError(t, err)
	assert.Equal(t, "custom", string(src))
}
