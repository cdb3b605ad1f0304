package gui

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"cubecam/camera"
	"cubecam/demo/input"
)

func TestLookupKey(t *testing.T) {
	for name, want := range map[string]glfw.Key{
		"W":         glfw.KeyW,
		"a":         glfw.KeyA,
		"Z":         glfw.KeyZ,
		"0":         glfw.Key0,
		"9":         glfw.Key9,
		"Up":        glfw.KeyUp,
		" space ":   glfw.KeySpace,
		"LeftShift": glfw.KeyLeftShift,
	} {
		got, ok := LookupKey(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := LookupKey("Hyper")
	assert.False(t, ok)
}

func TestDefaultBindingsResolve(t *testing.T) {
	for _, name := range input.DefaultBindings().Keys() {
		_, ok := LookupKey(name)
		assert.True(t, ok, name)
	}
}

func TestNewWindowKeysRejectsUnknown(t *testing.T) {
	b := input.DefaultBindings()
	b[camera.Forward] = "Hyper"
	_, err := newWindowKeys(nil, b)
	assert.ErrorContains(t, err, `"Hyper"`)
}
