package gui

import (
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cubecam/demo/input"
)

var keyNames = map[string]glfw.Key{
	"SPACE":        glfw.KeySpace,
	"TAB":          glfw.KeyTab,
	"ENTER":        glfw.KeyEnter,
	"UP":           glfw.KeyUp,
	"DOWN":         glfw.KeyDown,
	"LEFT":         glfw.KeyLeft,
	"RIGHT":        glfw.KeyRight,
	"LEFTSHIFT":    glfw.KeyLeftShift,
	"RIGHTSHIFT":   glfw.KeyRightShift,
	"LEFTCONTROL":  glfw.KeyLeftControl,
	"RIGHTCONTROL": glfw.KeyRightControl,
}

func init() {
	for i := 0; i < 26; i++ {
		keyNames[string(rune('A'+i))] = glfw.KeyA + glfw.Key(i)
	}
	for i := 0; i < 10; i++ {
		keyNames[string(rune('0'+i))] = glfw.Key0 + glfw.Key(i)
	}
}

// LookupKey resolves a binding name such as "W" or "LeftShift".
func LookupKey(name string) (glfw.Key, bool) {
	k, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]
	return k, ok
}

// windowKeys reports the held state of bound keys by polling the window.
type windowKeys struct {
	window *glfw.Window
	keys   map[string]glfw.Key
}

var _ input.KeySource = (*windowKeys)(nil)

func newWindowKeys(window *glfw.Window, b input.Bindings) (*windowKeys, error) {
	k := &windowKeys{window: window, keys: make(map[string]glfw.Key)}
	for _, name := range b.Keys() {
		key, ok := LookupKey(name)
		if !ok {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		k.keys[name] = key
	}
	return k, nil
}

func (k *windowKeys) Pressed(name string) bool {
	key, ok := k.keys[name]
	return ok && k.window.GetKey(key) == glfw.Press
}
