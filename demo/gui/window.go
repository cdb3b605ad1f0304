package gui

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"cubecam/demo/config"
)

func InitGui() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	return nil
}

// CreateWindow opens the window, makes its context current and loads the GL
// entry points. The cursor is captured so mouse motion is unbounded.
func CreateWindow(cfg config.WindowConfig, log *zap.Logger) (*glfw.Window, error) {
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if err = gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	log.Info("window created",
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return window, nil
}

func (a *App) registerEvent() {
	a.window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		a.mouse.Move(x, y)
	})
	a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	a.window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		// the cursor jumps while unfocused
		if focused {
			a.mouse.Reset()
		}
	})
	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.resize(width, height)
	})
	a.window.SetCloseCallback(func(w *glfw.Window) {
		a.log.Info("shutting down")
	})
}
