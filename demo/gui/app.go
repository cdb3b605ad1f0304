package gui

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"cubecam/camera"
	"cubecam/demo/assets"
	"cubecam/demo/config"
	"cubecam/demo/frame"
	"cubecam/demo/input"
	"cubecam/demo/lib/canvas"
	"cubecam/demo/lib/watch"
)

// App owns the window and everything that lives on the render thread.
type App struct {
	cfg    *config.Config
	log    *zap.Logger
	window *glfw.Window

	camera   *camera.Camera
	bindings input.Bindings
	keys     *windowKeys
	mouse    input.Mouse
	clock    *frame.Clock
	fps      frame.FPS
	frameMs  frame.History
	proj     frame.Projection
	width    int
	height   int

	scene Scene
	hud   *HUD

	watcher *watch.Watcher
	byPath  map[string][]*canvas.Shader
}

// Run opens the window and renders until it is closed. It must be called
// from the main thread.
func Run(cfg *config.Config, log *zap.Logger) error {
	if err := InitGui(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := CreateWindow(cfg.Window, log)
	if err != nil {
		return err
	}
	defer window.Destroy()

	app, err := NewApp(cfg, log, window)
	if err != nil {
		return err
	}
	defer app.Close()
	app.Loop()
	return nil
}

func NewApp(cfg *config.Config, log *zap.Logger, window *glfw.Window) (*App, error) {
	bindings, err := input.NewBindings(cfg.Input)
	if err != nil {
		return nil, err
	}
	keys, err := newWindowKeys(window, bindings)
	if err != nil {
		return nil, err
	}
	a := &App{
		cfg:      cfg,
		log:      log,
		window:   window,
		camera:   cfg.NewCamera(),
		bindings: bindings,
		keys:     keys,
		fps:      frame.FPS{Window: 0.5},
	}

	shaders := assets.Shaders(cfg.Assets.ShaderDir)
	if a.scene, err = NewScene(cfg, shaders, log); err != nil {
		return nil, err
	}
	if cfg.Scene.HUD {
		if a.hud, err = NewHUD(shaders); err != nil {
			a.scene.Delete()
			return nil, err
		}
	}
	if cfg.Assets.HotReload {
		if err = a.watchShaders(); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.resize(window.GetFramebufferSize())
	a.registerEvent()
	a.clock = frame.NewClock(glfw.GetTime)
	log.Info("scene ready",
		zap.String("scene", config.SceneDesc(cfg.Scene.Mode)),
		zap.Strings("keys", bindings.Keys()),
		zap.Bool("hot_reload", cfg.Assets.HotReload),
	)
	return a, nil
}

func (a *App) Loop() {
	for !a.window.ShouldClose() {
		a.Frame()
		a.window.SwapBuffers()
		glfw.PollEvents()
	}
}

// Frame renders one frame. Keyboard movement is applied before the
// orientation update, then the view is computed from the new state.
func (a *App) Frame() {
	elapsed := a.clock.Tick()
	a.reloadShaders()

	dx, dy, moved := a.mouse.Take()
	m := frame.Step(a.camera, elapsed, frame.Input{
		Intents:    a.bindings.Intents(a.keys),
		MouseDX:    dx,
		MouseDY:    dy,
		MouseMoved: moved,
	}, a.proj)

	c := a.cfg.ClearColor()
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	a.scene.Render(elapsed, m)

	a.frameMs.Add(elapsed * 1000)
	if a.fps.Add(elapsed) {
		a.log.Debug("frame rate", zap.Float32("fps", a.fps.Value()))
	}
	if a.hud != nil {
		if err := a.hud.Update(elapsed, a.camera, a.fps.Value(), &a.frameMs); err != nil {
			a.log.Warn("hud", zap.Error(err))
		}
		a.hud.Draw(a.width, a.height)
	}
}

func (a *App) resize(width, height int) {
	if width <= 0 || height <= 0 {
		// minimized
		return
	}
	a.width, a.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	a.proj = frame.NewProjection(width, height)
	a.proj.Near, a.proj.Far = a.cfg.Projection.Near, a.cfg.Projection.Far
}

func (a *App) shaders() []*canvas.Shader {
	list := a.scene.Shaders()
	if a.hud != nil {
		list = append(list, a.hud.Shader())
	}
	return list
}

func (a *App) watchShaders() error {
	w, err := watch.New(a.log)
	if err != nil {
		return fmt.Errorf("watch shaders: %w", err)
	}
	a.watcher = w
	a.byPath = make(map[string][]*canvas.Shader)
	for _, s := range a.shaders() {
		vert, frag := s.Files()
		for _, name := range []string{vert, frag} {
			path, err := filepath.Abs(filepath.Join(a.cfg.Assets.ShaderDir, filepath.FromSlash(name)))
			if err != nil {
				return err
			}
			if _, ok := a.byPath[path]; !ok {
				if err = w.Add(path); err != nil {
					return fmt.Errorf("watch %s: %w", path, err)
				}
			}
			a.byPath[path] = append(a.byPath[path], s)
		}
	}
	return nil
}

func (a *App) reloadShaders() {
	if a.watcher == nil {
		return
	}
	reloaded := make(map[*canvas.Shader]bool)
	for _, path := range a.watcher.Drain() {
		for _, s := range a.byPath[path] {
			if reloaded[s] {
				continue
			}
			reloaded[s] = true
			vert, frag := s.Files()
			if err := s.Reload(); err != nil {
				a.log.Warn("shader reload failed, keeping previous program",
					zap.String("vertex", vert), zap.String("fragment", frag), zap.Error(err))
				continue
			}
			a.log.Info("shader reloaded", zap.String("vertex", vert), zap.String("fragment", frag))
		}
	}
}

func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("close watcher", zap.Error(err))
		}
		a.watcher = nil
	}
	if a.hud != nil {
		a.hud.Delete()
		a.hud = nil
	}
	if a.scene != nil {
		a.scene.Delete()
		a.scene = nil
	}
}
