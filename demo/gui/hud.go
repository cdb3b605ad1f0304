package gui

import (
	"image/color"
	"io/fs"

	"cubecam/camera"
	"cubecam/demo/assets"
	"cubecam/demo/frame"
	"cubecam/demo/lib/canvas"
	"cubecam/demo/lib/glfont"
)

const (
	hudFontSize = 14
	hudMargin   = 10
	hudRefresh  = 0.25 // seconds
)

var hudColor = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}

// HUD prints the camera state in the top-left corner. The text is only
// re-rasterized every hudRefresh seconds.
type HUD struct {
	font    *glfont.Font
	overlay *canvas.Overlay
	since   float32
	primed  bool
}

func NewHUD(fsys fs.FS) (*HUD, error) {
	font, err := glfont.LoadFont(nil, hudFontSize)
	if err != nil {
		return nil, err
	}
	overlay, err := canvas.NewOverlay(fsys, assets.VertexFile(assets.ShaderHUD), assets.FragmentFile(assets.ShaderHUD))
	if err != nil {
		return nil, err
	}
	return &HUD{font: font, overlay: overlay}, nil
}

func (h *HUD) Update(elapsed float32, cam *camera.Camera, fps float32, frameMs *frame.History) error {
	h.since += elapsed
	if h.primed && h.since < hudRefresh {
		return nil
	}
	h.since, h.primed = 0, true
	img, err := h.font.Render(frame.Status(cam, fps, frameMs), hudColor)
	if err != nil {
		return err
	}
	h.overlay.SetImage(img)
	return nil
}

func (h *HUD) Draw(screenW, screenH int) {
	h.overlay.Draw(hudMargin, hudMargin, screenW, screenH)
}

func (h *HUD) Shader() *canvas.Shader { return h.overlay.Shader() }

func (h *HUD) Delete() { h.overlay.Delete() }
