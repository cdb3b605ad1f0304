package frame

import (
	"github.com/go-gl/mathgl/mgl32"

	"cubecam/camera"
)

const (
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// Projection holds the caller-owned perspective parameters. The field of
// view comes from the camera.
type Projection struct {
	Aspect float32
	Near   float32
	Far    float32
}

func NewProjection(width, height int) Projection {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return Projection{Aspect: aspect, Near: DefaultNear, Far: DefaultFar}
}

func (p Projection) Matrix(fovDeg float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), p.Aspect, p.Near, p.Far)
}

// Input is what the window produced since the previous frame.
type Input struct {
	Intents    []camera.Movement
	MouseDX    float32
	MouseDY    float32
	MouseMoved bool
}

// Matrices is what the renderer consumes: clip = Projection * View * model * p.
type Matrices struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
}

// Step feeds one frame of input to the camera: keyboard movement first using
// the current basis, then at most one orientation update, then the matrices.
func Step(cam *camera.Camera, elapsed float32, in Input, proj Projection) Matrices {
	for _, m := range in.Intents {
		cam.ProcessKeyboard(m, elapsed)
	}
	if in.MouseMoved {
		cam.ProcessMouse(in.MouseDX, in.MouseDY)
	}
	return Matrices{
		View:       cam.ViewMatrix(),
		Projection: proj.Matrix(cam.Fov()),
		Eye:        cam.Position(),
	}
}

// Spin is the model rotation of the showcase cube, in degrees.
type Spin struct {
	Speed float32 // degrees per second
	Axis  mgl32.Vec3
	Angle float32
}

func NewSpin(speed float32) *Spin {
	return &Spin{Speed: speed, Axis: mgl32.Vec3{1, 0.3, 0.5}}
}

// Advance accumulates elapsed seconds and returns the model matrix.
func (s *Spin) Advance(elapsed float32) mgl32.Mat4 {
	s.Angle += elapsed * s.Speed
	return s.Model()
}

func (s *Spin) Model() mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(s.Angle), s.Axis.Normalize())
}
