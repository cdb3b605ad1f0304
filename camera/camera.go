package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cubecam/common"
)

// MaxPitch keeps front away from worldUp so the cross product that derives
// right never degenerates.
const MaxPitch = 89.0

const (
	DefaultYaw              = -90.0
	DefaultPitch            = 0.0
	DefaultMovementSpeed    = 2.5
	DefaultMouseSensitivity = 0.5
	DefaultFov              = 45.0
)

var (
	DefaultPosition = mgl32.Vec3{0, 0, 5}
	DefaultWorldUp  = mgl32.Vec3{0, 1, 0}
)

// Options holds the tunables that are not part of the camera pose.
type Options struct {
	MovementSpeed    float32 // world units per second
	MouseSensitivity float32 // degrees per device unit
	Fov              float32 // degrees, read by the projection
}

func DefaultOptions() Options {
	return Options{
		MovementSpeed:    DefaultMovementSpeed,
		MouseSensitivity: DefaultMouseSensitivity,
		Fov:              DefaultFov,
	}
}

// Camera is a yaw/pitch free-fly camera. front, right and up are re-derived
// after every orientation change and are orthonormal whenever a method returns.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32

	movementSpeed    float32
	mouseSensitivity float32
	fov              float32
}

// New creates a camera at position looking along yaw/pitch (degrees).
// pitch is clamped to [-MaxPitch, MaxPitch].
func New(position, worldUp mgl32.Vec3, yaw, pitch float32, opts Options) *Camera {
	c := &Camera{
		position:         position,
		front:            mgl32.Vec3{0, 0, -1},
		up:               worldUp,
		worldUp:          worldUp,
		yaw:              yaw,
		pitch:            common.Clamp(pitch, -MaxPitch, MaxPitch),
		movementSpeed:    opts.MovementSpeed,
		mouseSensitivity: opts.MouseSensitivity,
		fov:              opts.Fov,
	}
	c.updateVectors()
	return c
}

func NewDefault() *Camera {
	return New(DefaultPosition, DefaultWorldUp, DefaultYaw, DefaultPitch, DefaultOptions())
}

func (c *Camera) Position() mgl32.Vec3      { return c.position }
func (c *Camera) Front() mgl32.Vec3         { return c.front }
func (c *Camera) Up() mgl32.Vec3            { return c.up }
func (c *Camera) Right() mgl32.Vec3         { return c.right }
func (c *Camera) WorldUp() mgl32.Vec3       { return c.worldUp }
func (c *Camera) Yaw() float32              { return c.yaw }
func (c *Camera) Pitch() float32            { return c.pitch }
func (c *Camera) MovementSpeed() float32    { return c.movementSpeed }
func (c *Camera) MouseSensitivity() float32 { return c.mouseSensitivity }
func (c *Camera) Fov() float32              { return c.fov }

// ViewMatrix returns lookAt(position, position+front, up) in column-major order.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProcessKeyboard moves the camera along the basis of the last orientation
// update. elapsed is not clamped, a long frame produces a long step.
func (c *Camera) ProcessKeyboard(direction Movement, elapsed float32) {
	velocity := c.movementSpeed * elapsed
	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	}
}

// ProcessMouse applies raw pointer deltas. A positive yOffset (pointer moving
// down) lowers the pitch.
func (c *Camera) ProcessMouse(xOffset, yOffset float32) {
	xOffset *= c.mouseSensitivity
	yOffset *= c.mouseSensitivity

	c.yaw += xOffset
	c.pitch -= yOffset
	c.pitch = common.Clamp(c.pitch, -MaxPitch, MaxPitch)

	c.updateVectors()
}

// Direction is the unit front vector for yaw and pitch in degrees. Yaw is
// measured from +X towards +Z, pitch from the XZ plane.
func Direction(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	return mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}.Normalize()
}

func (c *Camera) updateVectors() {
	c.front = Direction(c.yaw, c.pitch)
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
