package frame

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"cubecam/camera"
)

type fakeTime struct{ t float64 }

func (f *fakeTime) now() float64 { return f.t }

func TestClockTick(t *testing.T) {
	ft := &fakeTime{t: 10}
	c := NewClock(ft.now)

	ft.t = 10.25
	assert.InDelta(t, 0.25, c.Tick(), 1e-6)
	assert.Zero(t, c.Tick())

	ft.t = 13
	assert.InDelta(t, 2.75, c.Tick(), 1e-6)

	ft.t = 12
	assert.Zero(t, c.Tick())
}

func TestFPS(t *testing.T) {
	f := FPS{Window: 0.95}
	for i := 0; i < 9; i++ {
		assert.False(t, f.Add(0.1))
	}
	assert.True(t, f.Add(0.1))
	assert.InDelta(t, 10, f.Value(), 1e-3)
}

func TestStepOrder(t *testing.T) {
	cam := camera.NewDefault()
	in := Input{
		Intents:    []camera.Movement{camera.Forward},
		MouseDX:    180,
		MouseMoved: true,
	}
	m := Step(cam, 1, in, NewProjection(800, 600))

	// movement used the basis from before the 90 degree turn
	assert.InDelta(t, 0, m.Eye.X(), 1e-5)
	assert.InDelta(t, 2.5, m.Eye.Z(), 1e-5)
	assert.InDelta(t, 0, cam.Yaw(), 1e-5)
	assert.InDelta(t, 1, cam.Front().X(), 1e-5)
	assert.Equal(t, cam.ViewMatrix(), m.View)
}

func TestStepWithoutMotionKeepsOrientation(t *testing.T) {
	cam := camera.NewDefault()
	in := Input{MouseDX: 50, MouseDY: 50}
	Step(cam, 0.016, in, NewProjection(800, 600))
	assert.Equal(t, float32(-90), cam.Yaw())
	assert.Equal(t, camera.DefaultPosition, cam.Position())
}

func TestStepProjection(t *testing.T) {
	cam := camera.NewDefault()
	proj := NewProjection(800, 600)
	m := Step(cam, 0, Input{}, proj)

	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	assert.Equal(t, want, m.Projection)
	assert.Equal(t, float32(0.1), proj.Near)
	assert.Equal(t, float32(100), proj.Far)
}

func TestNewProjectionDegenerateSize(t *testing.T) {
	assert.Equal(t, float32(1), NewProjection(0, 600).Aspect)
}

func TestSpin(t *testing.T) {
	s := NewSpin(20)
	assert.Equal(t, mgl32.Ident4(), s.Model())

	s.Advance(0.5)
	s.Advance(1.0)
	assert.InDelta(t, 30, s.Angle, 1e-5)

	want := mgl32.HomogRotate3D(mgl32.DegToRad(30), mgl32.Vec3{1, 0.3, 0.5}.Normalize())
	assert.True(t, want.ApproxEqual(s.Model()))
}

func TestStatus(t *testing.T) {
	lines := Status(camera.NewDefault(), 59.94, nil)
	assert.Equal(t, []string{
		"pos      0.00    0.00    5.00",
		"front    0.00    0.00   -1.00",
		"yaw   -90.0  pitch   0.0  fov 45.0",
		"fps   59.9",
	}, lines)
}

func TestStatusNoNegativeZero(t *testing.T) {
	cam := camera.New(mgl32.Vec3{-0.001, 0, 0.004}, camera.DefaultWorldUp, -0.04, -0.02, camera.DefaultOptions())
	lines := Status(cam, 0, nil)
	assert.Equal(t, "pos      0.00    0.00    0.00", lines[0])
	assert.Equal(t, "yaw     0.0  pitch   0.0  fov 45.0", lines[2])
	for _, l := range lines {
		assert.NotContains(t, l, "-0.0", l)
	}
}

func TestStatusFrameTimes(t *testing.T) {
	var h History
	h.Add(10)
	h.Add(20)
	lines := Status(camera.NewDefault(), 60, &h)
	assert.Len(t, lines, 5)
	assert.Equal(t, "ms  avg 15.00  min 10.00  max 20.00", lines[4])
}

func TestHistory(t *testing.T) {
	var h History
	assert.Zero(t, h.Len())
	assert.Zero(t, h.Average())
	assert.Zero(t, h.Max())

	h.Add(4)
	h.Add(1)
	h.Add(7)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, float32(7), h.Sample(0))
	assert.Equal(t, float32(4), h.Sample(2))
	assert.Equal(t, float32(1), h.Min())
	assert.Equal(t, float32(7), h.Max())
	assert.Equal(t, float32(4), h.Average())
}

func TestHistoryWraps(t *testing.T) {
	var h History
	for i := 0; i < MaxHistory+10; i++ {
		h.Add(float32(i))
	}
	assert.Equal(t, MaxHistory, h.Len())
	assert.Equal(t, float32(MaxHistory+9), h.Sample(0))
	assert.Equal(t, float32(10), h.Min())
}
