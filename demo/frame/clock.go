package frame

// Clock measures the time between frames from a monotonic source in seconds,
// glfw.GetTime in the demo.
type Clock struct {
	now  func() float64
	last float64
}

func NewClock(now func() float64) *Clock {
	return &Clock{now: now, last: now()}
}

// Tick returns the seconds elapsed since the previous Tick, or since the
// clock was created for the first call. A source that steps backwards
// yields 0.
func (c *Clock) Tick() float32 {
	now := c.now()
	elapsed := now - c.last
	c.last = now
	if elapsed < 0 {
		return 0
	}
	return float32(elapsed)
}

// FPS is a running frames-per-second estimate refreshed every Window seconds.
type FPS struct {
	Window float32

	frames  int
	elapsed float32
	value   float32
}

// Add records one frame and reports whether the estimate was refreshed.
func (f *FPS) Add(elapsed float32) bool {
	f.frames++
	f.elapsed += elapsed
	window := f.Window
	if window <= 0 {
		window = 0.5
	}
	if f.elapsed < window {
		return false
	}
	f.value = float32(f.frames) / f.elapsed
	f.frames, f.elapsed = 0, 0
	return true
}

func (f *FPS) Value() float32 { return f.value }
