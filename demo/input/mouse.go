package input

// Mouse turns absolute cursor positions into relative motion. Deltas are
// accumulated between frames and drained once per frame with Take.
type Mouse struct {
	primed       bool
	lastX, lastY float64
	dx, dy       float64
	moved        bool
}

// Move records a cursor position. The first sample only primes the tracker,
// otherwise the jump from wherever the cursor entered the window would spin
// the camera.
func (m *Mouse) Move(x, y float64) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
		return
	}
	m.Add(x-m.lastX, y-m.lastY)
	m.lastX, m.lastY = x, y
}

// Add records a relative motion directly.
func (m *Mouse) Add(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	m.dx += dx
	m.dy += dy
	m.moved = true
}

// Take returns the motion since the previous Take. moved is false when the
// pointer did not move.
func (m *Mouse) Take() (dx, dy float32, moved bool) {
	dx, dy, moved = float32(m.dx), float32(m.dy), m.moved
	m.dx, m.dy, m.moved = 0, 0, false
	return dx, dy, moved
}

// Reset forgets the last position, used when the cursor is recaptured.
func (m *Mouse) Reset() {
	*m = Mouse{}
}
