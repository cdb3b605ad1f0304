package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cubecam/camera"
)

type heldKeys map[string]bool

func (h heldKeys) Pressed(name string) bool { return h[name] }

func TestDefaultBindingsIntents(t *testing.T) {
	b := DefaultBindings()

	assert.Empty(t, b.Intents(heldKeys{}))
	assert.Equal(t, []camera.Movement{camera.Forward}, b.Intents(heldKeys{"W": true}))
	assert.Equal(t,
		[]camera.Movement{camera.Forward, camera.Backward, camera.Left, camera.Right},
		b.Intents(heldKeys{"D": true, "A": true, "S": true, "W": true}))
	assert.Equal(t, []camera.Movement{camera.Left}, b.Intents(heldKeys{"A": true, "Q": true}))
}

func TestNewBindings(t *testing.T) {
	b, err := NewBindings(map[string]string{"forward": "Up", "Backward": " Down "})
	require.NoError(t, err)
	assert.Equal(t, "Up", b[camera.Forward])
	assert.Equal(t, "Down", b[camera.Backward])
	assert.Equal(t, "A", b[camera.Left])
	assert.Equal(t, []string{"Up", "Down", "A", "D"}, b.Keys())

	_, err = NewBindings(map[string]string{"jump": "Space"})
	assert.ErrorIs(t, err, camera.ErrUnknownMovement)

	_, err = NewBindings(map[string]string{"left": ""})
	assert.Error(t, err)
}

func TestMouseFirstSamplePrimes(t *testing.T) {
	var m Mouse
	m.Move(400, 300)
	_, _, moved := m.Take()
	assert.False(t, moved)

	m.Move(410, 295)
	dx, dy, moved := m.Take()
	assert.True(t, moved)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(-5), dy)
}

func TestMouseAccumulatesUntilTaken(t *testing.T) {
	var m Mouse
	m.Move(0, 0)
	m.Move(3, 1)
	m.Move(5, -2)
	m.Add(1, 1)

	dx, dy, moved := m.Take()
	assert.True(t, moved)
	assert.Equal(t, float32(6), dx)
	assert.Equal(t, float32(-1), dy)

	dx, dy, moved = m.Take()
	assert.False(t, moved)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestMouseSamePositionIsNoMotion(t *testing.T) {
	var m Mouse
	m.Move(7, 7)
	m.Move(7, 7)
	_, _, moved := m.Take()
	assert.False(t, moved)
}

func TestMouseReset(t *testing.T) {
	var m Mouse
	m.Move(0, 0)
	m.Move(50, 50)
	m.Reset()
	m.Move(500, 500)
	_, _, moved := m.Take()
	assert.False(t, moved)
}
