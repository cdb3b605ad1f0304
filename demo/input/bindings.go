package input

import (
	"fmt"
	"strings"

	"cubecam/camera"
)

// KeySource reports whether a named key is currently held. Names are the
// ones used in configuration ("W", "Up", "LeftShift", ...).
type KeySource interface {
	Pressed(name string) bool
}

// Bindings maps each movement intent to a key name.
type Bindings map[camera.Movement]string

func DefaultBindings() Bindings {
	return Bindings{
		camera.Forward:  "W",
		camera.Backward: "S",
		camera.Left:     "A",
		camera.Right:    "D",
	}
}

// NewBindings builds bindings from a movement-name -> key-name table, e.g.
// {"forward": "W"}. Movements missing from the table keep their default key.
func NewBindings(table map[string]string) (Bindings, error) {
	b := DefaultBindings()
	for name, key := range table {
		m, err := camera.ParseMovement(name)
		if err != nil {
			return nil, err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("no key bound to %s", m)
		}
		b[m] = key
	}
	return b, nil
}

// Intents returns the intents whose keys are held, in camera.Movements order.
func (b Bindings) Intents(src KeySource) []camera.Movement {
	var intents []camera.Movement
	for _, m := range camera.Movements() {
		key, ok := b[m]
		if !ok {
			continue
		}
		if src.Pressed(key) {
			intents = append(intents, m)
		}
	}
	return intents
}

// Keys returns the bound key names in camera.Movements order.
func (b Bindings) Keys() []string {
	keys := make([]string, 0, len(b))
	for _, m := range camera.Movements() {
		if k, ok := b[m]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
