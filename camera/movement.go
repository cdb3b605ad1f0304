package camera

import (
	"errors"
	"fmt"
	"strings"
)

// Movement is a discrete movement intent. The set is closed: there is no
// diagonal or vertical movement.
type Movement int

const (
	Forward Movement = iota
	Backward
	Right
	Left
)

var ErrUnknownMovement = errors.New("unknown movement")

var movementNames = [...]string{
	Forward:  "forward",
	Backward: "backward",
	Right:    "right",
	Left:     "left",
}

// Movements lists every intent in polling order (W, S, A, D).
func Movements() []Movement {
	return []Movement{Forward, Backward, Left, Right}
}

func (m Movement) String() string {
	if m < 0 || int(m) >= len(movementNames) {
		return fmt.Sprintf("Movement(%d)", int(m))
	}
	return movementNames[m]
}

func ParseMovement(s string) (Movement, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range movementNames {
		if n == name {
			return Movement(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMovement, s)
}
