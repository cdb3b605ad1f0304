package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMovement(t *testing.T) {
	tests := []struct {
		in   string
		want Movement
	}{
		{"forward", Forward},
		{"Backward", Backward},
		{" LEFT ", Left},
		{"right", Right},
	}
	for _, tt := range tests {
		got, err := ParseMovement(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, must(ParseMovement(got.String())))
	}

	_, err := ParseMovement("up")
	assert.ErrorIs(t, err, ErrUnknownMovement)
}

func TestMovementString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "Movement(9)", Movement(9).String())
	assert.Len(t, Movements(), 4)
}

func must(m Movement, err error) Movement {
	if err != nil {
		panic(err)
	}
	return m
}
