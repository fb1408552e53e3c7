package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlace(t *testing.T) {
	cases := []struct {
		line string
		x, y int
		dir  Direction
	}{
		{"PLACE 1,2,NORTH", 1, 2, North},
		{"place 0,0,south", 0, 0, South},
		{"Place 4,0,West", 4, 0, West},
		{"  PLACE 3,4,EAST  ", 3, 4, East},
		{"PLACE 0 , 4 , south", 0, 4, South},
		{"PLACE 08,0,NORTH", 8, 0, North},
		{"PLACE 010,0,NORTH", 10, 0, North},
		{"PLACE 00,007,EAST", 0, 7, East},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			cmd, err := Parse(tc.line)
			require.NoError(t, err)
			require.NotNil(t, cmd.Place)
			assert.Nil(t, cmd.Bare)
			assert.Equal(t, tc.x, cmd.Place.X)
			assert.Equal(t, tc.y, cmd.Place.Y)
			assert.Equal(t, tc.dir, cmd.Place.Dir)
		})
	}
}

func TestParseBare(t *testing.T) {
	for _, line := range []string{"MOVE", "move", "Left", "RIGHT", "report", " REPORT "} {
		t.Run(line, func(t *testing.T) {
			cmd, err := Parse(line)
			require.NoError(t, err)
			require.NotNil(t, cmd.Bare)
			assert.Nil(t, cmd.Place)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		line string
		want error
	}{
		{"JUMP", ErrUnrecognized},
		{"MOVE NORTH", ErrUnrecognized},
		{"REPORT 1", ErrUnrecognized},
		{"PLACENORTH", ErrUnrecognized},
		{"PLACE", ErrMalformedPlace},
		{"PLACE 1,2", ErrMalformedPlace},
		{"PLACE 1 2 NORTH", ErrMalformedPlace},
		{"PLACE a,b,NORTH", ErrMalformedPlace},
		{"PLACE -1,2,NORTH", ErrMalformedPlace},
		{"PLACE 99999999999999999999,2,NORTH", ErrMalformedPlace},
		{"PLACE 1,2,NORTH,EXTRA", ErrMalformedPlace},
		{"PLACE 1,2,NORTHEAST", ErrUnknownDirection},
		{"PLACE 1,2,UP", ErrUnknownDirection},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			cmd, err := Parse(tc.line)
			assert.Nil(t, cmd)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestIsTerminator(t *testing.T) {
	for _, line := range []string{"", "   ", "\t", "EXIT", "exit", " Exit "} {
		assert.True(t, IsTerminator(line), "%q", line)
	}
	for _, line := range []string{"EXITS", "QUIT", "MOVE", "PLACE 1,2,NORTH"} {
		assert.False(t, IsTerminator(line), "%q", line)
	}
}
