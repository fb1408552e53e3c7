package interpreter

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// keep renders free of escape sequences regardless of the terminal
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func renderAt(t *testing.T, x, y int, facing Direction) []string {
	t.Helper()
	table := NewTabletop(DefaultTabletopSize)
	robot := NewRobot(table)
	require.NoError(t, robot.Place(x, y, facing))
	rendered := NewDisplay(table).Render(robot)
	return strings.Split(strings.TrimRight(rendered, "\n"), "\n")
}

func TestRenderMarkerPosition(t *testing.T) {
	cases := []struct {
		x, y   int
		facing Direction
		marker string
	}{
		{0, 0, North, "^"},
		{4, 4, East, ">"},
		{2, 1, South, "v"},
		{1, 3, West, "<"},
	}
	for _, tc := range cases {
		lines := renderAt(t, tc.x, tc.y, tc.facing)
		require.Len(t, lines, DefaultTabletopSize)

		// row 0 of the output is the top of the table, y=Size-1
		row := DefaultTabletopSize - 1 - tc.y
		cells := strings.Split(lines[row], " ")
		require.Len(t, cells, DefaultTabletopSize)
		assert.Equal(t, tc.marker, cells[tc.x])
		for i, cell := range cells {
			if i != tc.x {
				assert.Equal(t, ".", cell)
			}
		}
	}
}

func TestRenderUnplacedRobotIsAllDots(t *testing.T) {
	table := NewTabletop(3)
	rendered := NewDisplay(table).Render(NewRobot(table))
	assert.NotContains(t, rendered, "^")
	assert.Equal(t, 3, strings.Count(rendered, "\n"))
}
