package interpreter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	robotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	cellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// The robot marker encodes its facing.
var facingMarkers = map[Direction]string{
	North: "^",
	East:  ">",
	South: "v",
	West:  "<",
}

// Display renders the tabletop with the robot marker. Rows print
// top-down, so y=Size-1 comes first.
type Display struct {
	table Tabletop
}

func NewDisplay(table Tabletop) *Display {
	return &Display{table: table}
}

func (d *Display) Render(r *Robot) string {
	var b strings.Builder
	x, y := r.Position()
	for row := d.table.Size - 1; row >= 0; row-- {
		for col := 0; col < d.table.Size; col++ {
			if r.Placed() && col == x && row == y {
				b.WriteString(robotStyle.Render(facingMarkers[r.Facing()]))
			} else {
				b.WriteString(cellStyle.Render("."))
			}
			if col < d.table.Size-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
