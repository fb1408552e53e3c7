package interpreter

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultTabletopSize is the side length of the standard 5x5 tabletop.
const DefaultTabletopSize = 5

// Direction is one of the four compass facings.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = map[Direction]string{
	North: "NORTH",
	East:  "EAST",
	South: "SOUTH",
	West:  "WEST",
}

// Rotation is spelled out as explicit successor tables so the cycle
// NORTH->EAST->SOUTH->WEST->NORTH is a testable contract, not ordinal
// arithmetic.
var clockwise = map[Direction]Direction{
	North: East,
	East:  South,
	South: West,
	West:  North,
}

var counterClockwise = map[Direction]Direction{
	North: West,
	West:  South,
	South: East,
	East:  North,
}

// moveDeltas holds one distinct unit step per facing.
var moveDeltas = map[Direction][2]int{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

var directionsByName = map[string]Direction{
	"NORTH": North,
	"EAST":  East,
	"SOUTH": South,
	"WEST":  West,
}

// ParseDirection matches a direction name case-insensitively.
func ParseDirection(name string) (Direction, error) {
	if d, ok := directionsByName[strings.ToUpper(name)]; ok {
		return d, nil
	}
	return North, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

var (
	ErrNotPlaced        = errors.New("robot not yet placed")
	ErrOutOfBounds      = errors.New("placement is off the table")
	ErrOffTable         = errors.New("move would fall off the table")
	ErrUnknownDirection = errors.New("unknown direction")
)

// Tabletop is the bounded square surface the robot may occupy.
type Tabletop struct {
	Size int
}

func NewTabletop(size int) Tabletop {
	if size < 1 {
		size = DefaultTabletopSize
	}
	return Tabletop{Size: size}
}

func (t Tabletop) InBounds(x, y int) bool {
	return x >= 0 && x < t.Size && y >= 0 && y < t.Size
}

// Robot tracks position and facing on a tabletop. Every command except
// Place is rejected with ErrNotPlaced until a Place succeeds.
type Robot struct {
	x, y   int
	facing Direction
	placed bool
	table  Tabletop
}

func NewRobot(table Tabletop) *Robot {
	return &Robot{facing: North, table: table}
}

// Place puts the robot on the table. An out-of-bounds target changes
// nothing, including the placed flag.
func (r *Robot) Place(x, y int, facing Direction) error {
	if !r.table.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	r.x, r.y, r.facing = x, y, facing
	r.placed = true
	return nil
}

// Move advances one cell along the current facing. A step that would
// leave the table is rejected without moving.
func (r *Robot) Move() error {
	if !r.placed {
		return ErrNotPlaced
	}
	delta := moveDeltas[r.facing]
	nx, ny := r.x+delta[0], r.y+delta[1]
	if !r.table.InBounds(nx, ny) {
		return fmt.Errorf("%w: (%d,%d)", ErrOffTable, nx, ny)
	}
	r.x, r.y = nx, ny
	return nil
}

func (r *Robot) RotateLeft() error {
	if !r.placed {
		return ErrNotPlaced
	}
	r.facing = counterClockwise[r.facing]
	return nil
}

func (r *Robot) RotateRight() error {
	if !r.placed {
		return ErrNotPlaced
	}
	r.facing = clockwise[r.facing]
	return nil
}

// Report renders the current state as "X,Y,FACING".
func (r *Robot) Report() (string, error) {
	if !r.placed {
		return "", ErrNotPlaced
	}
	return fmt.Sprintf("%d,%d,%s", r.x, r.y, r.facing), nil
}

func (r *Robot) Position() (int, int) {
	return r.x, r.y
}

func (r *Robot) Facing() Direction {
	return r.facing
}

func (r *Robot) Placed() bool {
	return r.placed
}

func (r *Robot) Table() Tabletop {
	return r.table
}

func (r *Robot) String() string {
	if !r.placed {
		return "unplaced"
	}
	return fmt.Sprintf("(%d,%d) facing %s", r.x, r.y, r.facing)
}
