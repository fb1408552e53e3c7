package interpreter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// commandLexer keeps Int a plain digit run. The default Go-style
// scanner would reject "08" and read "010" as octal; coordinates are
// decimal, leading zeros included.
var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Command is one input line in parsed form. Exactly one branch is set.
type Command struct {
	Place *PlaceCommand `parser:"@@"`
	Bare  *BareCommand  `parser:"| @@"`
}

type PlaceCommand struct {
	RawX   string `parser:"'PLACE' @Int ','"`
	RawY   string `parser:"@Int ','"`
	Facing string `parser:"@Ident"`

	// X, Y and Dir are resolved from the captured text by Parse.
	X, Y int
	Dir  Direction
}

type BareCommand struct {
	Name string `parser:"@('MOVE' | 'LEFT' | 'RIGHT' | 'REPORT')"`
}

var lineParser = participle.MustBuild[Command](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Ident"),
)

var (
	ErrUnrecognized   = errors.New("unrecognized command")
	ErrMalformedPlace = errors.New("malformed PLACE arguments")
)

// IsTerminator reports whether line ends the session: blank,
// whitespace-only, or the token EXIT in any case.
func IsTerminator(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.EqualFold(line, "EXIT")
}

// Parse classifies one line of input. Keywords and direction names are
// case-insensitive; the whole line must match the grammar. It never
// touches robot state. Terminator lines are the caller's concern, see
// IsTerminator.
func Parse(line string) (*Command, error) {
	trimmed := strings.TrimSpace(line)
	cmd, err := lineParser.ParseString("", line)
	if err != nil {
		if fields := strings.Fields(trimmed); len(fields) > 0 && strings.EqualFold(fields[0], "PLACE") {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPlace, trimmed)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnrecognized, trimmed)
	}
	if cmd.Place != nil {
		x, err := strconv.Atoi(cmd.Place.RawX)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPlace, trimmed)
		}
		y, err := strconv.Atoi(cmd.Place.RawY)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPlace, trimmed)
		}
		dir, err := ParseDirection(cmd.Place.Facing)
		if err != nil {
			return nil, err
		}
		cmd.Place.X, cmd.Place.Y, cmd.Place.Dir = x, y, dir
	}
	return cmd, nil
}
