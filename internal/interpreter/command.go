package interpreter

import (
	"fmt"
	"strings"
)

// apply dispatches a parsed command to the session's robot. REPORT is
// the only command that writes to the session output.
func (c *Command) apply(s *Session) error {
	switch {
	case c.Place != nil:
		return s.robot.Place(c.Place.X, c.Place.Y, c.Place.Dir)
	case c.Bare != nil:
		switch strings.ToUpper(c.Bare.Name) {
		case "MOVE":
			return s.robot.Move()
		case "LEFT":
			return s.robot.RotateLeft()
		case "RIGHT":
			return s.robot.RotateRight()
		case "REPORT":
			line, err := s.robot.Report()
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, line)
		}
	}
	return nil
}
