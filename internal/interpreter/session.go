package interpreter

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Session drives the read-parse-apply loop over one input stream. It
// does not own the stream; the caller closes file inputs.
type Session struct {
	scanner     *bufio.Scanner
	out         io.Writer
	robot       *Robot
	log         *zap.Logger
	interactive bool
	display     *Display
}

type SessionOption func(*Session)

// WithInteractive enables the greeting, the per-line prompt and the
// farewell message.
func WithInteractive() SessionOption {
	return func(s *Session) { s.interactive = true }
}

// WithGrid draws the tabletop after every accepted command.
func WithGrid() SessionOption {
	return func(s *Session) { s.display = NewDisplay(s.robot.Table()) }
}

func NewSession(in io.Reader, out io.Writer, robot *Robot, log *zap.Logger, opts ...SessionOption) *Session {
	s := &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
		robot:   robot,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run consumes lines until a terminator (blank line or EXIT), end of
// stream, or a read error. Per-line failures are diagnostics; only a
// failing read stops the loop early, and even then Run returns
// normally.
func (s *Session) Run() {
	if s.interactive {
		size := s.robot.Table().Size
		fmt.Fprintf(s.out, "Tabletop %dx%d. Commands: PLACE X,Y,F | MOVE | LEFT | RIGHT | REPORT. Blank line or EXIT quits.\n", size, size)
	}
	for {
		if s.interactive {
			fmt.Fprint(s.out, "> ")
		}
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				s.log.Warn("cannot read next command, stopping", zap.Error(err))
			}
			break
		}
		line := s.scanner.Text()
		if IsTerminator(line) {
			break
		}
		cmd, err := Parse(line)
		if err != nil {
			s.log.Warn("invalid command or format", zap.Error(err))
			continue
		}
		if err := cmd.apply(s); err != nil {
			s.log.Warn("command rejected", zap.Error(err))
			continue
		}
		if s.display != nil {
			fmt.Fprint(s.out, s.display.Render(s.robot))
		}
	}
	if s.interactive {
		fmt.Fprintln(s.out, "Bye.")
	}
}
