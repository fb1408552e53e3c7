package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tabletop/internal/interpreter"
)

var (
	gridSize int
	showGrid bool
)

var rootCmd = &cobra.Command{
	Use:   "tabletop [command-file]",
	Short: "Simulate a robot on a bounded tabletop",
	Long: `Simulate a robot moving on a square tabletop.

With a command file the simulator runs in batch mode. Without one it
reads commands interactively from standard input. Commands:

  PLACE X,Y,FACING   put the robot on the table
  MOVE               step one cell in the current facing
  LEFT / RIGHT       rotate 90 degrees
  REPORT             print "X,Y,FACING"

A blank line or EXIT ends the session.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer log.Sync()

		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				log.Error("cannot open command file", zap.Error(err))
				return fmt.Errorf("open command file: %w", err)
			}
			defer f.Close()
			robot := interpreter.NewRobot(interpreter.NewTabletop(gridSize))
			interpreter.NewSession(f, cmd.OutOrStdout(), robot, log).Run()
			return nil
		}

		robot := interpreter.NewRobot(interpreter.NewTabletop(gridSize))
		opts := []interpreter.SessionOption{interpreter.WithInteractive()}
		if showGrid {
			opts = append(opts, interpreter.WithGrid())
		}
		interpreter.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), robot, log, opts...).Run()
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVar(&gridSize, "size", interpreter.DefaultTabletopSize, "tabletop side length")
	rootCmd.Flags().BoolVar(&showGrid, "grid", false, "draw the tabletop after each command (interactive mode)")
}

// newLogger builds the stderr diagnostics logger. Timestamps add
// nothing to per-line command diagnostics, so they are dropped.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	return zap.Must(cfg.Build())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
