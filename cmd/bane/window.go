package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-bane/internal/core"
	"github.com/vovakirdan/tetris-bane/internal/platform/gfx"
)

var (
	flagCell        int
	flagWindowStart bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window instead of the terminal. The window
reports key releases, so soft drop stops the moment Down is let go.

Examples:
  bane window
  bane window --cell 32
  bane window --start --mode bane`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagCell, "cell", 24, "Board cell size in pixels")
	windowCmd.Flags().BoolVar(&flagWindowStart, "start", false, "Skip the menu")
	windowCmd.Flags().StringVar(&flagMode, "mode", "", "Mode id (see 'bane modes')")
}

func runWindow(_ *cobra.Command, _ []string) {
	a, err := setup()
	if err != nil {
		fail("%v", err)
	}

	if flagMode != "" && !a.machine.SelectMode(flagMode) {
		a.Close()
		fail("unknown mode %q\nRun 'bane modes' to see available modes.", flagMode)
	}

	opts := gfx.Options{
		Config: core.RuntimeConfig{TickRate: flagFPS},
		Logger: a.logger,
		Cell:   flagCell,
		Start:  flagWindowStart,
	}
	if a.store != nil {
		opts.Prefs = a.store
	}

	runErr := gfx.Run(a.machine, opts)
	a.Close()
	if runErr != nil {
		fail("running window: %v", runErr)
	}
}
