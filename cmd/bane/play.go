package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetris-bane/internal/core"
	"github.com/vovakirdan/tetris-bane/internal/platform/tui"
)

var flagMode string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game right away",
	Long: `Skip the menu and start a game in the selected mode. Without --mode
the mode chosen last time is used.

Controls:
  Left/Right/A/D  - Move
  Up/W            - Rotate
  Down/S          - Soft drop
  P/Esc           - Pause
  Q/Ctrl+C        - Quit

Examples:
  bane play
  bane play --mode chill
  bane play --mode bane --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Mode id (see 'bane modes')")
}

func runMenu(_ *cobra.Command, _ []string) {
	runTerminal(false)
}

func runPlay(_ *cobra.Command, _ []string) {
	runTerminal(true)
}

func runTerminal(start bool) {
	a, err := setup()
	if err != nil {
		fail("%v", err)
	}

	if flagMode != "" && !a.machine.SelectMode(flagMode) {
		a.Close()
		fail("unknown mode %q\nRun 'bane modes' to see available modes.", flagMode)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Logger: a.logger,
		Theme:  flagTheme,
		Start:  start,
	}
	if a.store != nil {
		opts.Prefs = a.store
	}

	runErr := tui.Run(a.machine, opts)
	a.Close()
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
