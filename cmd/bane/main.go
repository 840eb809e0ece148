// bane is a falling-block puzzle game for the terminal and the desktop.
//
// Usage:
//
//	bane                     - Open the menu in the terminal
//	bane play [--mode id]    - Start a game right away
//	bane window              - Play in a desktop window
//	bane modes               - List the configured modes
//	bane prefs [--reset]     - Show or forget the saved menu choices
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible piece order
//	--db <path>          - Set database path (default: ~/.bane/bane.db)
//	--config <path>      - Load a custom bane.yaml
//	--difficulty <name>  - Fall speed preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLogFile    string
	flagLogLevel   string
	flagDifficulty string
	flagTheme      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bane",
	Short: "Tetris Bane - falling blocks with a mean streak",
	Long: `Tetris Bane is a falling-block puzzle game. Pick Chill, Classic or
Bane from the menu; Bane brings bigger pieces, a wider board and music.

Available commands:
  play     - Skip the menu and start a game
  window   - Play in a desktop window
  modes    - List the configured modes
  prefs    - Show or reset saved menu choices

Examples:
  bane
  bane play --mode bane
  bane window --fps 120
  bane --difficulty hard --seed 42`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bane/bane.db", "Path to preferences database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bane.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.bane/bane.log", "Log file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Terminal theme: default, mono")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(prefsCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
