package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-bane/internal/storage"
)

var flagReset bool

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or reset saved menu choices",
	Long: `Shows the mode, music toggle and volume remembered from the last
session. With --reset the saved choices are forgotten and the config
defaults apply again.

Examples:
  bane prefs
  bane prefs --reset
  bane prefs --db ./bane.db`,
	Args: cobra.NoArgs,
	Run:  runPrefs,
}

func init() {
	prefsCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget saved choices")
}

func runPrefs(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening preferences database: %v", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.ResetPreferences(); err != nil {
			fail("resetting preferences: %v", err)
		}
		fmt.Println("Preferences reset.")
		return
	}

	p, err := store.LoadPreferences()
	if errors.Is(err, storage.ErrNoPreferences) {
		fmt.Println("No preferences saved yet.")
		return
	}
	if err != nil {
		fail("loading preferences: %v", err)
	}

	fmt.Println("Saved preferences")
	fmt.Println()
	fmt.Printf("  %-8s %s\n", "Mode", p.ModeID)
	fmt.Printf("  %-8s %v\n", "Music", p.MusicEnabled)
	fmt.Printf("  %-8s %d\n", "Volume", p.Volume)
	fmt.Printf("  %-8s %s\n", "Updated", p.UpdatedAt.Format("2006-01-02 15:04"))
}
