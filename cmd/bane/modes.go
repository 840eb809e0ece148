package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-bane/internal/config"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the configured modes",
	Long:  `Shows the modes from the active configuration in menu order.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Modes (%s config):\n", src)
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range cfg.Modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Board", "Music", "Pieces")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "-----", "-----", "------")

	for _, m := range cfg.Modes {
		board := fmt.Sprintf("%dx%d", m.Width, m.Height-m.HiddenRows)
		music := "no"
		if m.Music != "" {
			music = "yes"
		}
		fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, m.ID, board, music, strings.Join(m.Pieces, " "))
	}

	fmt.Println()
	fmt.Println("Run 'bane play --mode <id>' to play a mode.")
}
