// Package game runs one play session: the falling piece, the fall clock,
// landing, spawning, row clearing and scoring on top of a board.
package game

import (
	"fmt"

	"github.com/vovakirdan/tetris-bane/internal/config"
	"github.com/vovakirdan/tetris-bane/internal/core"
	"github.com/vovakirdan/tetris-bane/internal/piece"
)

// Mode is a ruleset: which pieces appear, the board they fall on and the
// music that plays.
type Mode struct {
	ID          string
	Name        string
	Labels      []piece.Label
	Width       int
	Height      int
	HiddenRows  int
	SpawnColumn int
	SpawnRow    int
	MusicPath   string // Empty for silent modes
}

// Anchor returns where new pieces are placed.
func (m Mode) Anchor() core.Position {
	return core.Pos(m.SpawnColumn, m.SpawnRow)
}

// HasMusic reports whether the mode plays a track.
func (m Mode) HasMusic() bool {
	return m.MusicPath != ""
}

// ModeFromConfig converts a mode definition and checks that every piece
// it names exists in the catalog.
func ModeFromConfig(mc config.ModeConfig, cat *piece.Catalog) (Mode, error) {
	if err := mc.Validate(); err != nil {
		return Mode{}, err
	}
	labels, err := piece.ParseLabels(mc.Pieces)
	if err != nil {
		return Mode{}, fmt.Errorf("game: mode %q: %w", mc.ID, err)
	}
	for _, l := range labels {
		if !cat.Has(l) {
			return Mode{}, fmt.Errorf("game: mode %q: %s not in catalog", mc.ID, l)
		}
	}
	name := mc.Name
	if name == "" {
		name = mc.ID
	}
	return Mode{
		ID:          mc.ID,
		Name:        name,
		Labels:      labels,
		Width:       mc.Width,
		Height:      mc.Height,
		HiddenRows:  mc.HiddenRows,
		SpawnColumn: mc.SpawnColumn,
		SpawnRow:    mc.SpawnRow,
		MusicPath:   mc.Music,
	}, nil
}

// ModesFromConfig converts every configured mode, preserving order.
func ModesFromConfig(cfg config.Config, cat *piece.Catalog) ([]Mode, error) {
	if len(cfg.Modes) == 0 {
		return nil, config.ErrNoModes
	}
	modes := make([]Mode, 0, len(cfg.Modes))
	for _, mc := range cfg.Modes {
		m, err := ModeFromConfig(mc, cat)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}
