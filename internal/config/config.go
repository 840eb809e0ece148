// Package config provides YAML-based configuration loading for Tetris Bane:
// fall timing, audio defaults, scoring and the ordered list of game modes.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tetris-bane/internal/piece"
)

// ErrNoModes is returned by Validate when the configuration defines no modes.
var ErrNoModes = errors.New("config: no modes defined")

// MaxVolume is the loudest music volume.
const MaxVolume = 128

// Config is the complete game configuration.
type Config struct {
	Timing  TimingConfig  `yaml:"timing"`
	Audio   AudioConfig   `yaml:"audio"`
	Scoring ScoringConfig `yaml:"scoring"`
	Modes   []ModeConfig  `yaml:"modes"`
}

// TimingConfig holds the fall clock intervals in milliseconds.
type TimingConfig struct {
	DefaultFallMS   int `yaml:"default_fall_ms"`
	FastFallMS      int `yaml:"fast_fall_ms"`       // While soft drop is held
	GameOverPauseMS int `yaml:"game_over_pause_ms"` // Final board stays up this long
}

// AudioConfig holds the initial music settings.
type AudioConfig struct {
	MusicEnabled bool `yaml:"music_enabled"`
	Volume       int  `yaml:"volume"`      // 0..128
	VolumeStep   int  `yaml:"volume_step"` // Change per left/right press in the menu
}

// ScoringConfig selects the score rule.
type ScoringConfig struct {
	Rule  string `yaml:"rule"`  // "flat" or "table"
	Table []int  `yaml:"table"` // Points indexed by rows cleared at once
}

// ModeConfig describes one ruleset.
type ModeConfig struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Pieces      []string `yaml:"pieces"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	HiddenRows  int      `yaml:"hidden_rows"`
	SpawnColumn int      `yaml:"spawn_column"`
	SpawnRow    int      `yaml:"spawn_row"`
	Music       string   `yaml:"music"`
}

// Mode returns the mode with the given id.
func (c Config) Mode(id string) (ModeConfig, bool) {
	for _, m := range c.Modes {
		if m.ID == id {
			return m, true
		}
	}
	return ModeConfig{}, false
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Timing.DefaultFallMS <= 0 {
		return fmt.Errorf("config: default_fall_ms must be positive, got %d", c.Timing.DefaultFallMS)
	}
	if c.Timing.FastFallMS <= 0 {
		return fmt.Errorf("config: fast_fall_ms must be positive, got %d", c.Timing.FastFallMS)
	}
	if c.Timing.GameOverPauseMS < 0 {
		return fmt.Errorf("config: game_over_pause_ms must not be negative, got %d", c.Timing.GameOverPauseMS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > MaxVolume {
		return fmt.Errorf("config: volume %d outside [0, %d]", c.Audio.Volume, MaxVolume)
	}
	if c.Audio.VolumeStep <= 0 || c.Audio.VolumeStep > MaxVolume {
		return fmt.Errorf("config: volume_step %d outside [1, %d]", c.Audio.VolumeStep, MaxVolume)
	}
	switch c.Scoring.Rule {
	case "", "flat":
	case "table":
		if len(c.Scoring.Table) == 0 {
			return errors.New("config: scoring rule \"table\" needs a table")
		}
	default:
		return fmt.Errorf("config: unknown scoring rule %q", c.Scoring.Rule)
	}

	if len(c.Modes) == 0 {
		return ErrNoModes
	}
	seen := make(map[string]bool, len(c.Modes))
	for _, m := range c.Modes {
		if err := m.Validate(); err != nil {
			return err
		}
		if seen[m.ID] {
			return fmt.Errorf("config: duplicate mode id %q", m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}

// Validate checks a single mode.
func (m ModeConfig) Validate() error {
	if m.ID == "" {
		return errors.New("config: mode without id")
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("config: mode %q: invalid board %dx%d", m.ID, m.Width, m.Height)
	}
	if m.HiddenRows < 0 || m.HiddenRows >= m.Height {
		return fmt.Errorf("config: mode %q: hidden_rows %d outside [0, %d)", m.ID, m.HiddenRows, m.Height)
	}
	if m.SpawnColumn < 0 || m.SpawnColumn >= m.Width {
		return fmt.Errorf("config: mode %q: spawn_column %d outside board", m.ID, m.SpawnColumn)
	}
	if m.SpawnRow < 0 || m.SpawnRow >= m.Height {
		return fmt.Errorf("config: mode %q: spawn_row %d outside board", m.ID, m.SpawnRow)
	}
	if len(m.Pieces) == 0 {
		return fmt.Errorf("config: mode %q: no pieces", m.ID)
	}
	if _, err := piece.ParseLabels(m.Pieces); err != nil {
		return fmt.Errorf("config: mode %q: %w", m.ID, err)
	}
	return nil
}
