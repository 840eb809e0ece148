package config

import (
	_ "embed"
)

//go:embed defaults/bane.yaml
var defaultBaneYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/bane.yaml and is used when that file cannot be parsed.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			DefaultFallMS:   500,
			FastFallMS:      25,
			GameOverPauseMS: 2000,
		},
		Audio: AudioConfig{
			MusicEnabled: true,
			Volume:       64,
			VolumeStep:   8,
		},
		Scoring: ScoringConfig{
			Rule:  "flat",
			Table: []int{0, 40, 100, 300, 1200, 2000},
		},
		Modes: []ModeConfig{
			{
				ID:          "chill",
				Name:        "Chill",
				Pieces:      []string{"O", "I"},
				Width:       10,
				Height:      21,
				HiddenRows:  1,
				SpawnColumn: 3,
			},
			{
				ID:          "classic",
				Name:        "Classic",
				Pieces:      []string{"I", "T", "O", "S", "Z", "J", "L"},
				Width:       10,
				Height:      21,
				HiddenRows:  1,
				SpawnColumn: 3,
			},
			{
				ID:          "bane",
				Name:        "Bane",
				Pieces:      []string{"BaneX", "BaneS", "BaneO", "BaneT", "BaneI", "BaneL", "BaneBox"},
				Width:       14,
				Height:      25,
				HiddenRows:  1,
				SpawnColumn: 5,
				Music:       "assets/music/Kevin_MacLeod_-_Ghost_Dance.ogg",
			},
		},
	}
}
