package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named fall speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// minFallMS keeps the hardest preset playable.
const minFallMS = 60

// ParsePreset resolves a preset name. An empty name is DifficultyNormal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// FallScaleForPreset returns the factor applied to the default fall interval.
func FallScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// ApplyPreset scales the default fall interval for a difficulty preset.
// The soft drop interval is left alone.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	scaled := float64(cfg.Timing.DefaultFallMS) * FallScaleForPreset(preset)
	cfg.Timing.DefaultFallMS = int(math.Max(minFallMS, math.Round(scaled)))
}
