package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// isolate points the user and local search locations at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %s, want %s", src, SourceEmbedded)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("embedded config differs from Default() (-want +got):\n%s", diff)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestDefaultModes(t *testing.T) {
	cfg := Default()
	wantIDs := []string{"chill", "classic", "bane"}
	if len(cfg.Modes) != len(wantIDs) {
		t.Fatalf("got %d modes, want %d", len(cfg.Modes), len(wantIDs))
	}
	for i, id := range wantIDs {
		if cfg.Modes[i].ID != id {
			t.Errorf("mode %d = %q, want %q", i, cfg.Modes[i].ID, id)
		}
	}

	bane, ok := cfg.Mode("bane")
	if !ok {
		t.Fatal("bane mode missing")
	}
	classic, _ := cfg.Mode("classic")
	if bane.Width <= classic.Width || bane.Height <= classic.Height {
		t.Errorf("bane board %dx%d should be larger than classic %dx%d",
			bane.Width, bane.Height, classic.Width, classic.Height)
	}
	if bane.Music == "" {
		t.Error("bane mode should have a music track")
	}
	if classic.Music != "" {
		t.Error("classic mode should be silent")
	}
	if _, ok := cfg.Mode("missing"); ok {
		t.Error("Mode(missing) reported found")
	}
}

func TestLoadLocal(t *testing.T) {
	dir := isolate(t)

	yaml := `
timing:
  default_fall_ms: 300
  fast_fall_ms: 20
  game_over_pause_ms: 1000
audio:
  volume: 10
  volume_step: 4
modes:
  - id: tiny
    name: Tiny
    pieces: [O]
    width: 4
    height: 6
    spawn_column: 1
`
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", FileName), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src != SourceLocal {
		t.Errorf("source = %s, want %s", src, SourceLocal)
	}
	if cfg.Timing.DefaultFallMS != 300 {
		t.Errorf("default_fall_ms = %d, want 300", cfg.Timing.DefaultFallMS)
	}
	if len(cfg.Modes) != 1 || cfg.Modes[0].ID != "tiny" {
		t.Errorf("modes = %+v", cfg.Modes)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := isolate(t)

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("modes: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(broken); err == nil {
		t.Error("expected error for unparsable custom config")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("timing:\n  default_fall_ms: 500\n  fast_fall_ms: 25\naudio:\n  volume_step: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, src, err := Load(empty)
	if !errors.Is(err, ErrNoModes) {
		t.Errorf("Load(empty) error = %v, want ErrNoModes", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, want %s", src, SourceCustom)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fall", func(c *Config) { c.Timing.DefaultFallMS = 0 }},
		{"zero fast fall", func(c *Config) { c.Timing.FastFallMS = 0 }},
		{"negative game over pause", func(c *Config) { c.Timing.GameOverPauseMS = -1 }},
		{"volume too loud", func(c *Config) { c.Audio.Volume = MaxVolume + 1 }},
		{"negative volume", func(c *Config) { c.Audio.Volume = -1 }},
		{"zero volume step", func(c *Config) { c.Audio.VolumeStep = 0 }},
		{"unknown rule", func(c *Config) { c.Scoring.Rule = "bonus" }},
		{"table rule without table", func(c *Config) { c.Scoring.Rule = "table"; c.Scoring.Table = nil }},
		{"no modes", func(c *Config) { c.Modes = nil }},
		{"duplicate id", func(c *Config) { c.Modes[1].ID = c.Modes[0].ID }},
		{"empty id", func(c *Config) { c.Modes[0].ID = "" }},
		{"zero width", func(c *Config) { c.Modes[0].Width = 0 }},
		{"all rows hidden", func(c *Config) { c.Modes[0].HiddenRows = c.Modes[0].Height }},
		{"spawn column outside", func(c *Config) { c.Modes[0].SpawnColumn = c.Modes[0].Width }},
		{"spawn row outside", func(c *Config) { c.Modes[0].SpawnRow = -1 }},
		{"no pieces", func(c *Config) { c.Modes[0].Pieces = nil }},
		{"unknown piece", func(c *Config) { c.Modes[0].Pieces = []string{"O", "Q"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"HARD", DifficultyHard, false},
		{" normal ", DifficultyNormal, false},
		{"insane", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		fall   int
		want   int
	}{
		{DifficultyNormal, 500, 500},
		{DifficultyEasy, 500, 750},
		{DifficultyHard, 500, 300},
		{DifficultyHard, 80, minFallMS}, // Clamped
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Timing.DefaultFallMS = tt.fall
		ApplyPreset(&cfg, tt.preset)
		if cfg.Timing.DefaultFallMS != tt.want {
			t.Errorf("ApplyPreset(%s) fall = %d, want %d", tt.preset, cfg.Timing.DefaultFallMS, tt.want)
		}
		if cfg.Timing.FastFallMS != Default().Timing.FastFallMS {
			t.Errorf("ApplyPreset(%s) changed fast fall", tt.preset)
		}
	}
}
