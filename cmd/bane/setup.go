package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-bane/internal/config"
	"github.com/vovakirdan/tetris-bane/internal/game"
	"github.com/vovakirdan/tetris-bane/internal/piece"
	"github.com/vovakirdan/tetris-bane/internal/session"
	"github.com/vovakirdan/tetris-bane/internal/storage"
)

// app holds everything a frontend needs to run.
type app struct {
	logger  *log.Logger
	logFile io.Closer
	store   *storage.Store
	machine *session.Machine
}

// Close releases the store and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("failed to close database", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// setup loads the config, opens logging and storage and builds the
// session machine with saved preferences applied.
func setup() (*app, error) {
	logger, logFile, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}
	a := &app{logger: logger, logFile: logFile}

	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		a.Close()
		return nil, err
	}
	logger.Info("config loaded", "source", src, "modes", len(cfg.Modes))

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			a.Close()
			return nil, err
		}
		config.ApplyPreset(&cfg, preset)
		logger.Info("difficulty", "preset", preset, "fall_ms", cfg.Timing.DefaultFallMS)
	}

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open preferences database", "path", flagDBPath, "error", err)
	} else {
		a.store = store
	}

	var picker piece.Source
	if flagSeed != 0 {
		picker = rand.New(rand.NewSource(flagSeed))
	}
	m, err := newMachine(cfg, picker)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.machine = m

	if a.store != nil {
		applyPreferences(m, a.store, logger)
	}
	return a, nil
}

// newMachine builds a session machine from a validated config. A nil
// source picks pieces from a time-seeded generator.
func newMachine(cfg config.Config, src piece.Source) (*session.Machine, error) {
	cat := piece.DefaultCatalog()
	modes, err := game.ModesFromConfig(cfg, cat)
	if err != nil {
		return nil, err
	}
	rule, err := game.RuleFromConfig(cfg.Scoring)
	if err != nil {
		return nil, err
	}
	return session.New(session.Config{
		Modes: modes,
		Engine: game.Options{
			Timing:  game.TimingFromConfig(cfg.Timing),
			Rule:    rule,
			Catalog: cat,
			Source:  src,
		},
		Settings: session.Settings{
			MusicEnabled: cfg.Audio.MusicEnabled,
			Volume:       cfg.Audio.Volume,
		},
		VolumeStep: cfg.Audio.VolumeStep,
	})
}

// preferenceLoader is the read side of the store.
type preferenceLoader interface {
	LoadPreferences() (storage.Preferences, error)
}

// applyPreferences restores the saved menu choices. A saved mode that is
// no longer configured is ignored.
func applyPreferences(m *session.Machine, store preferenceLoader, logger *log.Logger) {
	p, err := store.LoadPreferences()
	if err != nil {
		if !errors.Is(err, storage.ErrNoPreferences) {
			logger.Warn("failed to load preferences", "error", err)
		}
		return
	}
	s := m.Settings()
	s.MusicEnabled = p.MusicEnabled
	s.Volume = p.Volume
	m.SetSettings(s)
	if !m.SelectMode(p.ModeID) {
		logger.Warn("saved mode not configured", "mode", p.ModeID)
	}
	logger.Debug("preferences restored", "mode", m.Mode().ID, "music", s.MusicEnabled, "volume", s.Volume)
}

// openLogger opens the log file, creating its directory. The terminal
// frontend owns stdout, so logs never go there. When the file cannot be
// opened logs are discarded.
func openLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer
	if path != "" {
		if f, err := openLogFile(path); err == nil {
			w, closer = f, f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bane",
		Level:           lvl,
	})
	return logger, closer, nil
}

func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
