package session

import (
	"errors"
	"time"

	"github.com/vovakirdan/tetris-bane/internal/config"
	"github.com/vovakirdan/tetris-bane/internal/core"
	"github.com/vovakirdan/tetris-bane/internal/game"
)

// Settings are the player choices made in the main menu.
type Settings struct {
	ModeIndex    int
	MusicEnabled bool
	Volume       int // 0..config.MaxVolume
}

// Config configures a Machine.
type Config struct {
	Modes      []game.Mode
	Engine     game.Options // Shared by every session started from the menu
	Settings   Settings
	VolumeStep int
}

// Change describes what a single Step did.
type Change struct {
	From, To State
	Settings bool         // Mode, music or volume changed
	Outcome  game.Outcome // Result of the engine tick while playing
}

// Transitioned reports whether the state changed.
func (c Change) Transitioned() bool {
	return c.From != c.To
}

// Machine drives the menus and play sessions from discrete inputs and
// the current time. It is owned by a single loop.
type Machine struct {
	state      State
	modes      []game.Mode
	opts       game.Options
	settings   Settings
	volumeStep int

	main   Menu
	pause  Menu
	engine *game.Engine
}

// New creates a machine in the main menu.
func New(cfg Config) (*Machine, error) {
	if len(cfg.Modes) == 0 {
		return nil, errors.New("session: no modes")
	}
	step := cfg.VolumeStep
	if step <= 0 {
		step = 8
	}
	m := &Machine{
		state:      StateMenu,
		modes:      cfg.Modes,
		opts:       cfg.Engine,
		volumeStep: step,
		main:       MainMenu(),
		pause:      PauseMenu(),
	}
	m.SetSettings(cfg.Settings)
	return m, nil
}

// State returns the active state.
func (m *Machine) State() State { return m.state }

// Engine returns the current play session, or nil in the menu.
// During GameOver it still holds the final board.
func (m *Machine) Engine() *game.Engine { return m.engine }

// MainMenu returns the main menu.
func (m *Machine) MainMenu() Menu { return m.main }

// PauseMenu returns the pause menu.
func (m *Machine) PauseMenu() Menu { return m.pause }

// Modes returns the selectable modes in order.
func (m *Machine) Modes() []game.Mode { return m.modes }

// Mode returns the selected mode.
func (m *Machine) Mode() game.Mode { return m.modes[m.settings.ModeIndex] }

// Settings returns the current menu choices.
func (m *Machine) Settings() Settings { return m.settings }

// SetSettings replaces the menu choices, wrapping the mode index and
// clamping the volume.
func (m *Machine) SetSettings(s Settings) {
	s.ModeIndex = core.Wrap(s.ModeIndex, len(m.modes))
	s.Volume = core.Clamp(s.Volume, 0, config.MaxVolume)
	m.settings = s
}

// SelectMode selects a mode by id and reports whether it exists.
func (m *Machine) SelectMode(id string) bool {
	for i, mode := range m.modes {
		if mode.ID == id {
			m.settings.ModeIndex = i
			return true
		}
	}
	return false
}

// Start begins a session with the selected mode from any state.
func (m *Machine) Start(now time.Time) Change {
	c := Change{From: m.state}
	m.begin(now)
	c.To = m.state
	return c
}

func (m *Machine) begin(now time.Time) {
	m.engine = game.New(m.Mode(), m.opts, now)
	m.pause.Reset()
	m.state = StatePlaying
	if m.engine.Over() {
		m.state = StateGameOver
	}
}

// Step feeds one input (core.InputNone for none) and advances time.
func (m *Machine) Step(in core.Input, now time.Time) Change {
	c := Change{From: m.state}
	if in == core.InputQuit {
		m.state = StateQuit
		c.To = m.state
		return c
	}

	switch m.state {
	case StateMenu:
		c.Settings = m.stepMenu(in, now)
	case StatePlaying:
		c.Outcome = m.stepPlaying(in, now)
	case StatePaused:
		m.stepPaused(in, now)
	case StateGameOver:
		if m.engine == nil || m.engine.Lingered(now) {
			m.toMenu()
		}
	}
	c.To = m.state
	return c
}

func (m *Machine) stepMenu(in core.Input, now time.Time) bool {
	switch in {
	case core.InputUp:
		m.main.Move(-1)
	case core.InputDown:
		m.main.Move(1)
	case core.InputLeft:
		return m.adjust(-1)
	case core.InputRight:
		return m.adjust(1)
	case core.InputEscape:
		m.state = StateQuit
	case core.InputConfirm:
		switch m.main.Selected() {
		case ItemPlay:
			m.begin(now)
		case ItemQuit:
			m.state = StateQuit
		case ItemMode, ItemMusic:
			return m.adjust(1)
		}
	}
	return false
}

// adjust changes the highlighted setting in direction dir (-1 or 1).
func (m *Machine) adjust(dir int) bool {
	before := m.settings
	switch m.main.Selected() {
	case ItemMode:
		m.settings.ModeIndex = core.Wrap(m.settings.ModeIndex+dir, len(m.modes))
	case ItemMusic:
		m.settings.MusicEnabled = !m.settings.MusicEnabled
	case ItemVolume:
		m.settings.Volume = core.Clamp(m.settings.Volume+dir*m.volumeStep, 0, config.MaxVolume)
	}
	return m.settings != before
}

func (m *Machine) stepPlaying(in core.Input, now time.Time) game.Outcome {
	if in == core.InputPause || in == core.InputEscape {
		m.engine.Pause(now)
		m.pause.Reset()
		m.state = StatePaused
		return game.Outcome{}
	}
	out := m.engine.Step(in, now)
	if m.engine.Over() {
		m.state = StateGameOver
	}
	return out
}

func (m *Machine) stepPaused(in core.Input, now time.Time) {
	switch in {
	case core.InputPause, core.InputEscape:
		m.resume(now)
	case core.InputUp:
		m.pause.Move(-1)
	case core.InputDown:
		m.pause.Move(1)
	case core.InputConfirm:
		switch m.pause.Selected() {
		case ItemResume:
			m.resume(now)
		case ItemEndGame:
			m.toMenu()
		case ItemQuit:
			m.state = StateQuit
		}
	}
}

func (m *Machine) resume(now time.Time) {
	m.engine.Resume(now)
	m.state = StatePlaying
}

func (m *Machine) toMenu() {
	m.engine = nil
	m.state = StateMenu
}
