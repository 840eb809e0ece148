// Package driver connects a session machine to its side effects. The
// simulation packages stay pure; the driver logs what happened, keeps the
// music in step with the session and saves menu choices.
package driver

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-bane/internal/core"
	"github.com/vovakirdan/tetris-bane/internal/session"
	"github.com/vovakirdan/tetris-bane/internal/sound"
	"github.com/vovakirdan/tetris-bane/internal/storage"
)

// PreferenceSaver persists menu choices. *storage.Store satisfies it.
type PreferenceSaver interface {
	SavePreferences(storage.Preferences) error
}

// Options configures a Driver. Every field is optional.
type Options struct {
	Logger *log.Logger     // Nil discards logs
	Prefs  PreferenceSaver // Nil disables saving
	Player sound.Player    // Nil logs cues
	Fade   time.Duration   // Game over fade, sound.DefaultFade when zero
}

// Driver steps a session machine and reacts to each change.
type Driver struct {
	machine  *session.Machine
	director *sound.Director
	prefs    PreferenceSaver
	logger   *log.Logger
}

// New creates a driver for machine.
func New(machine *session.Machine, opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == nil {
		player = sound.LogPlayer{Logger: logger}
	}
	return &Driver{
		machine:  machine,
		director: sound.NewDirector(player, machine.Settings(), opts.Fade),
		prefs:    opts.Prefs,
		logger:   logger,
	}
}

// Machine returns the driven machine.
func (d *Driver) Machine() *session.Machine { return d.machine }

// Logger returns the driver's logger.
func (d *Driver) Logger() *log.Logger { return d.logger }

// Start begins a game in the selected mode, skipping the menu.
func (d *Driver) Start(now time.Time) session.Change {
	c := d.machine.Start(now)
	d.observe(c)
	return c
}

// Step feeds one input to the machine and handles the result.
func (d *Driver) Step(in core.Input, now time.Time) session.Change {
	c := d.machine.Step(in, now)
	d.observe(c)
	return c
}

func (d *Driver) observe(c session.Change) {
	if c.Transitioned() {
		d.logger.Info("state", "from", c.From, "to", c.To, "mode", d.machine.Mode().ID)
		if c.From == session.StatePlaying && c.To == session.StateGameOver {
			if e := d.machine.Engine(); e != nil {
				d.logger.Info("game over", "score", e.Score(), "lines", e.Lines(), "pieces", e.Pieces())
			}
		}
	}
	if c.Outcome.Cleared > 0 {
		d.logger.Debug("rows cleared", "rows", c.Outcome.Cleared)
	}

	d.director.Observe(c, d.machine.Mode(), d.machine.Settings())

	if c.Settings {
		d.savePreferences()
	}
}

func (d *Driver) savePreferences() {
	if d.prefs == nil {
		return
	}
	s := d.machine.Settings()
	err := d.prefs.SavePreferences(storage.Preferences{
		ModeID:       d.machine.Mode().ID,
		MusicEnabled: s.MusicEnabled,
		Volume:       s.Volume,
	})
	if err != nil {
		d.logger.Warn("failed to save preferences", "error", err)
	}
}
