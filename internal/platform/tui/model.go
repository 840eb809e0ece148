package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-bane/internal/core"
	"github.com/vovakirdan/tetris-bane/internal/platform/driver"
	"github.com/vovakirdan/tetris-bane/internal/session"
	"github.com/vovakirdan/tetris-bane/internal/sound"
)

// Options configures the terminal frontend.
type Options struct {
	Config core.RuntimeConfig
	Logger *log.Logger            // Nil discards logs
	Prefs  driver.PreferenceSaver // Nil disables saving
	Player sound.Player           // Nil logs cues
	Theme  string                 // "default" or "mono"
	Start  bool                   // Skip the menu and play the selected mode
}

// Model is the Bubble Tea model driving a session machine.
type Model struct {
	driver  *driver.Driver
	machine *session.Machine

	keys   KeyMap
	help   help.Model
	theme  Theme
	screen *core.Screen
	config core.RuntimeConfig
	start  bool

	soft     softDrop
	width    int
	height   int
	quitting bool
}

// NewModel creates a Bubble Tea model for the given machine.
func NewModel(machine *session.Machine, opts Options) Model {
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		driver: driver.New(machine, driver.Options{
			Logger: opts.Logger,
			Prefs:  opts.Prefs,
			Player: opts.Player,
		}),
		machine: machine,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   ThemeByName(opts.Theme),
		screen:  core.NewScreen(0, 0),
		config:  cfg,
		start:   opts.Start,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// Machine returns the session machine the model drives.
func (m Model) Machine() *session.Machine { return m.machine }

// Init starts the tick loop, and the game too when asked to skip the menu.
func (m Model) Init() tea.Cmd {
	if m.start {
		m.driver.Start(time.Now())
	}
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	in := m.keys.Input(msg)
	if in == core.InputNone {
		return m, nil
	}
	if in == core.InputDown && m.machine.State() == session.StatePlaying {
		m.soft.press(now)
	}
	return m.step(in, now)
}

// handleTick advances the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := core.InputNone
	if m.soft.expired(now) {
		in = core.InputDownRelease
	}
	next, cmd := m.step(in, now)
	if cmd != nil {
		return next, cmd
	}
	return next, tickCmd(m.config.TickInterval())
}

// step feeds one input to the driver.
func (m Model) step(in core.Input, now time.Time) (Model, tea.Cmd) {
	c := m.driver.Step(in, now)
	if c.Transitioned() && c.To != session.StatePlaying {
		m.soft.reset()
	}
	if c.To == session.StateQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(machine *session.Machine, opts Options) error {
	model := NewModel(machine, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	logger := model.driver.Logger()
	logger.Info("terminal frontend started", "mode", machine.Mode().ID)
	_, err := p.Run()
	logger.Info("terminal frontend stopped")
	return err
}
