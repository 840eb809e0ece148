package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris-bane/internal/core"
)

// KeyMap holds the key bindings. It implements help.KeyMap for the footer.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Rotate  key.Binding
	Down    key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Escape  key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// DefaultKeyMap returns the arrow/WASD layout.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "rotate"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "soft drop"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Down, k.Pause, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.Down},
		{k.Confirm, k.Pause, k.Escape},
		{k.Help, k.Quit},
	}
}

// Input translates a key message to a game input. Keys without a
// binding map to core.InputNone. Terminals report no key releases, so
// InputDownRelease never comes from here.
func (k KeyMap) Input(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.InputQuit
	case key.Matches(msg, k.Left):
		return core.InputLeft
	case key.Matches(msg, k.Right):
		return core.InputRight
	case key.Matches(msg, k.Rotate):
		return core.InputUp
	case key.Matches(msg, k.Down):
		return core.InputDown
	case key.Matches(msg, k.Confirm):
		return core.InputConfirm
	case key.Matches(msg, k.Pause):
		return core.InputPause
	case key.Matches(msg, k.Escape):
		return core.InputEscape
	}
	return core.InputNone
}
