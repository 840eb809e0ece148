package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris-bane/internal/config"
	"github.com/vovakirdan/tetris-bane/internal/core"
	"github.com/vovakirdan/tetris-bane/internal/game"
	"github.com/vovakirdan/tetris-bane/internal/session"
)

const (
	title     = "T E T R I S   B A N E"
	hudWidth  = 22
	volumeBar = 8
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.machine.State() {
	case session.StateMenu:
		body = m.menuView()
	case session.StatePlaying, session.StatePaused, session.StateGameOver:
		e := m.machine.Engine()
		if e == nil {
			return ""
		}
		bw, bh := boardSize(e.Board())
		if m.width < bw+hudWidth || m.height < bh+1 {
			return centerText(fmt.Sprintf("Terminal too small: need %dx%d", bw+hudWidth, bh+1), m.width)
		}
		body = m.playView(e)
	default:
		return ""
	}

	footer := m.help.View(m.keys)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, body, "", footer))
}

func (m Model) menuView() string {
	t := m.theme
	menu := m.machine.MainMenu()
	settings := m.machine.Settings()

	lines := []string{t.MenuTitle.Render(title), ""}
	for i, item := range menu.Items() {
		label := fmt.Sprintf("%-8s", item.String())
		value := ""
		switch item {
		case session.ItemMode:
			value = "‹ " + m.machine.Mode().Name + " ›"
		case session.ItemMusic:
			value = onOff(settings.MusicEnabled)
		case session.ItemVolume:
			value = volumeGauge(settings.Volume)
		}

		style := t.MenuItemNormal
		cursor := "  "
		if i == menu.Cursor() {
			style = t.MenuItemActive
			cursor = "▸ "
		}
		line := style.Render(cursor + label)
		if value != "" {
			line += " " + t.MenuValue.Render(value)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", t.MenuHint.Render(modeSummary(m.machine.Mode())))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) playView(e *game.Engine) string {
	b := e.Board()
	bw, bh := boardSize(b)
	m.screen.Resize(bw, bh)
	m.screen.Clear()
	border := core.ColorGray
	if e.Over() {
		border = core.ColorRed
	}
	drawBoard(m.screen, b, 0, 0, border)

	hud := lipgloss.JoinHorizontal(lipgloss.Top, "  ", m.hudView(e))
	return lipgloss.JoinHorizontal(lipgloss.Top, RenderScreen(m.screen), hud)
}

func (m Model) hudView(e *game.Engine) string {
	t := m.theme
	row := func(label string, value any) string {
		return t.HUDLabel.Render(fmt.Sprintf("%-7s", label)) + t.HUDValue.Render(fmt.Sprint(value))
	}

	lines := []string{
		t.HUDTitle.Render(e.Mode().Name),
		"",
		row("Score", e.Score()),
		row("Lines", e.Lines()),
		row("Pieces", e.Pieces()),
	}

	switch m.machine.State() {
	case session.StatePaused:
		lines = append(lines, "", t.OverlayTitle.Render("PAUSED"), "")
		menu := m.machine.PauseMenu()
		for i, item := range menu.Items() {
			if i == menu.Cursor() {
				lines = append(lines, t.MenuItemActive.Render("▸ "+item.String()))
			} else {
				lines = append(lines, t.MenuItemNormal.Render("  "+item.String()))
			}
		}
	case session.StateGameOver:
		lines = append(lines, "", t.OverlayTitle.Render("GAME OVER"),
			t.OverlayText.Render(fmt.Sprintf("Final score %d", e.Score())))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// volumeGauge draws the volume as a bar followed by its value.
func volumeGauge(v int) string {
	filled := core.Clamp(v*volumeBar/config.MaxVolume, 0, volumeBar)
	return strings.Repeat("█", filled) + strings.Repeat("░", volumeBar-filled) + fmt.Sprintf(" %d", v)
}

func modeSummary(mode game.Mode) string {
	names := make([]string, len(mode.Labels))
	for i, l := range mode.Labels {
		names[i] = l.String()
	}
	return fmt.Sprintf("%dx%d board · %s", mode.Width, mode.Height-mode.HiddenRows, strings.Join(names, " "))
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textLen := len([]rune(text))
	if textLen >= width {
		return text
	}
	padding := (width - textLen) / 2
	return strings.Repeat(" ", padding) + text
}
