package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris-bane/internal/board"
	"github.com/vovakirdan/tetris-bane/internal/core"
)

// Board cells are two characters wide so they look square.
const (
	filledCell = "██"
	emptyCell  = " ·"
)

// colorStyles caches one lipgloss style per piece color.
var colorStyles = map[core.Color]lipgloss.Style{}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	colorStyles[c] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Styled != start.Styled || cell.Color != start.Color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Styled {
				sb.WriteString(styleFor(start.Color).Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}

// drawBoard draws the visible rows of b inside a box at (x, y).
// The box is b.Width()*2+2 columns wide and visible rows+2 tall.
func drawBoard(s *core.Screen, b *board.Board, x, y int, border core.Color) {
	rows := b.Visible()
	frame := core.NewRect(x, y, b.Width()*2+2, len(rows)+2)
	s.DrawBox(frame)
	for fy := frame.Y; fy < frame.Bottom(); fy++ {
		for fx := frame.X; fx < frame.Right(); fx++ {
			if fy == frame.Y || fy == frame.Bottom()-1 || fx == frame.X || fx == frame.Right()-1 {
				s.SetColored(fx, fy, s.Get(fx, fy), border)
			}
		}
	}

	for row, cells := range rows {
		for col, c := range cells {
			cx := x + 1 + col*2
			cy := y + 1 + row
			if c == nil {
				drawRunes(s, cx, cy, emptyCell, core.ColorGray)
			} else {
				drawRunes(s, cx, cy, filledCell, *c)
			}
		}
	}
}

func drawRunes(s *core.Screen, x, y int, text string, c core.Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// boardSize returns the terminal footprint of drawBoard for b.
func boardSize(b *board.Board) (w, h int) {
	return b.Width()*2 + 2, b.Height() - b.Hidden() + 2
}
