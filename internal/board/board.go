// Package board implements the playing field: a grid of optional colored
// cells with painting, collision tests and full-row clearing.
package board

import (
	"fmt"

	"github.com/vovakirdan/tetris-bane/internal/core"
)

// Board is a fixed-size grid of cells. A nil cell is empty. The first
// Hidden rows exist for spawning and collision but are not drawn.
type Board struct {
	width  int
	height int
	hidden int
	cells  [][]*core.Color
}

// New creates an empty board. hidden is clamped to [0, height).
func New(width, height, hidden int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("board: invalid size %dx%d", width, height))
	}
	b := &Board{
		width:  width,
		height: height,
		hidden: core.Clamp(hidden, 0, height-1),
		cells:  make([][]*core.Color, height),
	}
	for y := range b.cells {
		b.cells[y] = make([]*core.Color, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows, hidden rows included.
func (b *Board) Height() int { return b.height }

// Hidden returns the number of hidden rows at the top.
func (b *Board) Hidden() int { return b.hidden }

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p core.Position) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// IsOccupied reports whether the cell at p holds a color.
// p must be in bounds; an out-of-bounds query is a programming error.
func (b *Board) IsOccupied(p core.Position) bool {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("board: IsOccupied(%d,%d) outside %dx%d", p.X, p.Y, b.width, b.height))
	}
	return b.cells[p.Y][p.X] != nil
}

// At returns the color at p and whether the cell is filled.
// Out-of-bounds positions read as empty.
func (b *Board) At(p core.Position) (core.Color, bool) {
	if !b.InBounds(p) {
		return core.Color{}, false
	}
	c := b.cells[p.Y][p.X]
	if c == nil {
		return core.Color{}, false
	}
	return *c, true
}

// CanPlace reports whether p is in bounds and empty.
func (b *Board) CanPlace(p core.Position) bool {
	return b.InBounds(p) && b.cells[p.Y][p.X] == nil
}

// AllCanPlace reports whether every cell can be placed. A single
// rejected cell rejects the whole set.
func (b *Board) AllCanPlace(cells []core.Position) bool {
	for _, p := range cells {
		if !b.CanPlace(p) {
			return false
		}
	}
	return true
}

// Paint fills every in-bounds cell with color. Out-of-bounds cells are
// skipped so a colliding spawn can still be shown.
func (b *Board) Paint(cells []core.Position, color core.Color) {
	for _, p := range cells {
		if b.InBounds(p) {
			c := color
			b.cells[p.Y][p.X] = &c
		}
	}
}

// Unpaint clears every in-bounds cell.
func (b *Board) Unpaint(cells []core.Position) {
	for _, p := range cells {
		if b.InBounds(p) {
			b.cells[p.Y][p.X] = nil
		}
	}
}

// Attempt lifts the painted cells of current off the board, then paints
// candidate if it can be placed or current otherwise. A piece never
// collides with itself and never ends up half moved.
func (b *Board) Attempt(current, candidate []core.Position, color core.Color) bool {
	b.Unpaint(current)
	ok := b.AllCanPlace(candidate)
	if ok {
		b.Paint(candidate, color)
	} else {
		b.Paint(current, color)
	}
	return ok
}

// Resting reports whether the painted piece at cells has finished
// falling: some cell sits on the bottom row or directly above an occupied
// cell that is not part of the piece. The board is left as it was found.
func (b *Board) Resting(cells []core.Position, color core.Color) bool {
	b.Unpaint(cells)
	defer b.Paint(cells, color)

	for _, p := range cells {
		below := p.Add(core.Pos(0, 1))
		if below.Y >= b.height {
			return true
		}
		if b.InBounds(below) && b.cells[below.Y][below.X] != nil {
			return true
		}
	}
	return false
}

// RowFull reports whether every cell of row y is filled.
func (b *Board) RowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == nil {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row and shifts the rows above it
// down, inserting empty rows at the top. Full rows are found in a
// single pass before anything moves, so adjacent full rows are all
// removed. It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]*core.Color, 0, b.height)
	for y := range b.height {
		if !b.RowFull(y) {
			kept = append(kept, b.cells[y])
		}
	}
	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]*core.Color, 0, b.height)
	for range cleared {
		rows = append(rows, make([]*core.Color, b.width))
	}
	b.cells = append(rows, kept...)
	return cleared
}

// Rows returns a copy of the grid, hidden rows included. Empty cells
// are nil.
func (b *Board) Rows() [][]*core.Color {
	out := make([][]*core.Color, b.height)
	for y, row := range b.cells {
		out[y] = make([]*core.Color, b.width)
		for x, c := range row {
			if c != nil {
				v := *c
				out[y][x] = &v
			}
		}
	}
	return out
}

// Visible returns the rows a renderer should draw.
func (b *Board) Visible() [][]*core.Color {
	return b.Rows()[b.hidden:]
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != nil {
				n++
			}
		}
	}
	return n
}

// String renders the board as text for tests and debug logs: '#' for a
// filled cell, '.' for an empty one, hidden rows included.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.width+1)*b.height)
	for _, row := range b.cells {
		for _, c := range row {
			if c != nil {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
