// Package core provides the fundamental value types shared by the board
// simulation and its frontends. It has no external dependencies so game
// logic stays pure and testable.
package core

// Position is a cell coordinate on the board. X grows to the right and
// Y grows downward. The same type doubles as a delta.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the component-wise difference p - d.
func (p Position) Sub(d Position) Position {
	return Position{X: p.X - d.X, Y: p.Y - d.Y}
}

// Translate adds d to every position and returns a new slice.
// The input slice is never modified.
func Translate(cells []Position, d Position) []Position {
	out := make([]Position, len(cells))
	for i, c := range cells {
		out[i] = c.Add(d)
	}
	return out
}

// Rect represents an axis-aligned rectangle on a screen or board.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Wrap returns val modulo n, always in [0, n). n must be positive.
func Wrap(val, n int) int {
	return ((val % n) + n) % n
}
