package piece

import (
	"github.com/vovakirdan/tetris-bane/internal/core"
)

// Piece is a live piece: its label, its cells in catalog order and its color.
// Cells are replaced wholesale on every accepted move or rotation.
type Piece struct {
	Label Label
	Cells []core.Position
	Color core.Color
}

// Clone returns a copy of the piece that shares no memory with p.
func (p Piece) Clone() Piece {
	cells := make([]core.Position, len(p.Cells))
	copy(cells, p.Cells)
	return Piece{Label: p.Label, Cells: cells, Color: p.Color}
}

// Moved returns the candidate cells of p shifted by d. p is not modified.
func (p Piece) Moved(d core.Position) []core.Position {
	return core.Translate(p.Cells, d)
}

// Source picks an index in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// New returns the label's spawn layout translated to anchor.
func (c *Catalog) New(l Label, anchor core.Position) Piece {
	d := c.mustDescribe(l)
	return Piece{
		Label: l,
		Cells: core.Translate(d.Orientations[0], anchor),
		Color: d.Color,
	}
}

// Spawn picks a label uniformly from labels and returns it at anchor.
// labels must be non-empty; modes guarantee this when they are built.
func (c *Catalog) Spawn(src Source, labels []Label, anchor core.Position) Piece {
	return c.New(labels[src.Intn(len(labels))], anchor)
}

// Rotate returns the candidate cells for rotating p out of the given
// orientation. It does not modify p; the caller validates the candidate
// against the board before adopting it. Symmetric labels return their
// cells unchanged.
func (c *Catalog) Rotate(p Piece, orientation int) []core.Position {
	d := c.mustDescribe(p.Label)
	out := make([]core.Position, len(p.Cells))
	if d.Symmetric() {
		copy(out, p.Cells)
		return out
	}
	step := d.steps[core.Wrap(orientation, d.Cycle())]
	for i, cell := range p.Cells {
		out[i] = cell.Add(step[i])
	}
	return out
}

// NextOrientation returns the orientation index after one accepted rotation.
func (c *Catalog) NextOrientation(l Label, orientation int) int {
	return core.Wrap(orientation+1, c.mustDescribe(l).Cycle())
}
