package piece

import "github.com/vovakirdan/tetris-bane/internal/core"

// p is shorthand for layout tables.
func p(x, y int) core.Position {
	return core.Position{X: x, Y: y}
}

// shapes lists every label's orientation layouts relative to the spawn
// anchor. Orientation 0 is the spawn layout. Cell order is significant:
// cell i of one orientation becomes cell i of the next, so the rotation
// step k is the per-cell difference between orientation k+1 and k.
// Labels with a single orientation never rotate.
var shapes = []Descriptor{
	{
		// XXX
		//  X
		Label: T,
		Color: core.ColorGreen,
		Orientations: [][]core.Position{
			{p(0, 0), p(1, 0), p(2, 0), p(1, 1)},
			{p(0, 0), p(1, 0), p(1, -1), p(1, 1)},
			{p(0, 0), p(1, 0), p(1, -1), p(2, 0)},
			{p(1, 1), p(1, 0), p(1, -1), p(2, 0)},
		},
	},
	{
		//  XX
		// XX
		Label: S,
		Color: core.ColorRed,
		Orientations: [][]core.Position{
			{p(0, 1), p(1, 1), p(1, 0), p(2, 0)},
			{p(2, 1), p(1, -1), p(1, 0), p(2, 0)},
		},
	},
	{
		// XX
		//  XX
		Label: Z,
		Color: core.ColorWhite,
		Orientations: [][]core.Position{
			{p(0, 0), p(1, 0), p(1, 1), p(2, 1)},
			{p(1, 2), p(2, 0), p(1, 1), p(2, 1)},
		},
	},
	{
		// XXX
		// X
		Label: L,
		Color: core.ColorYellow,
		Orientations: [][]core.Position{
			{p(0, 0), p(1, 0), p(2, 0), p(0, 1)},
			{p(0, -1), p(1, 0), p(1, -1), p(1, 1)},
			{p(0, 0), p(1, 0), p(2, -1), p(2, 0)},
			{p(1, 1), p(1, 0), p(1, -1), p(2, 1)},
		},
	},
	{
		// XXX
		//   X
		// Quarter turns about the middle cell keep every cell's identity.
		Label: J,
		Color: core.ColorMagenta,
		Orientations: [][]core.Position{
			{p(0, 0), p(1, 0), p(2, 0), p(2, 1)},
			{p(1, -1), p(1, 0), p(1, 1), p(0, 1)},
			{p(2, 0), p(1, 0), p(0, 0), p(0, -1)},
			{p(1, 1), p(1, 0), p(1, -1), p(2, -1)},
		},
	},
	{
		// XX
		// XX
		Label: O,
		Color: core.ColorCyan,
		Orientations: [][]core.Position{
			{p(0, 0), p(1, 0), p(0, 1), p(1, 1)},
		},
	},
	{
		// XXXX
		Label: I,
		Color: core.ColorBlue,
		Orientations: [][]core.Position{
			{p(0, 0), p(1, 0), p(2, 0), p(3, 0)},
			{p(2, -2), p(2, -1), p(2, 0), p(2, 1)},
		},
	},
	{
		// XXX
		//  X
		//  X
		Label: BaneT,
		Color: core.ColorGreen,
		Orientations: [][]core.Position{
			{p(0, 0), p(1, 0), p(2, 0), p(1, 1), p(1, 2)},
			{p(0, 0), p(0, 1), p(2, 1), p(1, 1), p(0, 2)},
			{p(1, 0), p(1, 2), p(2, 2), p(1, 1), p(0, 2)},
			{p(2, 0), p(2, 1), p(2, 2), p(1, 1), p(0, 1)},
		},
	},
	{
		// XXX
		// X X
		// XXX
		Label: BaneO,
		Color: core.ColorCyan,
		Orientations: [][]core.Position{
			{p(0, 0), p(1, 0), p(2, 0), p(0, 1), p(2, 1), p(0, 2), p(1, 2), p(2, 2)},
		},
	},
	{
		//  XX
		// XX
		// X
		Label: BaneS,
		Color: core.ColorRed,
		Orientations: [][]core.Position{
			{p(0, 2), p(0, 1), p(1, 1), p(1, 0), p(2, 0)},
			{p(2, 2), p(1, 2), p(1, 1), p(0, 1), p(0, 0)},
			{p(2, 0), p(2, 1), p(1, 1), p(1, 2), p(0, 2)},
			{p(0, 0), p(1, 0), p(1, 1), p(2, 1), p(2, 2)},
		},
	},
	{
		//  X
		// XXX
		//  X
		Label: BaneX,
		Color: core.ColorWhite,
		Orientations: [][]core.Position{
			{p(1, 0), p(0, 1), p(1, 1), p(1, 2), p(2, 1)},
		},
	},
	{
		// XXXXX
		Label: BaneI,
		Color: core.ColorBlue,
		Orientations: [][]core.Position{
			{p(0, 0), p(1, 0), p(2, 0), p(3, 0), p(4, 0)},
			{p(2, -2), p(2, -1), p(2, 0), p(2, 1), p(2, 2)},
		},
	},
	{
		// XXX
		// X
		// X
		Label: BaneL,
		Color: core.ColorYellow,
		Orientations: [][]core.Position{
			{p(0, 0), p(1, 0), p(2, 0), p(0, 1), p(0, 2)},
			{p(0, 0), p(1, 2), p(2, 2), p(0, 1), p(0, 2)},
			{p(2, 0), p(1, 2), p(2, 2), p(2, 1), p(0, 2)},
			{p(2, 0), p(1, 0), p(2, 2), p(2, 1), p(0, 0)},
		},
	},
	{
		// XXX
		// XXX
		// XXX
		Label: BaneBox,
		Color: core.ColorOrange,
		Orientations: [][]core.Position{
			{p(0, 0), p(1, 0), p(2, 0), p(0, 1), p(1, 1), p(2, 1), p(0, 2), p(1, 2), p(2, 2)},
		},
	},
}
