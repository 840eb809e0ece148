package game

import "strings"

// Snapshot contains the session state for debugging and tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Mode        string
	Score       int
	Lines       int
	Pieces      int
	Label       string
	Orientation int
	IntervalMS  int64
	Over        bool
	Paused      bool

	// Falling piece cells, flattened: x0, y0, x1, y1, ...
	Cells []int

	// Board rows top to bottom, hidden rows included: '#' filled, '.' empty
	Board []string
}

// Snapshot returns the current session state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	cells := make([]int, 0, len(e.current.Cells)*2)
	for _, c := range e.current.Cells {
		cells = append(cells, c.X, c.Y)
	}

	return Snapshot{
		Mode:        e.mode.ID,
		Score:       e.score,
		Lines:       e.lines,
		Pieces:      e.pieces,
		Label:       e.current.Label.String(),
		Orientation: e.orientation,
		IntervalMS:  e.interval.Milliseconds(),
		Over:        e.over,
		Paused:      e.paused,
		Cells:       cells,
		Board:       strings.Split(strings.TrimSuffix(e.board.String(), "\n"), "\n"),
	}
}
