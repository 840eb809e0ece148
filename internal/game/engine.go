package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tetris-bane/internal/board"
	"github.com/vovakirdan/tetris-bane/internal/core"
	"github.com/vovakirdan/tetris-bane/internal/piece"
)

// Options configures an Engine. Zero fields take defaults: classic timing,
// flat scoring, the default catalog and a time-seeded source.
type Options struct {
	Timing  Timing
	Rule    ScoreRule
	Catalog *piece.Catalog
	Source  piece.Source
}

// Outcome reports what a single Tick did.
type Outcome struct {
	Fell     bool // The piece moved down one row
	Locked   bool // The piece landed and a new one was spawned
	Cleared  int  // Rows removed by this landing
	GameOver bool // The spawn collided; the session has ended
}

// Engine is one play session. It owns its board and is driven by a
// single loop: Apply for input, Tick for time.
type Engine struct {
	mode    Mode
	timing  Timing
	rule    ScoreRule
	catalog *piece.Catalog
	src     piece.Source
	board   *board.Board

	current     piece.Piece
	orientation int
	interval    time.Duration
	lastFall    time.Time

	score  int
	lines  int
	pieces int

	over     bool
	paused   bool
	pausedAt time.Time
}

// New starts a session for mode at time now with a freshly spawned piece.
func New(mode Mode, opts Options, now time.Time) *Engine {
	if opts.Timing.Fall <= 0 {
		opts.Timing = DefaultTiming()
	}
	if opts.Rule == nil {
		opts.Rule = FlatRule{}
	}
	if opts.Catalog == nil {
		opts.Catalog = piece.DefaultCatalog()
	}
	if opts.Source == nil {
		opts.Source = rand.New(rand.NewSource(now.UnixNano()))
	}

	e := &Engine{
		mode:     mode,
		timing:   opts.Timing,
		rule:     opts.Rule,
		catalog:  opts.Catalog,
		src:      opts.Source,
		board:    board.New(mode.Width, mode.Height, mode.HiddenRows),
		interval: opts.Timing.Fall,
		lastFall: now,
	}
	e.current = e.catalog.Spawn(e.src, mode.Labels, mode.Anchor())
	e.board.Paint(e.current.Cells, e.current.Color)
	// A mode whose spawn does not fit an empty board is over at once.
	if !e.fits(e.current) {
		e.over = true
	}
	return e
}

// fits reports whether p lies entirely on the board.
func (e *Engine) fits(p piece.Piece) bool {
	for _, c := range p.Cells {
		if !e.board.InBounds(c) {
			return false
		}
	}
	return true
}

// Apply handles one input. Moves and rotations that the board rejects
// are silently ignored. It returns true when the input changed anything.
func (e *Engine) Apply(in core.Input) bool {
	if e.over || e.paused {
		return false
	}
	switch in {
	case core.InputLeft:
		return e.shift(core.Pos(-1, 0))
	case core.InputRight:
		return e.shift(core.Pos(1, 0))
	case core.InputUp:
		return e.rotate()
	case core.InputDown:
		changed := e.interval != e.timing.FastFall
		e.interval = e.timing.FastFall
		return changed
	case core.InputDownRelease:
		changed := e.interval != e.timing.Fall
		e.interval = e.timing.Fall
		return changed
	}
	return false
}

func (e *Engine) shift(d core.Position) bool {
	candidate := e.current.Moved(d)
	if !e.board.Attempt(e.current.Cells, candidate, e.current.Color) {
		return false
	}
	e.current.Cells = candidate
	return true
}

func (e *Engine) rotate() bool {
	candidate := e.catalog.Rotate(e.current, e.orientation)
	if !e.board.Attempt(e.current.Cells, candidate, e.current.Color) {
		return false
	}
	e.current.Cells = candidate
	e.orientation = e.catalog.NextOrientation(e.current.Label, e.orientation)
	return true
}

// Tick advances the fall clock. Nothing happens until the current
// interval has elapsed since the last fall. Then the piece either drops
// one row or, if it is resting, locks in place and the next piece spawns.
func (e *Engine) Tick(now time.Time) Outcome {
	var out Outcome
	if e.over || e.paused {
		return out
	}
	if now.Sub(e.lastFall) < e.interval {
		return out
	}
	e.lastFall = now

	if !e.board.Resting(e.current.Cells, e.current.Color) {
		out.Fell = e.shift(core.Pos(0, 1))
		return out
	}

	// The landed piece is already painted; it stays where it is.
	out.Locked = true
	e.pieces++

	next := e.catalog.Spawn(e.src, e.mode.Labels, e.mode.Anchor())
	if !e.board.AllCanPlace(next.Cells) {
		// The losing landing still scores the rows it completed.
		e.endWith(next)
		out.Cleared = e.clearRows()
		out.GameOver = true
		return out
	}
	e.current = next
	e.orientation = 0
	e.interval = e.timing.Fall

	out.Cleared = e.clearRows()

	// Rows shifting down can fill cells the spawn was checked against.
	if !e.board.AllCanPlace(next.Cells) {
		e.endWith(next)
		out.GameOver = true
		return out
	}
	e.board.Paint(next.Cells, next.Color)
	return out
}

// clearRows removes full rows and scores them.
func (e *Engine) clearRows() int {
	cleared := e.board.ClearFullRows()
	e.lines += cleared
	e.score += e.rule.Points(cleared)
	return cleared
}

// endWith paints the colliding spawn so the final board shows it.
func (e *Engine) endWith(p piece.Piece) {
	e.current = p
	e.orientation = 0
	e.board.Paint(p.Cells, p.Color)
	e.over = true
}

// Step applies one input then advances the clock.
func (e *Engine) Step(in core.Input, now time.Time) Outcome {
	e.Apply(in)
	return e.Tick(now)
}

// Pause stops the fall clock.
func (e *Engine) Pause(now time.Time) {
	if e.paused || e.over {
		return
	}
	e.paused = true
	e.pausedAt = now
}

// Resume restarts the fall clock. Time spent paused does not count
// towards the next fall. A soft drop held into the pause is over: its
// release may have come while input was ignored.
func (e *Engine) Resume(now time.Time) {
	if !e.paused {
		return
	}
	e.paused = false
	e.interval = e.timing.Fall
	if now.After(e.pausedAt) {
		e.lastFall = e.lastFall.Add(now.Sub(e.pausedAt))
	}
}

// Lingered reports whether the session is over and the final board has
// been shown for the game-over pause. It runs off the fall clock, which
// stopped at the losing tick.
func (e *Engine) Lingered(now time.Time) bool {
	return e.over && now.Sub(e.lastFall) >= e.timing.GameOverPause
}

// Mode returns the active mode.
func (e *Engine) Mode() Mode { return e.mode }

// Board returns the board for rendering. Callers must not modify it.
func (e *Engine) Board() *board.Board { return e.board }

// Current returns a copy of the falling piece.
func (e *Engine) Current() piece.Piece { return e.current.Clone() }

// Orientation returns the orientation index of the falling piece.
func (e *Engine) Orientation() int { return e.orientation }

// Interval returns the current fall interval.
func (e *Engine) Interval() time.Duration { return e.interval }

// Score returns the points earned so far.
func (e *Engine) Score() int { return e.score }

// Lines returns the number of rows cleared so far.
func (e *Engine) Lines() int { return e.lines }

// Pieces returns the number of pieces that have landed.
func (e *Engine) Pieces() int { return e.pieces }

// Over reports whether the session has ended.
func (e *Engine) Over() bool { return e.over }

// Paused reports whether the fall clock is stopped.
func (e *Engine) Paused() bool { return e.paused }
