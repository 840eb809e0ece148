package tui

import "time"

// Terminals only deliver key presses, so a held soft drop shows up as a
// press followed by auto-repeats. The drop is released once repeats stop
// arriving. A lone press only holds for about one fast-fall row; a key
// that keeps repeating re-engages the drop on every repeat.
const (
	softDropFirstGrace  = 35 * time.Millisecond
	softDropRepeatGrace = 120 * time.Millisecond
)

type softDrop struct {
	held    bool
	repeats int
	last    time.Time
}

// press records a soft drop key event.
func (s *softDrop) press(now time.Time) {
	if s.held {
		s.repeats++
	} else {
		s.held = true
		s.repeats = 0
	}
	s.last = now
}

// expired reports whether the key should be treated as released at now.
// It clears the hold when it reports true.
func (s *softDrop) expired(now time.Time) bool {
	if !s.held {
		return false
	}
	grace := softDropRepeatGrace
	if s.repeats == 0 {
		grace = softDropFirstGrace
	}
	if now.Sub(s.last) < grace {
		return false
	}
	s.reset()
	return true
}

func (s *softDrop) reset() {
	*s = softDrop{}
}
