// Package session holds the top-level state machine: the main menu, play,
// the pause menu, the game-over pause and quitting.
package session

// State is the active top-level screen.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateQuit
)

var stateNames = [...]string{
	StateMenu:     "menu",
	StatePlaying:  "playing",
	StatePaused:   "paused",
	StateGameOver: "game_over",
	StateQuit:     "quit",
}

// String returns the state's name for logs.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}
