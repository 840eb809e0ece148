package core

// Input is a discrete, already-debounced input event. Frontends translate
// raw key state into at most one Input per tick; the meaning of an Input
// depends on the session state (Up rotates while playing and moves the
// menu cursor elsewhere).
type Input int

const (
	InputNone        Input = iota
	InputLeft              // Left, A - move piece left / previous menu value
	InputRight             // Right, D - move piece right / next menu value
	InputUp                // Up, W - rotate piece / menu cursor up
	InputDown              // Down, S pressed - soft drop start / menu cursor down
	InputDownRelease       // Down, S released - soft drop stop
	InputConfirm           // Enter, Space - confirm menu item
	InputPause             // P - pause/resume
	InputEscape            // Esc - pause/resume while playing, quit from the main menu
	InputQuit              // Ctrl+C - leave immediately
)

// String returns a human-readable name for the input.
func (in Input) String() string {
	switch in {
	case InputNone:
		return "None"
	case InputLeft:
		return "Left"
	case InputRight:
		return "Right"
	case InputUp:
		return "Up"
	case InputDown:
		return "Down"
	case InputDownRelease:
		return "DownRelease"
	case InputConfirm:
		return "Confirm"
	case InputPause:
		return "Pause"
	case InputEscape:
		return "Escape"
	case InputQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
