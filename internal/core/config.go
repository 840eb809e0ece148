package core

import "time"

// RuntimeConfig contains the settings a frontend passes to the session
// when it starts.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal) or pixels (window)
	ScreenH  int // Screen height
	TickRate int // Frontend update ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickInterval returns the wall-clock duration of one frontend tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}
