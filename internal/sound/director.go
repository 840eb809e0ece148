// Package sound turns session activity into music cues. It decides what
// should play; a Player carries the cues out.
package sound

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tetris-bane/internal/game"
	"github.com/vovakirdan/tetris-bane/internal/session"
)

// CueKind is a music instruction.
type CueKind int

const (
	CuePlay CueKind = iota
	CuePause
	CueResume
	CueStop
	CueFadeOut
	CueVolume
)

var cueNames = [...]string{
	CuePlay:    "play",
	CuePause:   "pause",
	CueResume:  "resume",
	CueStop:    "stop",
	CueFadeOut: "fade_out",
	CueVolume:  "volume",
}

// String returns the cue name for logs.
func (k CueKind) String() string {
	if k >= 0 && int(k) < len(cueNames) {
		return cueNames[k]
	}
	return fmt.Sprintf("CueKind(%d)", int(k))
}

// Cue is one instruction for a Player.
type Cue struct {
	Kind   CueKind
	Path   string        // Track, for CuePlay
	Volume int           // For CuePlay and CueVolume
	Fade   time.Duration // For CueFadeOut
}

// Player carries out cues.
type Player interface {
	Apply(Cue)
}

// DefaultFade is how long the track fades out after a lost game.
const DefaultFade = 1500 * time.Millisecond

// Director tracks what is playing and emits the cues needed to follow
// the session.
type Director struct {
	player  Player
	fade    time.Duration
	track   string // Loaded track, empty when silent
	paused  bool
	enabled bool
	volume  int
}

// NewDirector creates a director for the initial settings.
func NewDirector(player Player, settings session.Settings, fade time.Duration) *Director {
	if fade <= 0 {
		fade = DefaultFade
	}
	return &Director{
		player:  player,
		fade:    fade,
		enabled: settings.MusicEnabled,
		volume:  settings.Volume,
	}
}

// Track returns the loaded track, or "" when nothing is loaded.
func (d *Director) Track() string { return d.track }

// Observe reacts to one machine step. mode is the selected mode and
// settings the current menu choices. The emitted cues are applied to the
// player and returned.
func (d *Director) Observe(c session.Change, mode game.Mode, settings session.Settings) []Cue {
	var cues []Cue

	if settings.Volume != d.volume {
		d.volume = settings.Volume
		cues = append(cues, Cue{Kind: CueVolume, Volume: d.volume})
	}
	if settings.MusicEnabled != d.enabled {
		d.enabled = settings.MusicEnabled
		if !d.enabled && d.track != "" {
			cues = append(cues, d.stop())
		}
	}

	if c.Transitioned() {
		cues = append(cues, d.transition(c.From, c.To, mode)...)
	}

	for _, cue := range cues {
		d.player.Apply(cue)
	}
	return cues
}

func (d *Director) transition(from, to session.State, mode game.Mode) []Cue {
	switch to {
	case session.StatePlaying:
		if from == session.StatePaused {
			if d.track != "" && d.paused {
				d.paused = false
				return []Cue{{Kind: CueResume}}
			}
			return nil
		}
		var cues []Cue
		if d.track != "" {
			cues = append(cues, d.stop())
		}
		if d.enabled && mode.HasMusic() {
			d.track = mode.MusicPath
			d.paused = false
			cues = append(cues, Cue{Kind: CuePlay, Path: d.track, Volume: d.volume})
		}
		return cues

	case session.StatePaused:
		if d.track != "" && !d.paused {
			d.paused = true
			return []Cue{{Kind: CuePause}}
		}

	case session.StateGameOver:
		if d.track != "" {
			d.track = ""
			d.paused = false
			return []Cue{{Kind: CueFadeOut, Fade: d.fade}}
		}

	case session.StateMenu, session.StateQuit:
		if d.track != "" {
			return []Cue{d.stop()}
		}
	}
	return nil
}

func (d *Director) stop() Cue {
	d.track = ""
	d.paused = false
	return Cue{Kind: CueStop}
}
