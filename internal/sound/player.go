package sound

import "github.com/charmbracelet/log"

// LogPlayer records cues in the log instead of producing sound.
type LogPlayer struct {
	Logger *log.Logger
}

// Apply implements Player.
func (p LogPlayer) Apply(c Cue) {
	if p.Logger == nil {
		return
	}
	switch c.Kind {
	case CuePlay:
		p.Logger.Info("music", "cue", c.Kind, "track", c.Path, "volume", c.Volume)
	case CueVolume:
		p.Logger.Debug("music", "cue", c.Kind, "volume", c.Volume)
	case CueFadeOut:
		p.Logger.Info("music", "cue", c.Kind, "fade", c.Fade)
	default:
		p.Logger.Info("music", "cue", c.Kind)
	}
}
