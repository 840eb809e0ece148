package driver

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris-bane/internal/core"
	"github.com/vovakirdan/tetris-bane/internal/game"
	"github.com/vovakirdan/tetris-bane/internal/piece"
	"github.com/vovakirdan/tetris-bane/internal/session"
	"github.com/vovakirdan/tetris-bane/internal/sound"
	"github.com/vovakirdan/tetris-bane/internal/storage"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

type prefsRecorder struct {
	saved []storage.Preferences
	err   error
}

func (r *prefsRecorder) SavePreferences(p storage.Preferences) error {
	r.saved = append(r.saved, p)
	return r.err
}

type cueRecorder struct{ got []sound.Cue }

func (r *cueRecorder) Apply(c sound.Cue) { r.got = append(r.got, c) }

func newDriver(t *testing.T, opts Options) *Driver {
	t.Helper()
	m, err := session.New(session.Config{
		Modes: []game.Mode{
			{ID: "chill", Name: "Chill", Labels: []piece.Label{piece.O}, Width: 10, Height: 21, HiddenRows: 1, SpawnColumn: 3},
			{ID: "bane", Name: "Bane", Labels: []piece.Label{piece.BaneX}, Width: 14, Height: 25, HiddenRows: 1, SpawnColumn: 5, MusicPath: "ghost.ogg"},
		},
		Engine:     game.Options{Source: zeroSource{}},
		Settings:   session.Settings{MusicEnabled: true, Volume: 64},
		VolumeStep: 8,
	})
	require.NoError(t, err)
	return New(m, opts)
}

func TestDriverDefaults(t *testing.T) {
	d := newDriver(t, Options{})
	require.NotNil(t, d.Logger())

	c := d.Step(core.InputConfirm, t0)
	assert.Equal(t, session.StatePlaying, c.To)
	assert.Equal(t, session.StatePlaying, d.Machine().State())
}

func TestDriverSavesPreferences(t *testing.T) {
	prefs := &prefsRecorder{}
	d := newDriver(t, Options{Prefs: prefs})

	d.Step(core.InputDown, t0) // cursor to Mode
	assert.Empty(t, prefs.saved, "cursor moves are not settings")

	d.Step(core.InputRight, t0)
	require.Len(t, prefs.saved, 1)
	assert.Equal(t, storage.Preferences{ModeID: "bane", MusicEnabled: true, Volume: 64}, prefs.saved[0])

	d.Step(core.InputDown, t0) // Music
	d.Step(core.InputConfirm, t0)
	require.Len(t, prefs.saved, 2)
	assert.False(t, prefs.saved[1].MusicEnabled)
}

func TestDriverLogsSaveFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	prefs := &prefsRecorder{err: errors.New("read-only database")}
	d := newDriver(t, Options{Prefs: prefs, Logger: logger})

	d.Step(core.InputDown, t0)
	d.Step(core.InputRight, t0)
	assert.Contains(t, buf.String(), "failed to save preferences")
	assert.Contains(t, buf.String(), "read-only database")
}

func TestDriverLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	d := newDriver(t, Options{Logger: log.New(&buf)})

	d.Step(core.InputConfirm, t0)
	assert.Contains(t, buf.String(), "state")
	assert.Contains(t, buf.String(), "playing")
}

func TestDriverMusic(t *testing.T) {
	cues := &cueRecorder{}
	d := newDriver(t, Options{Player: cues})
	require.True(t, d.Machine().SelectMode("bane"))

	d.Start(t0)
	require.Len(t, cues.got, 1)
	assert.Equal(t, sound.Cue{Kind: sound.CuePlay, Path: "ghost.ogg", Volume: 64}, cues.got[0])

	d.Step(core.InputPause, t0)
	d.Step(core.InputPause, t0)
	require.Len(t, cues.got, 3)
	assert.Equal(t, sound.CuePause, cues.got[1].Kind)
	assert.Equal(t, sound.CueResume, cues.got[2].Kind)

	d.Step(core.InputQuit, t0)
	require.Len(t, cues.got, 4)
	assert.Equal(t, sound.CueStop, cues.got[3].Kind)
}
