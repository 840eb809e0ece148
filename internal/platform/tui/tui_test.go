package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris-bane/internal/core"
	"github.com/vovakirdan/tetris-bane/internal/game"
	"github.com/vovakirdan/tetris-bane/internal/piece"
	"github.com/vovakirdan/tetris-bane/internal/platform/driver"
	"github.com/vovakirdan/tetris-bane/internal/session"
	"github.com/vovakirdan/tetris-bane/internal/sound"
	"github.com/vovakirdan/tetris-bane/internal/storage"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

type fakePrefs struct {
	saved []storage.Preferences
	err   error
}

func (f *fakePrefs) SavePreferences(p storage.Preferences) error {
	f.saved = append(f.saved, p)
	return f.err
}

type cues struct{ got []sound.Cue }

func (c *cues) Apply(cue sound.Cue) { c.got = append(c.got, cue) }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, prefs driver.PreferenceSaver) (Model, *cues) {
	t.Helper()
	m, err := session.New(session.Config{
		Modes: []game.Mode{
			{ID: "classic", Name: "Classic", Labels: []piece.Label{piece.I}, Width: 10, Height: 21, HiddenRows: 1, SpawnColumn: 3},
			{ID: "bane", Name: "Bane", Labels: []piece.Label{piece.BaneX}, Width: 14, Height: 25, HiddenRows: 1, SpawnColumn: 5, MusicPath: "ghost.ogg"},
		},
		Engine:     game.Options{Source: zeroSource{}},
		Settings:   session.Settings{MusicEnabled: true, Volume: 64},
		VolumeStep: 8,
	})
	require.NoError(t, err)
	c := &cues{}
	model := NewModel(m, Options{
		Config: core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60},
		Prefs:  prefs,
		Player: c,
	})
	return model, c
}

func TestKeyMapInput(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Input
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.InputLeft},
		{runes("a"), core.InputLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.InputRight},
		{runes("d"), core.InputRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.InputUp},
		{runes("w"), core.InputUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.InputDown},
		{runes("s"), core.InputDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.InputConfirm},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.InputConfirm},
		{runes("p"), core.InputPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.InputEscape},
		{runes("q"), core.InputQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.InputQuit},
		{runes("x"), core.InputNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, km.Input(tt.msg), "key %q", tt.msg.String())
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	assert.NotEmpty(t, km.ShortHelp())
	var n int
	for _, group := range km.FullHelp() {
		n += len(group)
	}
	assert.Equal(t, 9, n)
}

func TestSoftDropRelease(t *testing.T) {
	var s softDrop
	assert.False(t, s.expired(t0), "nothing held")

	s.press(t0)
	assert.False(t, s.expired(t0.Add(softDropFirstGrace-time.Millisecond)))

	// A repeat switches to the repeat grace.
	repeat := t0.Add(30 * time.Millisecond)
	s.press(repeat)
	assert.False(t, s.expired(repeat.Add(softDropRepeatGrace-time.Millisecond)))
	assert.True(t, s.expired(repeat.Add(softDropRepeatGrace)))
	assert.False(t, s.held)
	assert.False(t, s.expired(repeat.Add(time.Hour)), "released only once")
}

func TestSoftDropSingleTap(t *testing.T) {
	var s softDrop
	s.press(t0)
	assert.True(t, s.expired(t0.Add(softDropFirstGrace)))
}

func TestModelStartsGameFromMenu(t *testing.T) {
	model, c := newTestModel(t, nil)

	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	m := next.(Model)
	assert.Equal(t, session.StatePlaying, m.Machine().State())
	assert.Empty(t, c.got, "classic has no music")

	next, cmd = m.Update(TickMsg(time.Now()))
	assert.NotNil(t, cmd, "tick loop continues")
	assert.Equal(t, session.StatePlaying, next.(Model).Machine().State())
}

func TestModelSoftDropAutoRelease(t *testing.T) {
	model, _ := newTestModel(t, nil)
	next, _ := model.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, t0)
	next, _ = next.(Model).handleKey(tea.KeyMsg{Type: tea.KeyDown}, t0)
	m := next.(Model)

	e := m.Machine().Engine()
	require.NotNil(t, e)
	assert.Equal(t, game.DefaultTiming().FastFall, e.Interval())

	next, _ = m.handleTick(t0.Add(softDropFirstGrace))
	assert.Equal(t, game.DefaultTiming().Fall, next.(Model).Machine().Engine().Interval())
}

func TestSoftDropTapMovesOneRow(t *testing.T) {
	model, _ := newTestModel(t, nil)
	next, _ := model.handleKey(tea.KeyMsg{Type: tea.KeyEnter}, t0)
	next, _ = next.(Model).handleKey(tea.KeyMsg{Type: tea.KeyDown}, t0)

	frame := 16 * time.Millisecond
	for now := t0.Add(frame); now.Before(t0.Add(400 * time.Millisecond)); now = now.Add(frame) {
		next, _ = next.(Model).handleTick(now)
	}

	e := next.(Model).Machine().Engine()
	require.NotNil(t, e)
	assert.Equal(t, 1, e.Current().Cells[0].Y)
	assert.Equal(t, game.DefaultTiming().Fall, e.Interval())
}

func TestModelQuit(t *testing.T) {
	model, _ := newTestModel(t, nil)
	next, cmd := model.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View())
}

func TestModelSavesPreferences(t *testing.T) {
	prefs := &fakePrefs{err: errors.New("disk full")}
	model, _ := newTestModel(t, prefs)

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyRight})

	require.Len(t, prefs.saved, 1)
	assert.Equal(t, "bane", prefs.saved[0].ModeID)
	assert.True(t, prefs.saved[0].MusicEnabled)
	assert.Equal(t, 64, prefs.saved[0].Volume)
	assert.Equal(t, session.StateMenu, next.(Model).Machine().State(), "save errors are not fatal")
}

func TestModelMusicCues(t *testing.T) {
	model, c := newTestModel(t, nil)
	require.True(t, model.Machine().SelectMode("bane"))

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, c.got, 1)
	assert.Equal(t, sound.CuePlay, c.got[0].Kind)
	assert.Equal(t, "ghost.ogg", c.got[0].Path)

	next.(Model).Update(runes("p"))
	require.Len(t, c.got, 2)
	assert.Equal(t, sound.CuePause, c.got[1].Kind)
}

func TestHelpToggle(t *testing.T) {
	model, _ := newTestModel(t, nil)
	next, _ := model.Update(runes("?"))
	assert.True(t, next.(Model).help.ShowAll)
	assert.Equal(t, session.StateMenu, next.(Model).Machine().State())
}

func TestMenuView(t *testing.T) {
	model, _ := newTestModel(t, nil)
	view := model.View()

	for _, want := range []string{"T E T R I S", "Play", "Mode", "Classic", "Music", "On", "Volume", "64", "Quit"} {
		assert.Contains(t, view, want)
	}
}

func TestPlayView(t *testing.T) {
	model, _ := newTestModel(t, nil)
	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := next.(Model)

	view := m.View()
	assert.Contains(t, view, "Classic")
	assert.Contains(t, view, "Score")
	assert.Contains(t, view, "Pieces")

	next, _ = m.Update(runes("p"))
	view = next.(Model).View()
	assert.Contains(t, view, "PAUSED")
	assert.Contains(t, view, "End Game")
}

func TestPlayViewTooSmall(t *testing.T) {
	model, _ := newTestModel(t, nil)
	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, _ = next.(Model).Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Contains(t, next.(Model).View(), "too small")
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")
	assert.Equal(t, "ab  \n cd ", RenderScreen(s))
}

func TestDrawBoard(t *testing.T) {
	model, _ := newTestModel(t, nil)
	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	e := next.(Model).Machine().Engine()

	w, h := boardSize(e.Board())
	assert.Equal(t, 22, w)
	assert.Equal(t, 22, h)

	s := core.NewScreen(w, h)
	drawBoard(s, e.Board(), 0, 0, core.ColorGray)
	assert.True(t, strings.HasPrefix(s.Row(0), "┌"))
	assert.True(t, strings.HasPrefix(s.Row(h-1), "└"))
	assert.True(t, strings.HasSuffix(s.Row(1), " ·│"))
	// The I piece spawns in the hidden row, so the visible board is empty.
	assert.NotContains(t, s.String(), filledCell)
}

func TestVolumeGauge(t *testing.T) {
	assert.Equal(t, "████░░░░ 64", volumeGauge(64))
	assert.Equal(t, "░░░░░░░░ 0", volumeGauge(0))
	assert.Equal(t, "████████ 128", volumeGauge(128))
}

func TestInitStartsGame(t *testing.T) {
	m, err := session.New(session.Config{
		Modes:  []game.Mode{{ID: "classic", Labels: []piece.Label{piece.O}, Width: 10, Height: 21, HiddenRows: 1, SpawnColumn: 3}},
		Engine: game.Options{Source: zeroSource{}},
	})
	require.NoError(t, err)

	model := NewModel(m, Options{Start: true})
	assert.NotNil(t, model.Init())
	assert.Equal(t, session.StatePlaying, m.State())
}
