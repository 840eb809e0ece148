// Package gfx is the desktop window frontend, built on ebiten. Unlike the
// terminal, a window reports key releases, so soft drop ends exactly when
// the down key comes up.
package gfx

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tetris-bane/internal/core"
	"github.com/vovakirdan/tetris-bane/internal/game"
	"github.com/vovakirdan/tetris-bane/internal/platform/driver"
	"github.com/vovakirdan/tetris-bane/internal/session"
	"github.com/vovakirdan/tetris-bane/internal/sound"
)

const (
	defaultCell = 24
	margin      = 16
	hudWidth    = 180
	glyphHeight = 16 // Debug font line height
)

var (
	background = color.RGBA{0x10, 0x10, 0x18, 0xff}
	gridColor  = color.RGBA{0x22, 0x22, 0x2e, 0xff}
	frameColor = color.RGBA{0x80, 0x80, 0x80, 0xff}
	overColor  = color.RGBA{0xc0, 0x30, 0x30, 0xff}
)

// Options configures the window frontend.
type Options struct {
	Config core.RuntimeConfig
	Logger *log.Logger
	Prefs  driver.PreferenceSaver
	Player sound.Player
	Cell   int  // Pixels per board cell
	Start  bool // Skip the menu and play the selected mode
}

// keyInputs lists the keys polled every frame, in priority order.
var keyInputs = []struct {
	keys []ebiten.Key
	in   core.Input
}{
	{[]ebiten.Key{ebiten.KeyQ}, core.InputQuit},
	{[]ebiten.Key{ebiten.KeyEscape}, core.InputEscape},
	{[]ebiten.Key{ebiten.KeyP}, core.InputPause},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}, core.InputConfirm},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.InputUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.InputDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.InputLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.InputRight},
}

var downKeys = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}

// Game implements ebiten.Game around a driver.
type Game struct {
	driver *driver.Driver
	cell   int
	width  int
	height int
}

// NewGame creates the ebiten game for machine. The window is sized for
// the largest board among the machine's modes.
func NewGame(machine *session.Machine, opts Options) *Game {
	cell := opts.Cell
	if cell <= 0 {
		cell = defaultCell
	}
	cols, rows := 0, 0
	for _, m := range machine.Modes() {
		cols = max(cols, m.Width)
		rows = max(rows, m.Height-m.HiddenRows)
	}
	return &Game{
		driver: driver.New(machine, driver.Options{
			Logger: opts.Logger,
			Prefs:  opts.Prefs,
			Player: opts.Player,
		}),
		cell:   cell,
		width:  cols*cell + hudWidth + margin*3,
		height: max(rows*cell+margin*2, 12*glyphHeight),
	}
}

// Update reads the keyboard and steps the session once per frame.
func (g *Game) Update() error {
	now := time.Now()
	in := pollInput(g.driver.Machine().State())
	c := g.driver.Step(in, now)
	if c.To == session.StateQuit {
		return ebiten.Termination
	}
	return nil
}

// pollInput returns at most one input for this frame. A released down
// key wins while playing so a soft drop never outlives the key.
func pollInput(state session.State) core.Input {
	if state == session.StatePlaying {
		for _, k := range downKeys {
			if inpututil.IsKeyJustReleased(k) {
				return core.InputDownRelease
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		return core.InputQuit
	}
	for _, ki := range keyInputs {
		for _, k := range ki.keys {
			if inpututil.IsKeyJustPressed(k) {
				return ki.in
			}
		}
	}
	return core.InputNone
}

// Draw renders the menu or the board with its HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	m := g.driver.Machine()
	switch m.State() {
	case session.StateMenu:
		g.drawMenu(screen, m)
	case session.StatePlaying, session.StatePaused, session.StateGameOver:
		if e := m.Engine(); e != nil {
			g.drawBoard(screen, e)
			g.drawHUD(screen, m, e)
		}
	}
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func (g *Game) drawMenu(screen *ebiten.Image, m *session.Machine) {
	s := m.Settings()
	y := margin
	ebitenutil.DebugPrintAt(screen, "T E T R I S   B A N E", margin, y)
	y += glyphHeight * 2

	menu := m.MainMenu()
	for i, item := range menu.Items() {
		cursor := "  "
		if i == menu.Cursor() {
			cursor = "> "
		}
		line := cursor + item.String()
		switch item {
		case session.ItemMode:
			line += ": " + m.Mode().Name
		case session.ItemMusic:
			state := "Off"
			if s.MusicEnabled {
				state = "On"
			}
			line += ": " + state
		case session.ItemVolume:
			line += fmt.Sprintf(": %d", s.Volume)
		}
		ebitenutil.DebugPrintAt(screen, line, margin, y)
		y += glyphHeight
	}
}

func (g *Game) drawBoard(screen *ebiten.Image, e *game.Engine) {
	b := e.Board()
	rows := b.Visible()
	w := float32(b.Width() * g.cell)
	h := float32(len(rows) * g.cell)
	ox, oy := float32(margin), float32(margin)

	frame := color.Color(frameColor)
	if e.Over() {
		frame = overColor
	}
	vector.StrokeRect(screen, ox-2, oy-2, w+4, h+4, 2, frame, false)

	size := float32(g.cell)
	for y, row := range rows {
		for x, c := range row {
			px := ox + float32(x)*size
			py := oy + float32(y)*size
			if c == nil {
				vector.StrokeRect(screen, px, py, size, size, 1, gridColor, false)
				continue
			}
			vector.DrawFilledRect(screen, px+1, py+1, size-2, size-2, *c, false)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, m *session.Machine, e *game.Engine) {
	b := e.Board()
	x := margin*2 + b.Width()*g.cell
	y := margin

	lines := []string{
		e.Mode().Name,
		"",
		fmt.Sprintf("Score  %d", e.Score()),
		fmt.Sprintf("Lines  %d", e.Lines()),
		fmt.Sprintf("Pieces %d", e.Pieces()),
	}
	switch m.State() {
	case session.StatePaused:
		lines = append(lines, "", "PAUSED", "")
		menu := m.PauseMenu()
		for i, item := range menu.Items() {
			cursor := "  "
			if i == menu.Cursor() {
				cursor = "> "
			}
			lines = append(lines, cursor+item.String())
		}
	case session.StateGameOver:
		lines = append(lines, "", "GAME OVER")
	}
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += glyphHeight
	}
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(machine *session.Machine, opts Options) error {
	g := NewGame(machine, opts)
	logger := g.driver.Logger()

	tps := opts.Config.TickRate
	if tps <= 0 {
		tps = core.DefaultConfig().TickRate
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowTitle("Tetris Bane")
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if opts.Start {
		g.driver.Start(time.Now())
	}

	logger.Info("window frontend started", "mode", machine.Mode().ID, "tps", tps)
	err := ebiten.RunGame(g)
	logger.Info("window frontend stopped")
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
