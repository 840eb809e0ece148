package session

import "github.com/vovakirdan/tetris-bane/internal/core"

// Item is an entry in one of the menus.
type Item int

const (
	ItemPlay Item = iota
	ItemMode
	ItemMusic
	ItemVolume
	ItemQuit
	ItemResume
	ItemEndGame
)

var itemLabels = map[Item]string{
	ItemPlay:    "Play",
	ItemMode:    "Mode",
	ItemMusic:   "Music",
	ItemVolume:  "Volume",
	ItemQuit:    "Quit",
	ItemResume:  "Resume",
	ItemEndGame: "End Game",
}

// String returns the item's display label.
func (i Item) String() string {
	return itemLabels[i]
}

// Menu is a vertical list with a wrapping cursor.
type Menu struct {
	items  []Item
	cursor int
}

// NewMenu creates a menu with the cursor on the first item.
func NewMenu(items ...Item) Menu {
	return Menu{items: items}
}

// MainMenu returns the top-level menu.
func MainMenu() Menu {
	return NewMenu(ItemPlay, ItemMode, ItemMusic, ItemVolume, ItemQuit)
}

// PauseMenu returns the menu shown while paused.
func PauseMenu() Menu {
	return NewMenu(ItemResume, ItemEndGame, ItemQuit)
}

// Items returns the menu entries in display order.
func (m Menu) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// Cursor returns the index of the highlighted item.
func (m Menu) Cursor() int { return m.cursor }

// Selected returns the highlighted item.
func (m Menu) Selected() Item { return m.items[m.cursor] }

// Move shifts the cursor by delta, wrapping at both ends.
func (m *Menu) Move(delta int) {
	m.cursor = core.Wrap(m.cursor+delta, len(m.items))
}

// Reset puts the cursor back on the first item.
func (m *Menu) Reset() { m.cursor = 0 }
