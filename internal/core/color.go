package core

import "fmt"

// Color is an opaque RGB triple carried by pieces and occupied board cells.
// The simulation never inspects it; frontends pass it to their renderer.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements image/color.Color so GUI frontends can use a Color directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color as a "#rrggbb" string for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette used by the piece catalog and the frontends.
var (
	ColorBlue    = RGB(50, 50, 255)
	ColorGreen   = RGB(50, 255, 50)
	ColorCyan    = RGB(50, 255, 255)
	ColorYellow  = RGB(255, 255, 50)
	ColorMagenta = RGB(255, 50, 255)
	ColorRed     = RGB(255, 50, 50)
	ColorWhite   = RGB(255, 255, 255)
	ColorOrange  = RGB(255, 150, 50)
	ColorGray    = RGB(128, 128, 128)
)
