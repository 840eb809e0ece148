package tui

import "github.com/charmbracelet/lipgloss"

// Theme contains lipgloss styles for the terminal frontend.
type Theme struct {
	// HUD styles
	HUDTitle lipgloss.Style
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style

	// Overlay styles
	OverlayTitle lipgloss.Style
	OverlayText  lipgloss.Style

	// Menu styles
	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuValue      lipgloss.Style
	MenuHint       lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		MenuTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuValue:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")), // Hot pink
		MenuHint:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals with poor color support.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.HUDTitle = lipgloss.NewStyle().Bold(true)
	theme.OverlayTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Reverse(true)
	theme.MenuValue = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	return theme
}

// ThemeByName returns a theme by name, falling back to the default.
func ThemeByName(name string) Theme {
	if name == "mono" || name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}
