package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// QuotientTheme contains the configurable styles for the menus and
// pickers that frame the game screen.
type QuotientTheme struct {
	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Footer controls hint
	HUDControls lipgloss.Style

	// Star ratings in the level picker
	StarEarned lipgloss.Style
	StarEmpty  lipgloss.Style
}

// ClassicQuotientTheme returns the default visual theme.
func ClassicQuotientTheme() QuotientTheme {
	return QuotientTheme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		StarEarned: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		StarEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// NeonQuotientTheme returns a brighter variant.
func NeonQuotientTheme() QuotientTheme {
	theme := ClassicQuotientTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)
	theme.StarEarned = lipgloss.NewStyle().Foreground(lipgloss.Color("227"))
	return theme
}

// MonoQuotientTheme returns a grayscale variant.
func MonoQuotientTheme() QuotientTheme {
	theme := ClassicQuotientTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemNormal = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.StarEarned = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	return theme
}

// ThemeByName resolves a config theme name. Unknown names fall back
// to the classic theme.
func ThemeByName(name string) QuotientTheme {
	switch name {
	case "neon":
		return NeonQuotientTheme()
	case "mono":
		return MonoQuotientTheme()
	default:
		return ClassicQuotientTheme()
	}
}

// Global theme variable (can be changed at runtime)
var quotientTheme = ClassicQuotientTheme()

// SetQuotientTheme sets the global theme.
func SetQuotientTheme(theme QuotientTheme) {
	quotientTheme = theme
}

// GetQuotientTheme returns the current global theme.
func GetQuotientTheme() QuotientTheme {
	return quotientTheme
}
