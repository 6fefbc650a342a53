package ui

import "github.com/charmbracelet/lipgloss"

// Color functions return ANSI escape codes from the current theme.

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed returns the error color from the current theme.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color from the current theme.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color from the current theme.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary color from the current theme.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the info color from the current theme.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan returns the secondary color from the current theme.
func ColorCyan() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code from the current theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code from the current theme.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ─── lipgloss styles ───────────────────────────────────────────────────────

// Styles groups the lipgloss styles used for tables and panels.
type Styles struct {
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Dim     lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Border  lipgloss.Style
	Title   lipgloss.Style
}

// CurrentStyles derives the lipgloss styles from the active theme.
func CurrentStyles() Styles {
	p := GetCurrentTheme().Palette
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Padding(0, 1),
		Cell:    lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1),
		Dim:     lipgloss.NewStyle().Foreground(p.Dim).Padding(0, 1),
		Success: lipgloss.NewStyle().Foreground(p.Success).Padding(0, 1),
		Failure: lipgloss.NewStyle().Foreground(p.Error).Padding(0, 1),
		Border:  lipgloss.NewStyle().Foreground(p.Border),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
	}
}
