package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/algebra/internal/ui"
)

// Style variables for the dashboard, rebuilt from the ui theme by
// initStyles.
var (
	panelStyle   lipgloss.Style
	titleStyle   lipgloss.Style
	dimStyle     lipgloss.Style
	valueStyle   lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	runningStyle lipgloss.Style
	keyStyle     lipgloss.Style
)

func init() {
	initStyles()
}

// initStyles rebuilds all styles from the current ui theme. Run calls it
// again after the application selected its theme.
func initStyles() {
	p := ui.GetCurrentTheme().Palette

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	dimStyle = lipgloss.NewStyle().Foreground(p.Dim)
	valueStyle = lipgloss.NewStyle().Foreground(p.Text)
	successStyle = lipgloss.NewStyle().Foreground(p.Success)
	errorStyle = lipgloss.NewStyle().Foreground(p.Error)
	runningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	keyStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
}
