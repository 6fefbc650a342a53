package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// The string fields hold ANSI escape codes for inline coloring; Palette
// carries the same colors for lipgloss-rendered blocks such as tables.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
	// Palette is the lipgloss rendition of the theme.
	Palette Palette
}

// Palette holds lipgloss colors for a theme.
type Palette struct {
	Accent  lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Palette: Palette{
			Accent:  lipgloss.Color("39"),
			Border:  lipgloss.Color("240"),
			Text:    lipgloss.Color("252"),
			Dim:     lipgloss.Color("245"),
			Success: lipgloss.Color("82"),
			Warning: lipgloss.Color("220"),
			Error:   lipgloss.Color("196"),
		},
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Palette: Palette{
			Accent:  lipgloss.Color("27"),
			Border:  lipgloss.Color("250"),
			Text:    lipgloss.Color("235"),
			Dim:     lipgloss.Color("240"),
			Success: lipgloss.Color("28"),
			Warning: lipgloss.Color("130"),
			Error:   lipgloss.Color("124"),
		},
	}

	// OrangeTheme is an orange-dominant dark theme.
	OrangeTheme = Theme{
		Name:      "orange",
		Primary:   "\033[38;5;208m", // Orange
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;214m", // Light orange
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;69m",  // Blue
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Palette: Palette{
			Accent:  lipgloss.Color("#FF8C00"),
			Border:  lipgloss.Color("#FF6600"),
			Text:    lipgloss.Color("#E0E0E0"),
			Dim:     lipgloss.Color("#666666"),
			Success: lipgloss.Color("#9ece6a"),
			Warning: lipgloss.Color("#FFB347"),
			Error:   lipgloss.Color("#FF4444"),
		},
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{
		Name: "none",
		Palette: Palette{
			Accent:  lipgloss.NoColor{},
			Border:  lipgloss.NoColor{},
			Text:    lipgloss.NoColor{},
			Dim:     lipgloss.NoColor{},
			Success: lipgloss.NoColor{},
			Warning: lipgloss.NoColor{},
			Error:   lipgloss.NoColor{},
		},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used by tests to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// ThemeByName returns the theme with the given name. Unknown names map to
// the dark theme.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme
	case "orange":
		return OrangeTheme
	case "none":
		return NoColorTheme
	}
	return DarkTheme
}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "orange", "none".
func SetTheme(name string) {
	SetCurrentTheme(ThemeByName(name))
}

// InitTheme selects the theme at startup. A true noColor or a set
// NO_COLOR environment variable (https://no-color.org/) wins over name.
//
// Parameters:
//   - name: The requested theme name.
//   - noColor: If true, disables all color output regardless of name.
func InitTheme(name string, noColor bool) {
	if noColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(name)
}
