// Package ui provides theme and color support for the application's user
// interface: ANSI escape codes for inline coloring and lipgloss styles for
// tables, shared by the CLI, the REPL and the calibration report.
package ui
