// Package tui renders the mul comparison as a full-screen bubbletea
// dashboard: one row per multiplication strategy, a CPU sparkline fed by
// sysmon and the agreed product once every strategy has finished.
package tui
