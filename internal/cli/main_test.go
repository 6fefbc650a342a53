package cli

import (
	"os"
	"testing"

	"github.com/agbru/algebra/internal/ui"
)

// TestMain runs the package tests without ANSI colors so output can be
// matched literally.
func TestMain(m *testing.M) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	os.Exit(m.Run())
}
