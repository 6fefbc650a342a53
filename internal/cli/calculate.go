package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/algebra/internal/bigint"
	"github.com/agbru/algebra/internal/config"
	"github.com/agbru/algebra/internal/orchestration"
	"github.com/agbru/algebra/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the operand sizes, timeout, environment details, and dispatch
// thresholds.
//
// Parameters:
//   - cfg: The application configuration.
//   - a, b: The parsed operands.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, a, b bigint.Int, out io.Writer) {
	th := bigint.CurrentThresholds()
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Multiplying %s%d%s-bit by %s%d%s-bit integers with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), a.BitLen(), ui.ColorReset(),
		ui.ColorMagenta(), b.BitLen(), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Dispatch thresholds: Karatsuba=%s%d%s words, FFT=%s%d%s words.\n",
		ui.ColorCyan(), th.Karatsuba, ui.ColorReset(), ui.ColorCyan(), th.FFT, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single algorithm vs comparison).
//
// Parameters:
//   - multipliers: The multipliers that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(multipliers []orchestration.Multiplier, out io.Writer) {
	var modeDesc string
	switch len(multipliers) {
	case 0:
		modeDesc = "No algorithm selected"
	case 1:
		modeDesc = fmt.Sprintf("Single multiplication with the %s%s%s algorithm",
			ui.ColorGreen(), multipliers[0].Name(), ui.ColorReset())
	default:
		modeDesc = "Parallel comparison of all algorithms"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
