package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/algebra/internal/bigint"
	"github.com/agbru/algebra/internal/format"
	"github.com/agbru/algebra/internal/ui"
)

// printSamples formats one sweep as a table, marking the chosen length.
func printSamples(out io.Writer, title string, samples []Sample, chosen int) {
	fmt.Fprintf(out, "\n--- %s ---\n", title)
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sWords%s\t│ %sBelow%s\t│ %sAbove%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s\t┼%s\t┼%s\n", strings.Repeat("─", 8), strings.Repeat("─", 12), strings.Repeat("─", 12))
	for _, s := range samples {
		highlight := ""
		if s.Words == chosen {
			highlight = fmt.Sprintf(" %s(Crossover)%s", ui.ColorGreen(), ui.ColorReset())
		}
		above := format.FormatExecutionDuration(s.Upper)
		if s.UpperWins {
			above = ui.ColorYellow() + above + ui.ColorReset()
		}
		fmt.Fprintf(tw, "  %s%d%s\t│ %s\t│ %s%s\n", ui.ColorCyan(), s.Words, ui.ColorReset(),
			format.FormatExecutionDuration(s.Lower), above, highlight)
	}
	tw.Flush()
	if chosen == 0 {
		fmt.Fprintf(out, "No crossover among the sampled lengths; the hardware estimate is used.\n")
	}
}

// printCalibrationOutput prints the thresholds now in effect.
func printCalibrationOutput(t bigint.Thresholds, out io.Writer) {
	fmt.Fprintf(out, "%sAuto-calibration%s: Karatsuba=%s%d%s words, FFT=%s%d%s words\n",
		ui.ColorGreen(), ui.ColorReset(),
		ui.ColorYellow(), t.Karatsuba, ui.ColorReset(),
		ui.ColorYellow(), t.FFT, ui.ColorReset())
}
