package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/format"
	"github.com/agbru/algebra/internal/metrics"
	"github.com/agbru/algebra/internal/orchestration"
	"github.com/agbru/algebra/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It shows a spinner with a completion bar while algorithms run.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner for ongoing multiplications.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// DisplayProgress consumes progressChan until it is closed, updating a
// spinner with the number of finished algorithms. It calls wg.Done on
// return.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numCalculators)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(0, numCalculators))
	s.Start()
	defer s.Stop()

	for update := range progressChan {
		ap := agg.Update(update)
		s.UpdateSuffix(progressSuffix(ap.Completed, numCalculators))
	}
}

// CLIResultPresenter implements orchestration.ResultPresenter and
// orchestration.ErrorHandler for CLI output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table with
// algorithm names, durations and status, rendered with lipgloss.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintln(out, "\n"+ComparisonTable(results))
}

// ComparisonTable renders results as a bordered table. The last column
// gives each successful run's time relative to the fastest one.
func ComparisonTable(results []orchestration.CalculationResult) string {
	styles := ui.CurrentStyles()
	var fastest time.Duration
	for _, res := range results {
		if res.Err == nil && res.Duration > 0 && (fastest == 0 || res.Duration < fastest) {
			fastest = res.Duration
		}
	}
	rows := make([][]string, len(results))
	for i, res := range results {
		duration := FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		status := "Success"
		if res.Err != nil {
			status = fmt.Sprintf("Failure (%v)", res.Err)
		}
		relative := "-"
		if res.Err == nil {
			relative = format.FormatRelative(res.Duration, fastest)
		}
		rows[i] = []string{res.Name, duration, status, relative}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers("Algorithm", "Duration", "Status", "Relative").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Header
			case row < 0 || row >= len(results):
				return styles.Cell
			case col == 2 && results[row].Err != nil:
				return styles.Failure
			case col == 2:
				return styles.Success
			case col == 1:
				return styles.Dim
			}
			return styles.Cell
		})
	return styles.Title.Render("Comparison Summary") + "\n" + t.Render()
}

// PresentResult displays the agreed product.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result.Result, result.Name, result.Duration, opts, out)
}

// HandleError prints err and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	var timeout apperrors.TimeoutError
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &timeout):
		fmt.Fprintf(out, "%sTimeout: the operation did not finish in time", ui.ColorYellow())
		if duration > 0 {
			fmt.Fprintf(out, " (%s)", FormatExecutionDuration(duration))
		}
		fmt.Fprintf(out, ".%s\n", ui.ColorReset())
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCanceled.%s\n", ui.ColorYellow(), ui.ColorReset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return apperrors.ExitCodeFor(err)
}

// DisplayMemoryStats shows the memory activity of an operation.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(snap.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
}
