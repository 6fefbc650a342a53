package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/algebra/internal/bigint"
	apperrors "github.com/agbru/algebra/internal/errors"
)

const tracerName = "github.com/agbru/algebra/internal/orchestration"

// ExecuteMultiplications orchestrates the concurrent execution of one or
// more multipliers on the same operands.
//
// Each multiplier runs in its own errgroup goroutine inside an OpenTelemetry
// span named "multiply". A failing multiplier does not cancel the others;
// its error is recorded in its CalculationResult. One ProgressUpdate is
// sent per finished multiplier.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - multipliers: The multipliers to execute.
//   - a, b: The operands.
//   - progressReporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []CalculationResult: One result per multiplier, in input order.
func ExecuteMultiplications(ctx context.Context, multipliers []Multiplier, a, b bigint.Int, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(multipliers))
	progressChan := make(chan ProgressUpdate, len(multipliers))
	tracer := otel.Tracer(tracerName)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(multipliers), out)

	for i, m := range multipliers {
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "multiply", trace.WithAttributes(
				attribute.String("algorithm", m.Name()),
				attribute.Int("a.bits", a.BitLen()),
				attribute.Int("b.bits", b.BitLen()),
			))
			startTime := time.Now()
			res, err := m.Multiply(spanCtx, a, b)
			elapsed := time.Since(startTime)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				err = apperrors.CalculationError{Algorithm: m.Name(), Cause: err}
			}
			span.End()

			results[i] = CalculationResult{Name: m.Name(), Result: res, Duration: elapsed, Err: err}
			progressChan <- ProgressUpdate{CalculatorIndex: i, Name: m.Name(), Duration: elapsed, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple algorithms and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful multiplications, and displays a comparative table.
//
// Parameters:
//   - results: The slice of calculation results to analyze.
//   - opts: Presentation options for the agreed product.
//   - presenter: The result presenter for display formatting.
//   - errHandler: The handler mapping the first failure to an exit code.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *CalculationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the multiplication.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && !res.Result.Equal(firstValidResult.Result) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %s and %s disagree on the product.\n",
				firstValidResult.Name, res.Name)
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}
