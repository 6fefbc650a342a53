package orchestration

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/agbru/algebra/internal/bigint"
)

// Multiplier is one way of computing a product of two integers.
type Multiplier interface {
	// Name identifies the algorithm in reports.
	Name() string
	// Multiply returns a*b. Implementations must return ctx.Err() when the
	// context ends before the product is known.
	Multiply(ctx context.Context, a, b bigint.Int) (bigint.Int, error)
}

// CalculationResult encapsulates the outcome of a single multiplication.
// It serves as the shared domain type between orchestration and presentation layers.
type CalculationResult struct {
	// Name is the identifier of the algorithm used (e.g., "karatsuba").
	Name string
	// Result is the computed product. It is the zero Int if an error occurred.
	Result bigint.Int
	// Duration is the time taken to complete the multiplication.
	Duration time.Duration
	// Err contains any error that occurred during the multiplication.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	// Bits is the combined bit length of the operands, shown in the summary.
	Bits      int
	Verbose   bool
	Details   bool
	HexOutput bool
}

// ProgressReporter defines the interface for displaying comparison progress.
// This interface decouples the orchestration layer from the presentation layer.
//
// Implementations handle the visual representation of progress (spinners,
// counters) while the orchestration layer focuses on coordinating the
// multiplications.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving one update per finished algorithm.
	//   - numCalculators: The number of concurrent algorithms being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting comparison results.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats (CLI table, JSON) without modifying
// the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentResult displays the agreed product.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles calculation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
