package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/algebra/internal/bigint"
	"github.com/agbru/algebra/internal/cli"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/metrics"
	"github.com/agbru/algebra/internal/orchestration"
	"github.com/agbru/algebra/internal/server"
	"github.com/agbru/algebra/internal/service"
	"github.com/agbru/algebra/internal/tui"
	"github.com/agbru/algebra/internal/ui"
)

// mulJSON is the -json rendition of a mul command.
type mulJSON struct {
	Product   string `json:"product"`
	Bits      int    `json:"bits"`
	Algorithm string `json:"algorithm"`
	Duration  int64  `json:"duration_ns"`
}

// runMul multiplies the -a and -b operands with every selected algorithm
// and cross-checks the products.
func (a *Application) runMul(ctx context.Context, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}
	x, err := bigint.Parse(a.Config.A)
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}
	y, err := bigint.Parse(a.Config.B)
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}
	multipliers, err := orchestration.MultipliersFor(a.Config.Algo)
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}

	if a.Config.TUI {
		return tui.Run(ctx, multipliers, x, y, a.Config.HexOutput)
	}

	ctx, cancel := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancel()

	quiet := a.Config.Quiet || a.Config.JSONOutput
	if !quiet {
		cli.PrintExecutionConfig(a.Config, x, y, out)
		cli.PrintExecutionMode(multipliers, out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	memory := metrics.NewMemoryCollector()
	before := memory.Snapshot()
	results := orchestration.ExecuteMultiplications(ctx, multipliers, x, y, reporter, progressOut)
	used := memory.Snapshot().Since(before)

	switch best := fastestSuccess(results); {
	case a.Config.JSONOutput:
		if best == nil {
			return presenter.HandleError(firstFailure(results), 0, a.ErrWriter)
		}
		if err := cli.DisplayJSON(out, mulJSON{
			Product:   best.Result.String(),
			Bits:      best.Result.BitLen(),
			Algorithm: best.Name,
			Duration:  best.Duration.Nanoseconds(),
		}); err != nil {
			return presenter.HandleError(err, 0, a.ErrWriter)
		}
		return apperrors.ExitSuccess
	case a.Config.Quiet:
		if best == nil {
			return presenter.HandleError(firstFailure(results), 0, a.ErrWriter)
		}
		if err := cli.DisplayResultWithConfig(out, best.Result, best.Name, best.Duration, a.outputConfig()); err != nil {
			return presenter.HandleError(err, 0, a.ErrWriter)
		}
		return apperrors.ExitSuccess
	}

	opts := orchestration.PresentationOptions{
		Bits:      x.BitLen() + y.BitLen(),
		Verbose:   a.Config.Verbose,
		Details:   a.Config.Details,
		HexOutput: a.Config.HexOutput,
	}
	code := orchestration.AnalyzeComparisonResults(results, opts, presenter, presenter, out)
	if code != apperrors.ExitSuccess {
		return code
	}
	if a.Config.Details {
		cli.DisplayMemoryStats(used, out)
	}
	if best := fastestSuccess(results); best != nil && a.Config.OutputFile != "" {
		if err := cli.WriteResultToFile(best.Result, best.Duration, best.Name, a.outputConfig()); err != nil {
			return presenter.HandleError(err, 0, a.ErrWriter)
		}
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
	}
	return code
}

// runPoly evaluates one polynomial operation.
func (a *Application) runPoly(ctx context.Context, out io.Writer) int {
	ctx, cancel := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancel()

	presenter := cli.CLIResultPresenter{}
	start := time.Now()
	res, err := a.Service.EvaluatePoly(ctx, service.PolyRequest{
		Op:       a.Config.Op,
		Expr:     a.Config.Expr,
		Arg:      a.Config.Arg,
		Coef:     a.Config.Coef,
		Variable: a.Config.Variable,
	})
	if err != nil {
		return presenter.HandleError(err, time.Since(start), a.ErrWriter)
	}
	if a.Config.JSONOutput {
		err = cli.DisplayJSON(out, res)
	} else {
		err = cli.DisplayPolyResult(out, res, a.outputConfig())
	}
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}
	return apperrors.ExitSuccess
}

// runServe runs the HTTP server until ctx is canceled. Multiplications and
// polynomial operations are reported to the server's metrics collector.
func (a *Application) runServe(ctx context.Context, out io.Writer) int {
	collector := metrics.NewCollector()
	bigint.SetMulObserver(collector)
	defer bigint.SetMulObserver(nil)

	svc := a.Service
	if a.ownService {
		svc = service.New(service.WithLogger(a.Logger), service.WithPolyObserver(collector))
	}
	srv := server.NewServer(svc, a.Config,
		server.WithLogger(a.Logger),
		server.WithCollector(collector),
	)
	fmt.Fprintf(out, "Listening on %s\n", a.Config.Addr)
	if err := srv.Start(ctx); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func fastestSuccess(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var best *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil && (best == nil || results[i].Duration < best.Duration) {
			best = &results[i]
		}
	}
	return best
}

func firstFailure(results []orchestration.CalculationResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
