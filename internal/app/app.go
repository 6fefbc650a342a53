// Package app provides the core application structure for the algebra CLI.
// It parses the command line, resolves the multiplication thresholds and
// dispatches to the selected command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agbru/algebra/internal/bigint"
	"github.com/agbru/algebra/internal/calibration"
	"github.com/agbru/algebra/internal/cli"
	"github.com/agbru/algebra/internal/config"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/logging"
	"github.com/agbru/algebra/internal/service"
	"github.com/agbru/algebra/internal/ui"
)

// Application represents the algebra application instance.
type Application struct {
	Config    config.AppConfig
	Service   service.Service
	Logger    logging.Logger
	ErrWriter io.Writer

	// ownService is set when Service was built by New, so serve may
	// rebuild it with the metrics observer attached.
	ownService bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithService sets the Service used by the mul, poly and repl commands.
func WithService(svc service.Service) AppOption {
	return func(a *Application) { a.Service = svc }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument list, program name first.
//   - errWriter: Where usage and diagnostics are written.
//   - opts: Optional overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: A flag or configuration error; see IsHelpError.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "algebra"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{Config: cfg, ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "algebra")
	}
	if app.Service == nil {
		app.Service = service.New(service.WithLogger(app.Logger))
		app.ownService = true
	}
	return app, nil
}

// Run executes the configured command and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Command == config.CommandComplete {
		return a.runCompletion(out)
	}

	zerolog.SetGlobalLevel(parseLogLevel(a.Config.LogLevel))
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	if a.Config.Command == config.CommandCalibrate {
		return calibration.RunCalibration(ctx, a.Config, out, a.Logger)
	}

	a.resolveThresholds(ctx, out)

	switch a.Config.Command {
	case config.CommandMul:
		return a.runMul(ctx, out)
	case config.CommandPoly:
		return a.runPoly(ctx, out)
	case config.CommandServe:
		return a.runServe(ctx, out)
	}
	return a.runREPL(ctx, out)
}

// resolveThresholds installs the dispatch thresholds: explicit values,
// then the cached profile or a quick search, then hardware estimates.
func (a *Application) resolveThresholds(ctx context.Context, out io.Writer) {
	cfg := a.Config
	if cfg.AutoCalibrate {
		calOut := out
		if cfg.Quiet || cfg.JSONOutput {
			calOut = io.Discard
		}
		cfg, _ = calibration.AutoCalibrate(ctx, cfg, calOut, a.Logger)
	}
	cfg = calibration.ResolveThresholds(cfg)
	bigint.SetThresholds(cfg.Thresholds())
	a.Logger.Debug("dispatch thresholds",
		logging.Int("karatsuba", cfg.KaratsubaThreshold),
		logging.Int("fft", cfg.FFTThreshold))
	a.Config = cfg
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Shell); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive session.
func (a *Application) runREPL(ctx context.Context, _ io.Writer) int {
	repl := cli.NewREPL(a.Service, cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Coef:        a.Config.Coef,
		Variable:    a.Config.Variable,
		Timeout:     a.Config.Timeout,
		HexOutput:   a.Config.HexOutput,
	})
	repl.Start(ctx)
	return apperrors.ExitSuccess
}

func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		HexOutput:  a.Config.HexOutput,
	}
}

func parseLogLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil || name == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
