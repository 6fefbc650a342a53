// Package config provides the configuration management for the algebra
// application. It defines the configuration structure, parses the command
// line (a leading sub-command followed by flags), applies ALGEBRA_*
// environment overrides and validates the result.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/agbru/algebra/internal/bigint"
	apperrors "github.com/agbru/algebra/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables read by algebra.
	EnvPrefix = "ALGEBRA_"
)

// Sub-commands accepted as the first argument.
const (
	CommandMul       = "mul"
	CommandPoly      = "poly"
	CommandREPL      = "repl"
	CommandCalibrate = "calibrate"
	CommandServe     = "serve"
	CommandComplete  = "completion"
)

// Commands lists every sub-command in display order.
var Commands = []string{CommandMul, CommandPoly, CommandREPL, CommandCalibrate, CommandServe, CommandComplete}

// Shells lists the shells the completion command can generate scripts for.
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// Polynomial operations accepted by the poly command and the HTTP API.
var PolyOps = []string{"norm", "mul", "divmod", "gcd", "diff", "subs", "pow"}

// Coefficient domains accepted for polynomial input.
var CoefDomains = []string{"int", "rat", "field"}

// Algorithms lists the multiplication strategies selectable with -algo,
// besides "all".
var Algorithms = []string{"schoolbook", "karatsuba", "fft", "auto"}

// Default configuration values.
const (
	// DefaultTimeout bounds a single command or request.
	DefaultTimeout = time.Minute
	// DefaultAddr is the listen address of the serve command.
	DefaultAddr = ":8080"
	// DefaultAlgo runs every multiplication algorithm and compares them.
	DefaultAlgo = "all"
	// DefaultOp is the polynomial operation of the poly command.
	DefaultOp = "norm"
	// DefaultCoef is the coefficient domain of polynomial input.
	DefaultCoef = "int"
	// DefaultVariable is the polynomial variable name.
	DefaultVariable = "x"
	// DefaultLogLevel is the zerolog level name used for diagnostics.
	DefaultLogLevel = "info"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Command is the selected sub-command (mul, poly, repl, calibrate, serve).
	Command string

	// A and B are the integer operands of the mul command.
	A, B string
	// Algo selects the multiplication algorithm, or "all" to compare them.
	Algo string

	// Expr is the polynomial expression of the poly command.
	Expr string
	// Op is the polynomial operation to apply to Expr.
	Op string
	// Arg is the second operand of binary polynomial operations, the point
	// of subs, or the exponent of pow.
	Arg string
	// Coef is the coefficient domain: int, rat or field.
	Coef string
	// Variable names the polynomial variable for parsing and rendering.
	Variable string

	// KaratsubaThreshold and FFTThreshold are the dispatch thresholds in
	// words. Zero selects the calibrated or estimated value.
	KaratsubaThreshold int
	FFTThreshold       int

	// Timeout bounds a single command or request.
	Timeout time.Duration
	// Verbose prints full values instead of truncated ones.
	Verbose bool
	// Details prints timing and memory details.
	Details bool
	// Quiet prints results only, for scripting.
	Quiet bool
	// HexOutput prints integer results in base 16.
	HexOutput bool
	// JSONOutput prints results as JSON.
	JSONOutput bool
	// TUI shows the mul comparison as an interactive dashboard.
	TUI bool
	// OutputFile, if set, also writes the result to this path.
	OutputFile string
	// NoColor disables ANSI colors. NO_COLOR is honoured as well.
	NoColor bool
	// Theme selects the color theme (dark, light, orange, none).
	Theme string
	// LogLevel is the zerolog level for diagnostics (debug, info, warn, error).
	LogLevel string

	// CalibrationProfile is the path of the calibration profile. Empty
	// selects ~/.algebra_calibration.json.
	CalibrationProfile string
	// AutoCalibrate runs a quick crossover search at startup.
	AutoCalibrate bool

	// Addr is the listen address of the serve command.
	Addr string

	// Shell selects the completion script generated by the completion command.
	Shell string

	// ShowVersion prints the version and exits.
	ShowVersion bool
}

// Thresholds returns the dispatch thresholds carried by the configuration.
func (c AppConfig) Thresholds() bigint.Thresholds {
	return bigint.Thresholds{Karatsuba: c.KaratsubaThreshold, FFT: c.FFTThreshold}
}

// Validate checks the semantic consistency of the configuration.
//
// Returns:
//   - error: A ConfigError describing the first problem found, nil otherwise.
func (c AppConfig) Validate() error {
	if c.ShowVersion {
		return nil
	}
	if !slices.Contains(Commands, c.Command) {
		return apperrors.NewConfigError("unknown command %q. Valid commands are: %s", c.Command, strings.Join(Commands, ", "))
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.KaratsubaThreshold < 0 {
		return apperrors.NewConfigError("Karatsuba threshold cannot be negative: %d", c.KaratsubaThreshold)
	}
	if c.FFTThreshold < 0 {
		return apperrors.NewConfigError("FFT threshold cannot be negative: %d", c.FFTThreshold)
	}
	if c.Algo != DefaultAlgo && !slices.Contains(Algorithms, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]", c.Algo, strings.Join(Algorithms, ", "))
	}
	if !slices.Contains(CoefDomains, c.Coef) {
		return apperrors.NewConfigError("unrecognized coefficient domain: '%s'. Valid domains are: %s", c.Coef, strings.Join(CoefDomains, ", "))
	}
	if c.Variable == "" {
		return apperrors.NewConfigError("variable name cannot be empty")
	}
	switch c.Command {
	case CommandMul:
		if c.A == "" || c.B == "" {
			return apperrors.NewConfigError("mul requires both -a and -b operands")
		}
		if c.TUI && (c.Quiet || c.JSONOutput) {
			return apperrors.NewConfigError("-tui cannot be combined with -quiet or -json")
		}
	case CommandPoly:
		if !slices.Contains(PolyOps, c.Op) {
			return apperrors.NewConfigError("unrecognized polynomial operation: '%s'. Valid operations are: %s", c.Op, strings.Join(PolyOps, ", "))
		}
	case CommandComplete:
		if !slices.Contains(Shells, c.Shell) {
			return apperrors.NewConfigError("unsupported shell: '%s'. Valid shells are: %s", c.Shell, strings.Join(Shells, ", "))
		}
	}
	return nil
}

// ParseConfig parses the command line and populates an AppConfig.
// The first argument names the sub-command unless it starts with '-', in
// which case the command defaults to repl.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments without the program name.
//   - errorWriter: Where parsing errors and usage information are printed.
//
// Returns:
//   - AppConfig: The populated configuration.
//   - error: An error if flag parsing or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	config := AppConfig{Command: CommandREPL}
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		config.Command = strings.ToLower(args[0])
		args = args[1:]
	}

	fs := flag.NewFlagSet(programName+" "+config.Command, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Multiplication algorithm: 'all' (default) or one of [%s].", strings.Join(Algorithms, ", "))

	fs.StringVar(&config.A, "a", "", "First integer operand of mul.")
	fs.StringVar(&config.B, "b", "", "Second integer operand of mul.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.StringVar(&config.Expr, "expr", "", "Polynomial expression, e.g. '2*x^2+5*x-7' or '((1,0),(2,1))'.")
	fs.StringVar(&config.Op, "op", DefaultOp, "Polynomial operation: "+strings.Join(PolyOps, ", ")+".")
	fs.StringVar(&config.Arg, "arg", "", "Second operand: polynomial for mul/divmod/gcd, point for subs, exponent for pow.")
	fs.StringVar(&config.Coef, "coef", DefaultCoef, "Coefficient domain: "+strings.Join(CoefDomains, ", ")+".")
	fs.StringVar(&config.Variable, "var", DefaultVariable, "Polynomial variable name.")
	fs.IntVar(&config.KaratsubaThreshold, "karatsuba-threshold", 0, "Operand length in words from which Karatsuba is used (0 = auto).")
	fs.IntVar(&config.FFTThreshold, "fft-threshold", 0, "Operand length in words from which the NTT is used (0 = auto).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.BoolVar(&config.Verbose, "v", false, "Display full values (can be very long).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Alias for -v.")
	fs.BoolVar(&config.Details, "d", false, "Display timing and memory details.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - result only.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.HexOutput, "hex", false, "Display integer results in hexadecimal.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.TUI, "tui", false, "Show the mul comparison as an interactive dashboard.")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR).")
	fs.StringVar(&config.Theme, "theme", "dark", "Color theme: dark, light, orange, none.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level: debug, info, warn, error.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Path to the calibration profile (default: ~/.algebra_calibration.json).")
	fs.BoolVar(&config.AutoCalibrate, "auto-calibrate", false, "Run a quick crossover search at startup.")
	fs.StringVar(&config.Addr, "addr", DefaultAddr, "Listen address of the serve command.")
	fs.StringVar(&config.Shell, "shell", "bash", "Shell of the completion command: "+strings.Join(Shells, ", ")+".")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print the version and exit.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	config.Op = strings.ToLower(config.Op)
	config.Coef = strings.ToLower(config.Coef)
	config.Shell = strings.ToLower(config.Shell)
	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.Join(errors.New("invalid configuration"), err)
	}
	return config, nil
}
