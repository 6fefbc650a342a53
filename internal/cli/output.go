// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile], [WritePolyResultToFile].

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/algebra/internal/bigint"
	"github.com/agbru/algebra/internal/format"
	"github.com/agbru/algebra/internal/orchestration"
	"github.com/agbru/algebra/internal/service"
	"github.com/agbru/algebra/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode prints the value only.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
	// HexOutput prints integers in base 16.
	HexOutput bool
}

// writeResultFile writes a commented header followed by body.
func writeResultFile(path string, header []string, body string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	for _, h := range header {
		fmt.Fprintf(file, "# %s\n", h)
	}
	fmt.Fprintf(file, "\n%s\n", body)
	return file.Sync()
}

// WriteResultToFile writes a product to config.OutputFile. It is a no-op
// when no file is configured.
//
// Parameters:
//   - result: The product.
//   - duration: The multiplication time.
//   - algo: The algorithm name used.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result bigint.Int, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	text := result.String()
	return writeResultFile(config.OutputFile, []string{
		"Algebra Multiplication Result",
		"Algorithm: " + algo,
		"Duration: " + duration.String(),
		fmt.Sprintf("Bits: %d", result.BitLen()),
		fmt.Sprintf("Digits: %d", len(text)),
	}, "a*b =\n"+text)
}

// WritePolyResultToFile writes a polynomial result to config.OutputFile.
func WritePolyResultToFile(res service.PolyResult, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	body := res.Result
	if res.Remainder != "" {
		body = "q = " + res.Result + "\nr = " + res.Remainder
	}
	return writeResultFile(config.OutputFile, []string{
		"Algebra Polynomial Result",
		"Operation: " + res.Op,
		"Coefficients: " + res.Coef,
		fmt.Sprintf("Degree: %d", res.Degree),
		fmt.Sprintf("Terms: %d", res.Terms),
	}, body)
}

// FormatQuietResult formats a result for quiet mode output: the bare value,
// in base 16 with a 0x prefix when hex is set.
func FormatQuietResult(result bigint.Int, hex bool) string {
	if hex {
		return fmt.Sprintf("%#x", result)
	}
	return result.String()
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, result bigint.Int, hex bool) {
	fmt.Fprintln(out, FormatQuietResult(result, hex))
}

// DisplayResult prints a product with its size and, depending on opts,
// timing details and the (possibly truncated) value.
func DisplayResult(result bigint.Int, algo string, duration time.Duration, opts orchestration.PresentationOptions, out io.Writer) {
	text := result.String()
	fmt.Fprintf(out, "Result binary size: %s%s%s bits.\n", ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(result.BitLen())), ui.ColorReset())

	if opts.Details {
		fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", ui.ColorBold(), ui.ColorReset())
		fmt.Fprintf(out, "Algorithm:        %s%s%s\n", ui.ColorGreen(), algo, ui.ColorReset())
		fmt.Fprintf(out, "Calculation time: %s%s%s\n", ui.ColorGreen(), FormatExecutionDuration(duration), ui.ColorReset())
		fmt.Fprintf(out, "Number of digits: %s%s%s\n", ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(len(text))), ui.ColorReset())
		if opts.Bits > 0 {
			fmt.Fprintf(out, "Operand bits:     %s%d%s\n", ui.ColorCyan(), opts.Bits, ui.ColorReset())
			fmt.Fprintf(out, "Throughput:       %s%s%s\n", ui.ColorCyan(), format.FormatWordRate((opts.Bits+63)/64, duration), ui.ColorReset())
		}
	}

	fmt.Fprintf(out, "\n%s--- Calculated value ---%s\n", ui.ColorBold(), ui.ColorReset())
	if opts.HexOutput {
		hex := fmt.Sprintf("%#x", result)
		if !opts.Verbose {
			hex, _ = format.Truncate(hex, 2*HexDisplayEdges+3, HexDisplayEdges)
		}
		fmt.Fprintf(out, "a*b = %s%s%s\n", ui.ColorGreen(), hex, ui.ColorReset())
		return
	}
	if !opts.Verbose {
		if short, cut := format.Truncate(text, TruncationLimit, DisplayEdges); cut {
			fmt.Fprintf(out, "a*b = %s%s%s (truncated)\n", ui.ColorGreen(), short, ui.ColorReset())
			fmt.Fprintf(out, "Tip: use %s-v%s to display the full value.\n", ui.ColorYellow(), ui.ColorReset())
			return
		}
	}
	fmt.Fprintf(out, "a*b = %s%s%s\n", ui.ColorGreen(), format.FormatNumberString(text), ui.ColorReset())
}

// DisplayResultWithConfig displays a product with the given output
// configuration and saves it when a file is configured.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, result bigint.Int, algo string, duration time.Duration, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, result, config.HexOutput)
	} else {
		DisplayResult(result, algo, duration, orchestration.PresentationOptions{
			Verbose: config.Verbose, Details: true, HexOutput: config.HexOutput,
		}, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(result, duration, algo, config); err != nil {
			return err
		}
		displaySaved(out, config)
	}
	return nil
}

// DisplayPolyResult prints a polynomial result and saves it when a file
// is configured.
func DisplayPolyResult(out io.Writer, res service.PolyResult, config OutputConfig) error {
	value := res.Result
	if !config.Verbose {
		value, _ = format.Truncate(value, 4*TruncationLimit, 2*DisplayEdges)
	}
	switch {
	case config.Quiet && res.Remainder != "":
		fmt.Fprintln(out, value)
		fmt.Fprintln(out, res.Remainder)
	case config.Quiet:
		fmt.Fprintln(out, value)
	default:
		label := res.Op
		if res.Remainder != "" {
			label = "quotient"
		}
		fmt.Fprintf(out, "%s%s%s [%s] = %s%s%s\n", ui.ColorBold(), label, ui.ColorReset(), res.Coef,
			ui.ColorGreen(), value, ui.ColorReset())
		if res.Remainder != "" {
			fmt.Fprintf(out, "%sremainder%s = %s%s%s\n", ui.ColorBold(), ui.ColorReset(),
				ui.ColorGreen(), res.Remainder, ui.ColorReset())
		}
		if res.Op != service.OpSubs {
			fmt.Fprintf(out, "degree %d, %d terms, %s\n", res.Degree, res.Terms, FormatExecutionDuration(res.Duration))
		}
	}

	if config.OutputFile != "" {
		if err := WritePolyResultToFile(res, config); err != nil {
			return err
		}
		displaySaved(out, config)
	}
	return nil
}

func displaySaved(out io.Writer, config OutputConfig) {
	if !config.Quiet {
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
	}
}

// DisplayJSON writes v as indented JSON.
func DisplayJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
