// Package cli provides the command-line presentation layer of algebra:
// progress display, result rendering, the interactive REPL and shell
// completion scripts.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/algebra/internal/bigint"
	"github.com/agbru/algebra/internal/config"
	"github.com/agbru/algebra/internal/service"
	"github.com/agbru/algebra/internal/ui"
)

// primeRounds is the Miller-Rabin round count used by the prime command.
const primeRounds = 20

// maxRandomBits bounds the size requested by the rand command.
const maxRandomBits = 1 << 20

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultAlgo is the multiplication algorithm used by mul.
	DefaultAlgo string
	// Coef is the initial coefficient domain of polynomial commands.
	Coef string
	// Variable is the initial polynomial variable.
	Variable string
	// Timeout is the maximum duration for each command.
	Timeout time.Duration
	// HexOutput displays integer results in hexadecimal format.
	HexOutput bool
}

// REPL represents an interactive algebra session.
type REPL struct {
	config REPLConfig
	svc    service.Service
	algo   string
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - svc: The service evaluating commands.
//   - cfg: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(svc service.Service, cfg REPLConfig) *REPL {
	algo := cfg.DefaultAlgo
	if algo == "" || algo == config.DefaultAlgo {
		algo = bigint.Auto.String()
	}
	if cfg.Coef == "" {
		cfg.Coef = service.CoefInt
	}
	if cfg.Variable == "" {
		cfg.Variable = config.DefaultVariable
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = config.DefaultTimeout
	}
	return &REPL{
		config: cfg,
		svc:    svc,
		algo:   algo,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits, ctx is canceled or EOF is reached.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		if ctx.Err() != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
		fmt.Fprint(r.out, ui.ColorGreen()+"alg> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && strings.TrimSpace(input) != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(ctx, input) {
			return
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sAlgebra - Interactive Mode%s                            %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

var replHelp = [][2]string{
	{"mul <a> <b>", "Multiply two integers with the current algorithm"},
	{"prime <n>", "Test n for primality and show the next prime"},
	{"rand <bits>", "Draw a random integer of the given bit length"},
	{"norm <p>", "Normalize a polynomial"},
	{"pmul <p> <q>", "Multiply two polynomials"},
	{"div <p> <q>", "Divide p by q, printing quotient and remainder"},
	{"gcd <p> <q>", "Greatest common divisor of two polynomials"},
	{"diff <p>", "Derivative with respect to the current variable"},
	{"subs <p> <c>", "Evaluate p at the coefficient c"},
	{"pow <p> <k>", "Raise p to the non-negative power k"},
	{"algo <name>", "Change the multiplication algorithm"},
	{"coef <domain>", "Change the coefficient domain (int, rat, field)"},
	{"var <name>", "Change the polynomial variable"},
	{"hex", "Toggle hexadecimal display"},
	{"status", "Display current configuration"},
	{"help", "Display this help"},
	{"exit / quit", "Exit interactive mode"},
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, h := range replHelp {
		fmt.Fprintf(r.out, "  %s%-14s%s - %s\n", ui.ColorYellow(), h[0], ui.ColorReset(), h[1])
	}
	fmt.Fprintln(r.out, "Polynomials are written without spaces, e.g. 2*x^2+5*x-7 or 1/2*x-3.")
}

// polyCommands maps REPL commands to service operations and their arity.
var polyCommands = map[string]struct {
	op    string
	arity int
}{
	"norm": {service.OpNorm, 1},
	"pmul": {service.OpMul, 2},
	"div":  {service.OpDivMod, 2},
	"gcd":  {service.OpGCD, 2},
	"diff": {service.OpDiff, 1},
	"subs": {service.OpSubs, 2},
	"pow":  {service.OpPow, 2},
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	if pc, ok := polyCommands[cmd]; ok {
		r.cmdPoly(ctx, cmd, pc.op, pc.arity, args)
		return true
	}

	switch cmd {
	case "mul", "m":
		r.cmdMul(ctx, args)
	case "prime":
		r.cmdPrime(args)
	case "rand":
		r.cmdRand(args)
	case "algo", "a":
		r.cmdAlgo(args)
	case "coef":
		r.cmdCoef(args)
	case "var":
		r.cmdVar(args)
	case "hex":
		r.cmdHex()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// A bare expression is normalized.
		if len(parts) == 1 {
			r.cmdPoly(ctx, "norm", service.OpNorm, 1, parts)
			return true
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}

	return true
}

func (r *REPL) printError(err error) {
	fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
}

func (r *REPL) printInt(label string, x bigint.Int) {
	text := x.String()
	switch {
	case r.config.HexOutput:
		fmt.Fprintf(r.out, "  %s = %s%#x%s\n", label, ui.ColorGreen(), x, ui.ColorReset())
	case len(text) > TruncationLimit:
		fmt.Fprintf(r.out, "  %s = %s%s...%s%s (truncated, %d digits)\n",
			label, ui.ColorGreen(), text[:DisplayEdges], text[len(text)-DisplayEdges:], ui.ColorReset(), len(text))
	default:
		fmt.Fprintf(r.out, "  %s = %s%s%s\n", label, ui.ColorGreen(), text, ui.ColorReset())
	}
}

// cmdMul handles the "mul" command.
func (r *REPL) cmdMul(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: mul <a> <b>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	res, err := r.svc.Multiply(ctx, args[0], args[1], r.algo)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintf(r.out, "  Algorithm: %s%s%s, time %s%s%s, %s%d%s bits\n",
		ui.ColorCyan(), res.Algorithm, ui.ColorReset(),
		ui.ColorGreen(), FormatExecutionDuration(res.Duration), ui.ColorReset(),
		ui.ColorCyan(), res.Product.BitLen(), ui.ColorReset())
	r.printInt("a*b", res.Product)
}

// cmdPrime handles the "prime" command.
func (r *REPL) cmdPrime(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: prime <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, err := bigint.Parse(args[0])
	if err != nil {
		r.printError(err)
		return
	}
	verdict := ui.ColorYellow() + "composite" + ui.ColorReset()
	if n.ProbablyPrime(primeRounds) {
		verdict = ui.ColorGreen() + "probably prime" + ui.ColorReset()
	}
	fmt.Fprintf(r.out, "  %s is %s\n", args[0], verdict)
	r.printInt("next prime", n.NextPrime(primeRounds))
}

// cmdRand handles the "rand" command.
func (r *REPL) cmdRand(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: rand <bits>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	bits, err := strconv.Atoi(args[0])
	if err != nil || bits <= 0 || bits > maxRandomBits {
		fmt.Fprintf(r.out, "%sInvalid bit length: %s (want 1..%d)%s\n", ui.ColorRed(), args[0], maxRandomBits, ui.ColorReset())
		return
	}
	x, err := bigint.Random(nil, bits)
	if err != nil {
		r.printError(err)
		return
	}
	r.printInt("random", x)
}

// cmdPoly runs a polynomial operation through the service.
func (r *REPL) cmdPoly(ctx context.Context, name, op string, arity int, args []string) {
	if len(args) != arity {
		usage := name + " <p>"
		if arity == 2 {
			usage += " <arg>"
		}
		fmt.Fprintf(r.out, "%sUsage: %s%s\n", ui.ColorRed(), usage, ui.ColorReset())
		return
	}
	req := service.PolyRequest{Op: op, Expr: args[0], Coef: r.config.Coef, Variable: r.config.Variable}
	if arity == 2 {
		req.Arg = args[1]
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()
	res, err := r.svc.EvaluatePoly(ctx, req)
	if err != nil {
		r.printError(err)
		return
	}
	if res.Remainder != "" {
		fmt.Fprintf(r.out, "  q = %s%s%s\n", ui.ColorGreen(), res.Result, ui.ColorReset())
		fmt.Fprintf(r.out, "  r = %s%s%s\n", ui.ColorGreen(), res.Remainder, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "  %s%s%s\n", ui.ColorGreen(), res.Result, ui.ColorReset())
}

// cmdAlgo handles the "algo" command.
func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: algo <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(config.Algorithms, ", "))
		return
	}

	alg, err := bigint.ParseAlgorithm(strings.ToLower(args[0]))
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown algorithm: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(config.Algorithms, ", "))
		return
	}

	r.algo = alg.String()
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s\n", ui.ColorGreen(), r.algo, ui.ColorReset())
}

// cmdCoef handles the "coef" command.
func (r *REPL) cmdCoef(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: coef <%s>%s\n", ui.ColorRed(), strings.Join(config.CoefDomains, "|"), ui.ColorReset())
		return
	}
	domain := strings.ToLower(args[0])
	switch domain {
	case service.CoefInt, service.CoefRat, service.CoefField:
		r.config.Coef = domain
		fmt.Fprintf(r.out, "Coefficient domain changed to: %s%s%s\n", ui.ColorGreen(), domain, ui.ColorReset())
	default:
		fmt.Fprintf(r.out, "%sUnknown coefficient domain: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
	}
}

// cmdVar handles the "var" command.
func (r *REPL) cmdVar(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: var <name>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	r.config.Variable = args[0]
	fmt.Fprintf(r.out, "Variable changed to: %s%s%s\n", ui.ColorGreen(), args[0], ui.ColorReset())
}

// cmdHex toggles hexadecimal output mode.
func (r *REPL) cmdHex() {
	r.config.HexOutput = !r.config.HexOutput
	status := "disabled"
	if r.config.HexOutput {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Hexadecimal display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	th := bigint.CurrentThresholds()
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Algorithm:      %s%s%s\n", ui.ColorCyan(), r.algo, ui.ColorReset())
	fmt.Fprintf(r.out, "  Coefficients:   %s%s%s\n", ui.ColorCyan(), r.config.Coef, ui.ColorReset())
	fmt.Fprintf(r.out, "  Variable:       %s%s%s\n", ui.ColorCyan(), r.config.Variable, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:        %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Karatsuba from: %s%d%s words\n", ui.ColorCyan(), th.Karatsuba, ui.ColorReset())
	fmt.Fprintf(r.out, "  FFT from:       %s%d%s words\n", ui.ColorCyan(), th.FFT, ui.ColorReset())
	hexStatus := "no"
	if r.config.HexOutput {
		hexStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Hexadecimal:    %s%s%s\n", ui.ColorCyan(), hexStatus, ui.ColorReset())
	fmt.Fprintln(r.out)
}
