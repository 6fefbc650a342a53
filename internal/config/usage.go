package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/agbru/algebra/internal/ui"
)

// setCustomUsage configures the flag set with a colored usage function that
// also lists the sub-commands.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}

		out := fs.Output()
		program, _, _ := strings.Cut(fs.Name(), " ")

		fmt.Fprintf(out, "\n%salgebra%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Arbitrary-precision integers and sparse polynomials.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s <command> [flags]\n\n", t.Warning, t.Reset, program)
		fmt.Fprintf(out, "%sCommands:%s\n", t.Warning, t.Reset)
		for _, c := range []struct{ name, help string }{
			{CommandMul, "multiply two integers, comparing algorithms"},
			{CommandPoly, "evaluate a polynomial operation"},
			{CommandREPL, "interactive session (default)"},
			{CommandCalibrate, "measure dispatch thresholds and save a profile"},
			{CommandServe, "run the HTTP API"},
			{CommandComplete, "print a shell completion script (-shell)"},
		} {
			fmt.Fprintf(out, "  %s%-25s%s %s\n", t.Primary, c.name, t.Reset, c.help)
		}
		fmt.Fprintf(out, "\n%sFlags:%s\n", t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			flagSig := fmt.Sprintf("-%s", f.Name)
			if len(name) > 0 {
				flagSig += " " + name
			}

			fmt.Fprintf(out, "  %s%-25s%s %s", t.Primary, flagSig, t.Reset, usage)

			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintln(out)
	}
}
