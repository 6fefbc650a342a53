package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/algebra/internal/config"
)

// programName is the binary name completion scripts are registered for.
const programName = "algebra"

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads completionFlags, so a new flag only needs an entry
// there.
type FlagCompletion struct {
	Name      string   // flag name without the leading dash
	Help      string   // description text
	Values    []string // suggested values (nil = boolean or free-form)
	ValueName string   // label for the value in zsh; empty for booleans
	IsFile    bool     // the flag takes a file path
}

// completionFlags returns the flags known to the completion scripts.
// Value lists come from the config package so they never drift.
func completionFlags() []FlagCompletion {
	algos := append(append([]string(nil), config.Algorithms...), config.DefaultAlgo)
	return []FlagCompletion{
		{Name: "a", Help: "First integer operand", ValueName: "integer"},
		{Name: "b", Help: "Second integer operand", ValueName: "integer"},
		{Name: "algo", Help: "Multiplication algorithm", Values: algos, ValueName: "algorithm"},
		{Name: "expr", Help: "Polynomial expression", ValueName: "polynomial"},
		{Name: "op", Help: "Polynomial operation", Values: config.PolyOps, ValueName: "operation"},
		{Name: "arg", Help: "Second operand, point or exponent", ValueName: "operand"},
		{Name: "coef", Help: "Coefficient domain", Values: config.CoefDomains, ValueName: "domain"},
		{Name: "var", Help: "Polynomial variable", ValueName: "name"},
		{Name: "karatsuba-threshold", Help: "Karatsuba threshold in words", Values: []string{"0", "24", "32", "48", "64"}, ValueName: "words"},
		{Name: "fft-threshold", Help: "FFT threshold in words", Values: []string{"0", "1024", "2048", "4096"}, ValueName: "words"},
		{Name: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration"},
		{Name: "v", Help: "Display full values"},
		{Name: "d", Help: "Display timing and memory details"},
		{Name: "quiet", Help: "Result only, for scripts"},
		{Name: "hex", Help: "Hexadecimal integer output"},
		{Name: "json", Help: "JSON output"},
		{Name: "tui", Help: "Interactive comparison dashboard"},
		{Name: "output", Help: "Output file path", ValueName: "file", IsFile: true},
		{Name: "no-color", Help: "Disable colors"},
		{Name: "theme", Help: "Color theme", Values: []string{"dark", "light", "orange", "none"}, ValueName: "theme"},
		{Name: "log-level", Help: "Diagnostic log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
		{Name: "calibration-profile", Help: "Calibration profile file", ValueName: "file", IsFile: true},
		{Name: "auto-calibrate", Help: "Quick crossover search at startup"},
		{Name: "addr", Help: "Listen address of serve", ValueName: "address"},
		{Name: "shell", Help: "Shell of the completion script", Values: config.Shells, ValueName: "shell"},
		{Name: "version", Help: "Print the version"},
	}
}

// GenerateCompletion writes a shell completion script for algebra.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//
// Returns:
//   - error: An error if the shell is not supported or writing fails.
func GenerateCompletion(out io.Writer, shell string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(completionFlags())
	case "zsh":
		script = zshCompletion(completionFlags())
	case "fish":
		script = fishCompletion(completionFlags())
	case "powershell", "ps":
		script = powerShellCompletion(completionFlags())
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(config.Shells, ", "))
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func bashCompletion(flags []FlagCompletion) string {
	var opts []string
	var cases strings.Builder
	var files []string
	for _, f := range flags {
		opts = append(opts, "-"+f.Name)
		switch {
		case f.IsFile:
			files = append(files, "-"+f.Name)
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        -%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				f.Name, strings.Join(f.Values, " "))
		}
	}
	if len(files) > 0 {
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(files, "|"))
	}

	return fmt.Sprintf(`# Bash completion script for %[1]s
# Add this to your ~/.bashrc or ~/.bash_completion

_%[1]s_completions() {
    local cur prev opts commands
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%[2]s"
    commands="%[3]s"

    case "${prev}" in
%[4]s    esac

    if [[ ${COMP_CWORD} -eq 1 && "${cur}" != -* ]]; then
        COMPREPLY=( $(compgen -W "${commands}" -- "${cur}") )
        return 0
    fi
    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
}

complete -F _%[1]s_completions %[1]s
`, programName, strings.Join(opts, " "), strings.Join(config.Commands, " "), cases.String())
}

// zshArgEntry formats a flag as a zsh _arguments specification.
func zshArgEntry(f FlagCompletion) string {
	suffix := ""
	switch {
	case f.IsFile:
		suffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(f.Values) > 0:
		suffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		suffix = fmt.Sprintf(":%s:", f.ValueName)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Name, f.Help, suffix)
}

func zshCompletion(flags []FlagCompletion) string {
	args := make([]string, 0, len(flags)+1)
	args = append(args, "        '1:command:(("+zshCommandSpecs()+"))'")
	for _, f := range flags {
		args = append(args, zshArgEntry(f))
	}
	return fmt.Sprintf(`#compdef %[1]s

# Zsh completion script for %[1]s
# Place this file in a directory listed in $fpath

_%[1]s() {
    _arguments -s \
%[2]s
}

_%[1]s "$@"
`, programName, strings.Join(args, " \\\n"))
}

var commandHelp = map[string]string{
	config.CommandMul:       "multiply two integers",
	config.CommandPoly:      "polynomial operation",
	config.CommandREPL:      "interactive session",
	config.CommandCalibrate: "measure multiplication crossovers",
	config.CommandServe:     "HTTP API server",
	config.CommandComplete:  "print a completion script",
}

func zshCommandSpecs() string {
	specs := make([]string, 0, len(config.Commands))
	for _, c := range config.Commands {
		specs = append(specs, fmt.Sprintf(`%s\:"%s"`, c, commandHelp[c]))
	}
	return strings.Join(specs, " ")
}

// fishCompleteLine formats a flag as a fish complete command.
func fishCompleteLine(f FlagCompletion) string {
	parts := []string{"complete -c " + programName, "-o " + f.Name, fmt.Sprintf("-d '%s'", f.Help)}
	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}

func fishCompletion(flags []FlagCompletion) string {
	lines := []string{
		"# Fish completion script for " + programName,
		"# Add this to ~/.config/fish/completions/" + programName + ".fish",
		"",
		"complete -c " + programName + " -f",
		"",
		"# Commands",
	}
	for _, c := range config.Commands {
		lines = append(lines, fmt.Sprintf("complete -c %s -n '__fish_use_subcommand' -a %s -d '%s'", programName, c, commandHelp[c]))
	}
	lines = append(lines, "", "# Options")
	for _, f := range flags {
		lines = append(lines, fishCompleteLine(f))
	}
	return strings.Join(lines, "\n") + "\n"
}

func quotePS(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}

func powerShellCompletion(flags []FlagCompletion) string {
	var options, switches []string
	for _, f := range flags {
		options = append(options, fmt.Sprintf("        @{Name = '-%s'; Description = '%s' }", f.Name, f.Help))
		if len(f.Values) > 0 {
			switches = append(switches, fmt.Sprintf(`        '-%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Name, quotePS(f.Values)))
		}
	}

	return fmt.Sprintf(`# PowerShell completion script for %[1]s
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName '%[1]s' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = @(%[2]s)
    $options = @(
%[3]s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 1) { $elements[-1].ToString() } else { '' }
    if ($wordToComplete -ne '' -and $elements.Count -gt 2) { $prevElement = $elements[-2].ToString() }

    switch ($prevElement) {
%[4]s
    }

    if ($elements.Count -le 2 -and -not $wordToComplete.StartsWith('-')) {
        $commands | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'Command', $_)
        }
        return
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, programName, quotePS(config.Commands), strings.Join(options, "\n"), strings.Join(switches, "\n"))
}
