package app

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/agbru/algebra/internal/bigint"
	"github.com/agbru/algebra/internal/config"
	"github.com/agbru/algebra/internal/digits"
)

// Build-time variables set via -ldflags, e.g.
//
//	go build -ldflags="-X github.com/agbru/algebra/internal/app.Version=v1.2.3" ./cmd/algebra
//
// Commit and BuildDate fall back to the VCS stamp of the binary when unset.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether any argument asks for the version, so
// that --version works in any position and with any command.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// BuildInfo identifies the binary and the arithmetic engine it carries.
type BuildInfo struct {
	Version    string
	Commit     string
	BuildDate  string
	GoVersion  string
	Platform   string
	WordBits   int
	Algorithms []string
	Thresholds bigint.Thresholds
}

// CurrentBuildInfo collects the build stamp and the dispatch thresholds
// in effect.
func CurrentBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:    Version,
		Commit:     Commit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		WordBits:   digits.WordBits,
		Algorithms: config.Algorithms,
		Thresholds: bigint.CurrentThresholds(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.fillFromVCS(bi.Settings)
	}
	return info
}

// fillFromVCS replaces the unset ldflags values with the vcs.* settings.
func (b *BuildInfo) fillFromVCS(settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "unknown" && s.Value != "" {
				b.Commit = s.Value[:min(len(s.Value), 12)]
			}
		case "vcs.time":
			if b.BuildDate == "unknown" && s.Value != "" {
				b.BuildDate = s.Value
			}
		case "vcs.modified":
			if s.Value == "true" && !strings.HasSuffix(b.Commit, "-dirty") && b.Commit != "unknown" {
				b.Commit += "-dirty"
			}
		}
	}
}

// thresholdText renders a dispatch threshold in words, or "off".
func thresholdText(words int) string {
	if words <= 0 {
		return "off"
	}
	return fmt.Sprintf("%d words", words)
}

// Write prints the build info in the --version layout.
func (b BuildInfo) Write(out io.Writer) {
	fmt.Fprintf(out, "algebra %s\n", b.Version)
	fmt.Fprintf(out, "  Commit:      %s\n", b.Commit)
	fmt.Fprintf(out, "  Built:       %s\n", b.BuildDate)
	fmt.Fprintf(out, "  Go version:  %s\n", b.GoVersion)
	fmt.Fprintf(out, "  OS/Arch:     %s (%d-bit words)\n", b.Platform, b.WordBits)
	fmt.Fprintf(out, "  Algorithms:  %s\n", strings.Join(b.Algorithms, ", "))
	fmt.Fprintf(out, "  Karatsuba:   %s\n", thresholdText(b.Thresholds.Karatsuba))
	fmt.Fprintf(out, "  FFT:         %s\n", thresholdText(b.Thresholds.FFT))
}

// PrintVersion writes the current build info to out.
func PrintVersion(out io.Writer) {
	CurrentBuildInfo().Write(out)
}
