package config

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/algebra/internal/errors"
)

func TestParseConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("algebra", nil, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Command != CommandREPL {
			t.Errorf("Expected default command %q, got %q", CommandREPL, cfg.Command)
		}
		if cfg.Algo != "all" {
			t.Errorf("Expected default Algo 'all', got %s", cfg.Algo)
		}
		if cfg.Timeout != DefaultTimeout {
			t.Errorf("Expected default Timeout %v, got %v", DefaultTimeout, cfg.Timeout)
		}
		if cfg.Coef != "int" || cfg.Variable != "x" || cfg.Op != "norm" {
			t.Errorf("Unexpected polynomial defaults: coef=%q var=%q op=%q", cfg.Coef, cfg.Variable, cfg.Op)
		}
	})

	t.Run("MulFlags", func(t *testing.T) {
		t.Parallel()
		args := []string{"mul", "-a", "123456789", "-b", "-987654321", "-algo", "KARATSUBA", "-timeout", "10s", "-karatsuba-threshold", "16", "-v"}
		cfg, err := ParseConfig("algebra", args, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Command != CommandMul || cfg.A != "123456789" || cfg.B != "-987654321" {
			t.Errorf("Unexpected operands: %+v", cfg)
		}
		if cfg.Algo != "karatsuba" {
			t.Errorf("Expected algo to be lower-cased, got %q", cfg.Algo)
		}
		if cfg.Timeout != 10*time.Second {
			t.Errorf("Expected Timeout 10s, got %v", cfg.Timeout)
		}
		if got := cfg.Thresholds(); got.Karatsuba != 16 || got.FFT != 0 {
			t.Errorf("Thresholds() = %+v", got)
		}
		if !cfg.Verbose {
			t.Error("Expected Verbose true")
		}
	})

	t.Run("PolyFlags", func(t *testing.T) {
		t.Parallel()
		args := []string{"poly", "-expr", "x^2-1", "-op", "divmod", "-arg", "x-1", "-coef", "rat", "-var", "t"}
		cfg, err := ParseConfig("algebra", args, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Expr != "x^2-1" || cfg.Op != "divmod" || cfg.Arg != "x-1" || cfg.Coef != "rat" || cfg.Variable != "t" {
			t.Errorf("Unexpected poly config: %+v", cfg)
		}
	})

	t.Run("VersionSkipsValidation", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("algebra", []string{"-version"}, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !cfg.ShowVersion {
			t.Error("Expected ShowVersion true")
		}
	})

	t.Run("HelpFlag", func(t *testing.T) {
		t.Parallel()
		_, err := ParseConfig("algebra", []string{"-h"}, io.Discard)
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("Expected flag.ErrHelp, got %v", err)
		}
	})
}

func TestParseConfigInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown command", []string{"factor"}, "unknown command"},
		{"mul without operands", []string{"mul", "-a", "3"}, "requires both"},
		{"bad algorithm", []string{"mul", "-a", "1", "-b", "2", "-algo", "toom"}, "unrecognized algorithm"},
		{"bad op", []string{"poly", "-expr", "x", "-op", "factor"}, "unrecognized polynomial operation"},
		{"bad coef", []string{"poly", "-coef", "complex"}, "unrecognized coefficient domain"},
		{"negative threshold", []string{"repl", "-fft-threshold", "-1"}, "cannot be negative"},
		{"zero timeout", []string{"repl", "-timeout", "0s"}, "strictly positive"},
		{"empty variable", []string{"poly", "-var", ""}, "variable name"},
		{"bad shell", []string{"completion", "-shell", "tcsh"}, "unsupported shell"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var sb strings.Builder
			_, err := ParseConfig("algebra", tt.args, &sb)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
			if got := apperrors.ExitCodeFor(err); got != apperrors.ExitErrorConfig {
				t.Errorf("ExitCodeFor = %d, want %d", got, apperrors.ExitErrorConfig)
			}
			if !strings.Contains(sb.String(), "Commands:") {
				t.Error("usage should be printed on configuration errors")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"ALGO", "fft")
	t.Setenv(EnvPrefix+"TIMEOUT", "3s")
	t.Setenv(EnvPrefix+"FFT_THRESHOLD", "1234")
	t.Setenv(EnvPrefix+"QUIET", "yes")
	t.Setenv(EnvPrefix+"COEF", "field")
	t.Setenv(EnvPrefix+"KARATSUBA_THRESHOLD", "not-a-number")

	cfg, err := ParseConfig("algebra", []string{"poly", "-algo", "schoolbook"}, io.Discard)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Algo != "schoolbook" {
		t.Errorf("explicit flag must win over env, got %q", cfg.Algo)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Timeout)
	}
	if cfg.FFTThreshold != 1234 {
		t.Errorf("FFTThreshold = %d, want 1234", cfg.FFTThreshold)
	}
	if cfg.KaratsubaThreshold != 0 {
		t.Errorf("invalid env value should be ignored, got %d", cfg.KaratsubaThreshold)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be enabled by env")
	}
	if cfg.Coef != "field" {
		t.Errorf("Coef = %q, want field", cfg.Coef)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"TRUE", false, true},
		{"1", false, true},
		{"no", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestApplyAdaptiveThresholds(t *testing.T) {
	t.Parallel()
	cfg := ApplyAdaptiveThresholds(AppConfig{FFTThreshold: 99})
	if cfg.KaratsubaThreshold <= 0 {
		t.Errorf("KaratsubaThreshold should be estimated, got %d", cfg.KaratsubaThreshold)
	}
	if cfg.FFTThreshold != 99 {
		t.Errorf("explicit FFTThreshold must be preserved, got %d", cfg.FFTThreshold)
	}
	if k, f := EstimateKaratsubaThreshold(), EstimateFFTThreshold(); k >= f {
		t.Errorf("estimates out of order: karatsuba=%d fft=%d", k, f)
	}
}
