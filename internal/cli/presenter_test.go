package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/agbru/algebra/internal/bigint"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/metrics"
	"github.com/agbru/algebra/internal/orchestration"
)

func TestComparisonTable(t *testing.T) {
	t.Parallel()
	results := []orchestration.CalculationResult{
		{Name: "karatsuba", Result: bigint.FromInt64(6), Duration: 2 * time.Millisecond},
		{Name: "schoolbook", Result: bigint.FromInt64(6), Duration: 5 * time.Millisecond},
		{Name: "fft", Err: errors.New("boom"), Duration: 0},
	}
	out := ComparisonTable(results)
	for _, want := range []string{"Comparison Summary", "Algorithm", "Duration", "Status", "Relative", "karatsuba", "2ms", "Success", "Failure (boom)", "< 1µs", "1.00x", "2.50x"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "╭") {
		t.Errorf("expected a rounded border:\n%s", out)
	}
}

func TestPresentResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentResult(orchestration.CalculationResult{
		Name: "schoolbook", Result: bigint.FromInt64(-132), Duration: time.Microsecond,
	}, orchestration.PresentationOptions{}, &buf)
	if !strings.Contains(buf.String(), "a*b = -132") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"nil", nil, apperrors.ExitSuccess, ""},
		{"deadline", context.DeadlineExceeded, apperrors.ExitErrorTimeout, "Timeout"},
		{"timeout error", apperrors.TimeoutError{Operation: "mul", Limit: time.Second}, apperrors.ExitErrorTimeout, "Timeout"},
		{"canceled", fmt.Errorf("run: %w", context.Canceled), apperrors.ExitErrorCanceled, "Canceled."},
		{"parse", apperrors.NewParseError("integer", "12a", nil), apperrors.ExitErrorParse, "Error:"},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric, "Error: boom"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := CLIResultPresenter{}.HandleError(tc.err, time.Second, &buf)
			if code != tc.wantCode {
				t.Errorf("code = %d, want %d", code, tc.wantCode)
			}
			if !strings.Contains(buf.String(), tc.wantText) {
				t.Errorf("output %q missing %q", buf.String(), tc.wantText)
			}
		})
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(metrics.MemorySnapshot{HeapAlloc: 1536, TotalAlloc: 1 << 20, NumGC: 3, PauseTotalNs: 2_500_000}, &buf)
	for _, want := range []string{"1.5 KiB", "1.0 MiB", "GC cycles:       3", "2.50ms"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}
