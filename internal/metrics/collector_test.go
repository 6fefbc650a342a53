package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/algebra/internal/bigint"
)

func TestObserveMul(t *testing.T) {
	t.Parallel()
	c := NewCollector()

	c.ObserveMul(bigint.Karatsuba, 64, time.Microsecond)
	c.ObserveMul(bigint.Karatsuba, 80, time.Microsecond)
	c.ObserveMul(bigint.FFT, 4000, time.Millisecond)

	if got := testutil.ToFloat64(c.mulTotal.WithLabelValues("karatsuba")); got != 2 {
		t.Errorf("karatsuba count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.mulTotal.WithLabelValues("fft")); got != 1 {
		t.Errorf("fft count = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(c.mulDuration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestObserveMulThroughDispatch(t *testing.T) {
	// Not parallel: installs the process-wide observer.
	c := NewCollector()
	bigint.SetMulObserver(c)
	defer bigint.SetMulObserver(nil)

	x := bigint.MustParse("123456789012345678901234567890")
	_ = x.MulWith(x, bigint.Schoolbook)

	if got := testutil.ToFloat64(c.mulTotal.WithLabelValues("schoolbook")); got < 1 {
		t.Errorf("schoolbook count = %v, want >= 1", got)
	}
}

func TestObservePoly(t *testing.T) {
	t.Parallel()
	c := NewCollector()

	c.ObservePoly("gcd", "rat", time.Millisecond, nil)
	c.ObservePoly("gcd", "int", time.Millisecond, errors.New("inexact"))

	if got := testutil.ToFloat64(c.polyTotal.WithLabelValues("gcd", "rat", "success")); got != 1 {
		t.Errorf("success count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.polyTotal.WithLabelValues("gcd", "int", "error")); got != 1 {
		t.Errorf("error count = %v, want 1", got)
	}
}

func TestRequestGauge(t *testing.T) {
	t.Parallel()
	c := NewCollector()

	c.RequestStarted("/v1/mul")
	c.RequestStarted("/v1/mul")
	c.RequestFinished()

	if got := testutil.ToFloat64(c.activeRequests); got != 1 {
		t.Errorf("active = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues("/v1/mul")); got != 2 {
		t.Errorf("total = %v, want 2", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	c.ObserveMul(bigint.Schoolbook, 3, time.Nanosecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{"algebra_multiplications_total", `algorithm="schoolbook"`, "go_goroutines"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}
