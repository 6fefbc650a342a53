package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/agbru/algebra/internal/bigint"
	"github.com/agbru/algebra/internal/config"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/logging"
	"github.com/agbru/algebra/internal/metrics"
	"github.com/agbru/algebra/internal/poly"
	"github.com/agbru/algebra/internal/service"
	"github.com/agbru/algebra/internal/service/mocks"
)

func newTestServer(t *testing.T, svc service.Service, opts ...Option) *Server {
	t.Helper()
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 6000, Burst: 1000})
	t.Cleanup(rl.Stop)
	base := []Option{WithLogger(logging.NewNopLogger()), WithRateLimiter(rl)}
	return NewServer(svc, config.AppConfig{Addr: "127.0.0.1:0"}, append(base, opts...)...)
}

func serve(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return v
}

func TestHandleMul(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().Multiply(gomock.Any(), "12", "34", "karatsuba").Return(service.MulResult{
		Product:   bigint.FromInt64(408),
		Algorithm: "karatsuba",
		Duration:  500 * time.Microsecond,
	}, nil).Times(2)
	s := newTestServer(t, svc)

	for _, tc := range []struct{ method, target, body string }{
		{http.MethodGet, "/v1/mul?a=12&b=34&algo=karatsuba", ""},
		{http.MethodPost, "/v1/mul", `{"a":"12","b":"34","algo":"karatsuba"}`},
	} {
		rec := serve(t, s, tc.method, tc.target, tc.body)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d, body %s", tc.method, rec.Code, rec.Body)
		}
		got := decode[MulResponse](t, rec)
		if got.Product != "408" || got.Bits != 9 || got.Algorithm != "karatsuba" {
			t.Errorf("%s response = %+v", tc.method, got)
		}
	}
}

func TestHandleMulRejections(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	s := newTestServer(t, mocks.NewMockService(ctrl))

	tests := []struct {
		name, method, target, body string
		want                       int
	}{
		{"missing operand", http.MethodGet, "/v1/mul?a=1", "", http.StatusBadRequest},
		{"bad json", http.MethodPost, "/v1/mul", `{"a":`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/v1/mul", `{"a":"1","b":"2","c":"3"}`, http.StatusBadRequest},
		{"wrong method", http.MethodDelete, "/v1/mul", "", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, s, tt.method, tt.target, tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if got := decode[ErrorResponse](t, rec); got.Error != http.StatusText(tt.want) {
				t.Errorf("error = %q", got.Error)
			}
		})
	}
}

func TestHandlePoly(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	want := service.PolyRequest{Op: service.OpDivMod, Expr: "x^2-1", Arg: "x-1", Coef: service.CoefRat, Variable: "x"}
	svc.EXPECT().EvaluatePoly(gomock.Any(), want).Return(service.PolyResult{
		Op: service.OpDivMod, Coef: service.CoefRat, Result: "x+1", Degree: 1, Terms: 2,
	}, nil).Times(2)
	s := newTestServer(t, svc)

	get := serve(t, s, http.MethodGet, "/v1/poly?op=divmod&expr=x%5E2-1&arg=x-1&coef=rat&var=x", "")
	post := serve(t, s, http.MethodPost, "/v1/poly", `{"op":"divmod","expr":"x^2-1","arg":"x-1","coef":"rat","var":"x"}`)
	for _, rec := range []*httptest.ResponseRecorder{get, post} {
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
		}
		got := decode[service.PolyResult](t, rec)
		if got.Result != "x+1" || got.Degree != 1 || got.Remainder != "" {
			t.Errorf("response = %+v", got)
		}
	}

	if rec := serve(t, s, http.MethodGet, "/v1/poly?op=norm", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("missing expr: status = %d, want 400", rec.Code)
	}
}

func TestServiceErrorStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"parse", apperrors.NewParseError("polynomial", "x^", errors.New("dangling")), http.StatusBadRequest},
		{"config", apperrors.NewConfigError("unknown algorithm %q", "toom"), http.StatusBadRequest},
		{"division by zero", fmt.Errorf("divmod: %w", apperrors.ErrDivisionByZero), http.StatusUnprocessableEntity},
		{"inexact", poly.ErrInexactDivision, http.StatusUnprocessableEntity},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"canceled", context.Canceled, http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockService(ctrl)
			svc.EXPECT().EvaluatePoly(gomock.Any(), gomock.Any()).Return(service.PolyResult{}, tt.err)
			s := newTestServer(t, svc)

			rec := serve(t, s, http.MethodGet, "/v1/poly?expr=x", "")
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if got := decode[ErrorResponse](t, rec); got.Message != tt.err.Error() {
				t.Errorf("message = %q, want %q", got.Message, tt.err.Error())
			}
		})
	}
}

func TestHandleAlgorithmsAndHealth(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	s := newTestServer(t, mocks.NewMockService(ctrl))

	rec := serve(t, s, http.MethodGet, "/v1/algorithms", "")
	algos := decode[map[string][]string](t, rec)["algorithms"]
	if len(algos) != len(config.Algorithms) {
		t.Errorf("algorithms = %v, want %v", algos, config.Algorithms)
	}

	rec = serve(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"healthy"`) {
		t.Errorf("health = %d %s", rec.Code, rec.Body)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security middleware not applied")
	}

	if rec := serve(t, s, http.MethodPost, "/health", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /health = %d, want 405", rec.Code)
	}
}

func TestMetricsEndpointCountsRequests(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	collector := metrics.NewCollector()
	s := newTestServer(t, mocks.NewMockService(ctrl), WithCollector(collector))

	serve(t, s, http.MethodGet, "/health", "")
	serve(t, s, http.MethodGet, "/health", "")

	rec := serve(t, s, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`algebra_requests_total{path="/health"} 2`, "algebra_active_requests 1"} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestRateLimitApplied(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 1, Burst: 1})
	t.Cleanup(rl.Stop)
	s := newTestServer(t, mocks.NewMockService(ctrl), WithRateLimiter(rl))

	if rec := serve(t, s, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("first request = %d", rec.Code)
	}
	if rec := serve(t, s, http.MethodGet, "/health", ""); rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request = %d, want 429", rec.Code)
	}
}

func TestServeGracefulShutdown(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	s := newTestServer(t, mocks.NewMockService(ctrl))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}
