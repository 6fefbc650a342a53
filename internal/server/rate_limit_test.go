package server

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T, perMinute, burst int) (*RateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: perMinute, Burst: burst, CleanupInterval: time.Hour})
	rl.now = clock.now
	t.Cleanup(rl.Stop)
	return rl, clock
}

func TestRateLimiterBurstAndRefill(t *testing.T) {
	t.Parallel()
	rl, clock := newTestLimiter(t, 60, 3)

	for i := range 3 {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d rejected inside burst", i)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("request allowed after burst exhausted")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("other clients must have their own bucket")
	}

	clock.advance(time.Second)
	if !rl.Allow("10.0.0.1") {
		t.Error("one token should be refilled after a second at 60/min")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("only one token should have been refilled")
	}

	clock.advance(time.Hour)
	for i := range 3 {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("refill must cap at burst, request %d rejected", i)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("bucket must never exceed burst")
	}
}

func TestNewRateLimiterDefaults(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 8})
	defer rl.Stop()
	if rl.burst != 2 {
		t.Errorf("burst = %v, want 2", rl.burst)
	}
	if rl.idle != 5*time.Minute {
		t.Errorf("idle = %v, want 5m", rl.idle)
	}
	rl.Stop() // second Stop must not panic
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()
	rl, _ := newTestLimiter(t, 60, 1)
	handler := RateLimitMiddleware(rl, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	codes := make([]int, 2)
	for i := range codes {
		req := httptest.NewRequest("GET", "/v1/mul", http.NoBody)
		req.RemoteAddr = "192.0.2.7:5555"
		rec := httptest.NewRecorder()
		handler(rec, req)
		codes[i] = rec.Code
		if i == 1 && rec.Header().Get("Retry-After") != "1" {
			t.Errorf("Retry-After = %q, want 1", rec.Header().Get("Retry-After"))
		}
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 429]", codes)
	}
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		remote string
		header map[string]string
		want   string
	}{
		{"remote ipv4", "192.0.2.1:1234", nil, "192.0.2.1"},
		{"remote ipv6", "[2001:db8::1]:80", nil, "2001:db8::1"},
		{"no port", "192.0.2.9", nil, "192.0.2.9"},
		{"forwarded first hop", "10.0.0.1:1", map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"}, "203.0.113.5"},
		{"real ip", "10.0.0.1:1", map[string]string{"X-Real-IP": " 203.0.113.6 "}, "203.0.113.6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("GET", "/", http.NoBody)
			req.RemoteAddr = tt.remote
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
