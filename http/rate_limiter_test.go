package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_RefillsAfterWindow(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()
	rl.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if ok, _ := rl.Allow("1.2.3.4"); !ok {
			t.Fatalf("request %d should be allowed", i)
		}
	}

	now = now.Add(20 * time.Second)
	ok, wait := rl.Allow("1.2.3.4")
	if ok {
		t.Fatalf("third request should be limited")
	}
	if wait != 40*time.Second {
		t.Errorf("expected to wait 40s, got %v", wait)
	}

	if ok, _ := rl.Allow("5.6.7.8"); !ok {
		t.Errorf("other clients have their own bucket")
	}

	now = now.Add(time.Minute)
	if ok, _ := rl.Allow("1.2.3.4"); !ok {
		t.Errorf("expected a refill after the window")
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(2 * time.Hour)
	rl.cleanup()

	if len(rl.clients) != 0 {
		t.Errorf("expected stale buckets to be removed")
	}
}

func TestRateLimiter_DisabledAndStopTwice(t *testing.T) {
	rl := NewRateLimiter(0, time.Minute)
	for i := 0; i < 100; i++ {
		if ok, _ := rl.Allow("a"); !ok {
			t.Fatalf("a zero capacity disables limiting")
		}
	}
	rl.Stop()
	rl.Stop()
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if seen != "abc" || w.Header().Get(RequestIDHeader) != "abc" {
		t.Errorf("expected the caller's id to be kept, got %q", seen)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(seen) != 36 || w.Header().Get(RequestIDHeader) != seen {
		t.Errorf("expected a generated uuid, got %q", seen)
	}

	if RequestIDFrom(context.Background()) != "" {
		t.Errorf("expected no id outside a request")
	}
}
