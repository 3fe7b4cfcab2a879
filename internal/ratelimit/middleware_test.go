package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

func doRequest(t *testing.T, h echo.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/posts/1", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestMiddleware_EleventhRequestRejected(t *testing.T) {
	store := NewStore(rate.Limit(10.0/60.0), 10)
	stats := NewMemoryStats()

	calls := 0
	h := Middleware(store, stats)(func(c echo.Context) error {
		calls++
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		rec := doRequest(t, h, "10.0.0.1:1234")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := doRequest(t, h, "10.0.0.1:1234")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on the 11th request, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Rate limit exceeded") {
		t.Fatalf("expected the fixed rate-limit body, got %s", rec.Body.String())
	}
	if calls != 10 {
		t.Fatalf("expected handler to run 10 times, got %d", calls)
	}

	total := stats.Total()
	if total.Allowed != 10 || total.Denied != 1 {
		t.Fatalf("expected stats allowed=10 denied=1, got %+v", total)
	}
}

func TestMiddleware_DistinctClientsUnaffected(t *testing.T) {
	store := NewStore(rate.Limit(0.001), 1)

	h := Middleware(store, nil)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if rec := doRequest(t, h, "10.0.0.1:1234"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for first client, got %d", rec.Code)
	}
	if rec := doRequest(t, h, "10.0.0.1:9999"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected same host on another port to share the limiter, got %d", rec.Code)
	}
	if rec := doRequest(t, h, "10.0.0.2:1234"); rec.Code != http.StatusOK {
		t.Fatalf("expected a different client to have its own limiter, got %d", rec.Code)
	}
}

func TestClientKey_UsesRemoteAddrHost(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.9:5555"

	if got := ClientKey(r); got != "10.0.0.9" {
		t.Fatalf("expected remote host, got %q", got)
	}
}

func TestClientKey_FallsBackToRawAddr(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "badaddr"

	if got := ClientKey(r); got != "badaddr" {
		t.Fatalf("expected raw RemoteAddr fallback, got %q", got)
	}
}
