package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/touchline/touchline/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.GRPC.Enabled = false

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	return a
}

// Stop must complete promptly: the shutdown manager closes the servers
// and the store, and every service goroutine exits. A Stop that only
// returns after the full shutdown timeout means a goroutine is stuck.
func TestAppStartStop(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	if err := a.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	handler := a.apiServer.Handler
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/customers", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 while running, got %d", rr.Code)
	}

	done := make(chan error, 1)
	go func() { done <- a.Stop(ctx) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Stop failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return before the timeout")
	}

	if !a.shutdown.IsShuttingDown() {
		t.Error("shutdown manager not marked as shutting down after Stop")
	}

	// New requests are rejected once shutdown has begun.
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/customers", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 after Stop, got %d", rr.Code)
	}
}

func TestAppStopIdempotent(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	if err := a.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := a.Stop(ctx); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := a.Stop(ctx); err != nil {
		t.Fatalf("second Stop failed: %v", err)
	}
}

func TestAppStartTwice(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	if err := a.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer a.Stop(ctx)

	if err := a.Start(ctx); err == nil {
		t.Error("expected error starting an already-running app")
	}
}
