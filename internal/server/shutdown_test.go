package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestShutdownClosersLIFO(t *testing.T) {
	sm := NewShutdownManager(ShutdownConfig{})

	var order []string
	for _, name := range []string{"store", "http", "grpc"} {
		name := name
		sm.RegisterCloser(CloserFunc(func() error {
			order = append(order, name)
			return nil
		}))
	}

	if err := sm.Shutdown(context.Background(), "test"); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	want := []string{"grpc", "http", "store"}
	if len(order) != len(want) {
		t.Fatalf("expected %d closers, got %v", len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected close order %v, got %v", want, order)
		}
	}
}

func TestShutdownIdempotent(t *testing.T) {
	sm := NewShutdownManager(ShutdownConfig{})

	calls := 0
	sm.RegisterCloser(CloserFunc(func() error {
		calls++
		return nil
	}))

	if err := sm.Shutdown(context.Background(), "first"); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if err := sm.Shutdown(context.Background(), "second"); err != nil {
		t.Fatalf("second Shutdown failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected closer to run once, ran %d times", calls)
	}
	if !sm.IsShuttingDown() {
		t.Error("IsShuttingDown should report true after Shutdown")
	}
}

func TestShutdownMiddlewareRejectsDuringShutdown(t *testing.T) {
	sm := NewShutdownManager(ShutdownConfig{})
	handler := ShutdownMiddleware(sm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 before shutdown, got %d", rr.Code)
	}

	if err := sm.Shutdown(context.Background(), "test"); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 during shutdown, got %d", rr.Code)
	}
	if rr.Header().Get("Connection") != "close" {
		t.Error("rejected response should ask the client to close the connection")
	}
}

func TestShutdownDrainsInFlight(t *testing.T) {
	sm := NewShutdownManager(ShutdownConfig{
		ShutdownTimeout: 2 * time.Second,
		DrainTimeout:    time.Second,
	})

	if !sm.TrackRequest() {
		t.Fatal("TrackRequest should succeed before shutdown")
	}
	go func() {
		time.Sleep(200 * time.Millisecond)
		sm.UntrackRequest()
	}()

	start := time.Now()
	if err := sm.Shutdown(context.Background(), "test"); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Errorf("Shutdown returned before the in-flight request finished (%v)", elapsed)
	}
	if sm.InFlightCount() != 0 {
		t.Errorf("expected 0 in-flight, got %d", sm.InFlightCount())
	}
}

func TestGracefulHTTPServerClosedByManager(t *testing.T) {
	sm := NewShutdownManager(ShutdownConfig{})
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}
	gs := NewGracefulHTTPServer(srv, sm)

	done := make(chan error, 1)
	go func() { done <- gs.ListenAndServe() }()

	// Give the server a moment to start listening.
	time.Sleep(50 * time.Millisecond)

	if err := sm.Shutdown(context.Background(), "test"); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after shutdown")
	}
}
