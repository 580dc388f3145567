package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLifecycleGateRefusesWhenStopped(t *testing.T) {
	t.Parallel()

	lc := NewSessionLifecycle(discardLogger())
	handler := lc.Gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("gated handler reached while stopped")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestLifecycleGatePassesWhileRunning(t *testing.T) {
	t.Parallel()

	lc := NewSessionLifecycle(discardLogger())
	handler := lc.Gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	err := lc.Run(context.Background(), func(context.Context) error {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestLifecycleStopsAfterRun(t *testing.T) {
	t.Parallel()

	lc := NewSessionLifecycle(discardLogger())

	if err := lc.Run(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if lc.Running() {
		t.Fatal("lifecycle still running after fn returned")
	}

	// An error inside fn must still release the subsystem.
	_ = lc.Run(context.Background(), func(context.Context) error {
		return context.DeadlineExceeded
	})
	if lc.Running() {
		t.Fatal("lifecycle still running after fn error")
	}
}

func TestLifecycleRejectsConcurrentRun(t *testing.T) {
	t.Parallel()

	lc := NewSessionLifecycle(discardLogger())
	err := lc.Run(context.Background(), func(ctx context.Context) error {
		return lc.Run(ctx, func(context.Context) error { return nil })
	})
	if err == nil {
		t.Fatal("nested Run succeeded, want error")
	}
}
