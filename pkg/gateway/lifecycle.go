package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// SessionLifecycle bounds the lifetime of the streamable session subsystem.
// It is entered exactly once at startup and exited exactly once at shutdown;
// while it is not running, gated handlers refuse new sessions instead of
// routing requests into a dead subsystem. Health checks stay reachable
// because they are mounted outside the gate.
type SessionLifecycle struct {
	logger  *slog.Logger
	running atomic.Bool
}

// NewSessionLifecycle returns a stopped lifecycle.
func NewSessionLifecycle(logger *slog.Logger) *SessionLifecycle {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionLifecycle{logger: logger}
}

// Run marks the session subsystem as started, invokes fn, and guarantees the
// subsystem is marked stopped when fn returns, whether it ends normally or
// with an error.
func (l *SessionLifecycle) Run(ctx context.Context, fn func(context.Context) error) error {
	if !l.running.CompareAndSwap(false, true) {
		return errors.New("gateway: session subsystem already running")
	}
	l.logger.Info("session subsystem started")
	defer func() {
		l.running.Store(false)
		l.logger.Info("session subsystem stopped")
	}()
	return fn(ctx)
}

// Running reports whether the subsystem is currently inside Run.
func (l *SessionLifecycle) Running() bool { return l.running.Load() }

// Gate wraps a handler so requests are only forwarded while the subsystem is
// running. Outside that window callers receive a structured 503 rather than
// a crash or a hung session.
func (l *SessionLifecycle) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Running() {
			writeJSONError(w, http.StatusServiceUnavailable, "unavailable",
				"session subsystem is not running")
			return
		}
		next.ServeHTTP(w, r)
	})
}
