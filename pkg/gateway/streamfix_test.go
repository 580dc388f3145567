package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func antiBufferingHeaderKeys() []string {
	keys := make([]string, 0, len(antiBufferingHeaders))
	for _, h := range antiBufferingHeaders {
		keys = append(keys, h.key)
	}
	return keys
}

func TestStreamHeadersStrictInjectsForEventStream(t *testing.T) {
	t.Parallel()

	handler := newStreamIntegrityMiddleware(StreamHeadersStrict,
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("data: hello\n\n"))
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))

	header := rec.Result().Header
	for _, h := range antiBufferingHeaders {
		if got := header.Get(h.key); got != h.value {
			t.Fatalf("header %s = %q, want %q", h.key, got, h.value)
		}
	}
}

func TestStreamHeadersStrictSkipsNonStreaming(t *testing.T) {
	t.Parallel()

	handler := newStreamIntegrityMiddleware(StreamHeadersStrict,
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))

	header := rec.Result().Header
	if got := header.Get("X-Accel-Buffering"); got != "" {
		t.Fatalf("strict mode injected X-Accel-Buffering %q on a JSON response", got)
	}
}

func TestStreamHeadersPermissiveInjectsAlways(t *testing.T) {
	t.Parallel()

	handler := newStreamIntegrityMiddleware(StreamHeadersPermissive,
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			// Implicit WriteHeader via Write.
			_, _ = w.Write([]byte("{}"))
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))

	header := rec.Result().Header
	for _, h := range antiBufferingHeaders {
		if got := header.Get(h.key); got != h.value {
			t.Fatalf("header %s = %q, want %q", h.key, got, h.value)
		}
	}
}

// Wrapping the middleware twice, as a retry path might, must not duplicate
// any header value.
func TestStreamHeadersNoDuplicationWhenWrappedTwice(t *testing.T) {
	t.Parallel()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
	})
	handler := newStreamIntegrityMiddleware(StreamHeadersPermissive,
		newStreamIntegrityMiddleware(StreamHeadersPermissive, inner))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))

	header := rec.Result().Header
	for _, key := range antiBufferingHeaderKeys() {
		if values := header.Values(key); len(values) != 1 {
			t.Fatalf("header %s has %d values %v, want exactly 1", key, len(values), values)
		}
	}
}

// The merge is additive: a header already set by the handler is preserved.
func TestStreamHeadersPreserveExistingValues(t *testing.T) {
	t.Parallel()

	handler := newStreamIntegrityMiddleware(StreamHeadersPermissive,
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			w.WriteHeader(http.StatusOK)
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))

	if got := rec.Result().Header.Get("Cache-Control"); got != "no-store" {
		t.Fatalf("Cache-Control = %q, handler's value was replaced", got)
	}
}

func TestStreamWriterFlushPassthrough(t *testing.T) {
	t.Parallel()

	handler := newStreamIntegrityMiddleware(StreamHeadersPermissive,
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("data: x\n\n"))
			if f, ok := w.(http.Flusher); ok {
				f.Flush()
			} else {
				t.Error("wrapped writer does not expose http.Flusher")
			}
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))

	if !rec.Flushed {
		t.Fatal("flush did not reach the underlying writer")
	}
}
