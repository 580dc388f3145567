package gateway

import (
	"net/http"
	"strings"
)

// StreamHeaderMode selects how aggressively anti-buffering headers are
// applied to outbound responses.
type StreamHeaderMode int

const (
	// StreamHeadersPermissive injects the anti-buffering header set on every
	// response regardless of content type. Recommended default for a
	// streaming-first transport; non-streaming responses carry a few harmless
	// extra headers.
	StreamHeadersPermissive StreamHeaderMode = iota
	// StreamHeadersStrict injects the header set only when the response
	// declares an event-stream content type.
	StreamHeadersStrict
)

// The header set that defeats intermediary buffering for streaming responses:
// proxy buffering off, caching off, persistent connection, no content
// re-encoding, no content-type sniffing.
var antiBufferingHeaders = []struct{ key, value string }{
	{"X-Accel-Buffering", "no"},
	{"Cache-Control", "no-cache"},
	{"Connection", "keep-alive"},
	{"Content-Encoding", "identity"},
	{"X-Content-Type-Options", "nosniff"},
}

// newStreamIntegrityMiddleware wraps the response writer so the
// anti-buffering headers are merged in immediately before the response head
// is sent. The merge is additive: headers already set by the handler are
// never replaced, and repeated wrapping does not duplicate values.
func newStreamIntegrityMiddleware(mode StreamHeaderMode, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&streamWriter{ResponseWriter: w, mode: mode}, r)
	})
}

type streamWriter struct {
	http.ResponseWriter
	mode        StreamHeaderMode
	wroteHeader bool
}

func (w *streamWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.inject()
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *streamWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *streamWriter) inject() {
	header := w.Header()
	if w.mode == StreamHeadersStrict {
		ct := header.Get("Content-Type")
		if !strings.HasPrefix(ct, "text/event-stream") {
			return
		}
	}
	for _, h := range antiBufferingHeaders {
		if header.Get(h.key) == "" {
			header.Set(h.key, h.value)
		}
	}
}

// Flush forwards to the underlying writer so the streamable transport can
// push individual events through without buffering inside the server.
func (w *streamWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap supports http.ResponseController.
func (w *streamWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
