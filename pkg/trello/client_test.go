package trello

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewClientRequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := NewClient("", "tok", nil)
	require.Error(t, err)
	_, err = NewClient("key", "", nil)
	require.Error(t, err)
	_, err = NewClient("key", "tok", nil)
	require.NoError(t, err)
}

func TestClientSendsCredentialsAsQueryParams(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "test-token", r.URL.Query().Get("token"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"id":"b1","name":"Planning"}`))
	}))
	defer srv.Close()

	client, err := NewClient("test-key", "test-token", &ClientOptions{
		BaseURL: srv.URL,
		Logger:  testLogger(),
	})
	require.NoError(t, err)

	board, err := (&BoardService{client: client}).Get(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "Planning", board.Name)
}

func TestClientPreservesCallerQueryParams(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "starred", r.URL.Query().Get("filter"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, err := NewClient("test-key", "test-token", &ClientOptions{
		BaseURL: srv.URL,
		Logger:  testLogger(),
	})
	require.NoError(t, err)

	_, err = (&BoardService{client: client}).List(context.Background(), "starred")
	require.NoError(t, err)
}

func TestClientReturnsAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("board not found"))
	}))
	defer srv.Close()

	client, err := NewClient("k", "t", &ClientOptions{BaseURL: srv.URL, Logger: testLogger()})
	require.NoError(t, err)

	_, err = (&BoardService{client: client}).Get(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "board not found", apiErr.Body)
}

func TestClientRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"id":"b1"}`))
	}))
	defer srv.Close()

	client, err := NewClient("k", "t", &ClientOptions{
		BaseURL:    srv.URL,
		MaxRetries: 2,
		Logger:     testLogger(),
	})
	require.NoError(t, err)

	board, err := (&BoardService{client: client}).Get(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", board.ID)
	assert.Equal(t, int32(2), attempts.Load())
}
