package trello

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultBaseURL is the production Trello REST endpoint.
const DefaultBaseURL = "https://api.trello.com/1"

// APIError is returned when Trello answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trello: API error %d: %s", e.StatusCode, e.Body)
}

// ClientOptions tweak Client construction.
type ClientOptions struct {
	// BaseURL overrides the Trello API endpoint, used by tests.
	BaseURL string
	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client
	// MaxRetries bounds retry attempts for transient failures. Defaults to 3.
	MaxRetries int
	// Logger receives retry diagnostics.
	Logger *slog.Logger
}

// Client issues authenticated requests against the Trello REST API.
type Client struct {
	baseURL string
	key     string
	token   string
	http    *retryablehttp.Client
}

// NewClient builds a Client from the Trello API key and member token.
func NewClient(key, token string, opts *ClientOptions) (*Client, error) {
	if key == "" || token == "" {
		return nil, fmt.Errorf("trello: API key and token are required")
	}
	if opts == nil {
		opts = &ClientOptions{}
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	if opts.MaxRetries > 0 {
		rc.RetryMax = opts.MaxRetries
	}
	if opts.HTTPClient != nil {
		rc.HTTPClient = opts.HTTPClient
	}
	rc.Logger = &retryLogger{logger: logger}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		key:     key,
		token:   token,
		http:    rc,
	}, nil
}

// get issues a GET and decodes the JSON response into out when non-nil.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint, err := c.buildURL(path, query)
	if err != nil {
		return err
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("trello: encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("trello: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("trello: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("trello: decode response: %w", err)
	}
	return nil
}

// buildURL appends the key/token credentials Trello expects as query
// parameters to every request.
func (c *Client) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("trello: invalid path %q: %w", path, err)
	}
	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("key", c.key)
	q.Set("token", c.token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// retryLogger adapts retryablehttp's leveled logging onto slog.
type retryLogger struct {
	logger *slog.Logger
}

func (l *retryLogger) Error(msg string, kv ...any) { l.logger.Error(msg, kv...) }
func (l *retryLogger) Warn(msg string, kv ...any)  { l.logger.Warn(msg, kv...) }
func (l *retryLogger) Info(msg string, kv ...any)  { l.logger.Debug(msg, kv...) }
func (l *retryLogger) Debug(msg string, kv ...any) { l.logger.Debug(msg, kv...) }

var _ retryablehttp.LeveledLogger = (*retryLogger)(nil)
