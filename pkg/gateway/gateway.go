package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"
)

// Gateway exposes an MCP server over a Streamable HTTP endpoint behind the
// authentication and stream-integrity middleware pipeline. Requests flow
// CORS -> auth -> stream-integrity -> session gate -> MCP dispatch; each
// stage completes or short-circuits before the next begins.
type Gateway struct {
	opts  Options
	store *CredentialStore

	server        *mcp.Server
	streamHandler *mcp.StreamableHTTPHandler
	lifecycle     *SessionLifecycle
	mux           *http.ServeMux
	httpHandler   http.Handler

	httpServerMu sync.Mutex
	httpServer   *http.Server
}

// New builds a Gateway and assembles its middleware pipeline. Tools are
// registered afterwards against Server().
func New(opts *Options) (*Gateway, error) {
	options := opts.withDefaults()
	g := &Gateway{
		opts:      options,
		store:     NewCredentialStore(options.ReadOnlyKeys, options.ReadWriteKeys),
		lifecycle: NewSessionLifecycle(options.Logger),
	}

	if g.store.Empty() {
		options.Logger.Info("no API keys configured, server runs with open read-write access")
	} else {
		ro, rw := g.store.Counts()
		options.Logger.Info("API key authentication enabled", "read_only_keys", ro, "read_write_keys", rw)
	}

	g.server = mcp.NewServer(options.Implementation, nil)
	g.streamHandler = mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return g.server
	}, &options.Streamable)
	g.mux = http.NewServeMux()
	g.mountRoutes()

	// Permissive CORS by design: the server fronts its own auth layer instead
	// of relying on browser same-origin policy. AllowOriginFunc echoes the
	// caller's origin so credentialed requests remain possible.
	corsHandler := cors.New(cors.Options{
		AllowOriginFunc:  func(string) bool { return true },
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	g.httpHandler = corsHandler.Handler(
		newAuthMiddleware(g.store, options.Logger,
			newStreamIntegrityMiddleware(options.StreamHeaderMode, g.mux)))

	return g, nil
}

func (g *Gateway) mountRoutes() {
	path := g.opts.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	gated := g.lifecycle.Gate(g.streamHandler)
	g.mux.Handle(path, gated)
	if !strings.HasSuffix(path, "/") {
		g.mux.Handle(path+"/", gated)
	}
	health := healthHandler()
	g.mux.Handle("/health", health)
	g.mux.Handle("/healthz", health)
}

// Server exposes the underlying MCP server for tool registration.
func (g *Gateway) Server() *mcp.Server { return g.server }

// Handler exposes the fully wrapped HTTP handler.
func (g *Gateway) Handler() http.Handler { return g.httpHandler }

// ServeMux exposes the route table so consumers can add custom routes. Routes
// registered here sit behind the auth exemption rules like any other path.
func (g *Gateway) ServeMux() *http.ServeMux { return g.mux }

// Lifecycle exposes the session lifecycle for callers that serve the handler
// through their own http.Server instead of ListenAndServe.
func (g *Gateway) Lifecycle() *SessionLifecycle { return g.lifecycle }

// RunStdio serves the MCP server over stdio until the context is cancelled.
// Stdio connections are launched locally by the client process, so the run
// context is bound to RoleReadWrite up front; no HTTP middleware applies.
func (g *Gateway) RunStdio(ctx context.Context) error {
	return g.server.Run(WithRole(ctx, RoleReadWrite), &mcp.StdioTransport{})
}

// ListenAndServe runs an HTTP server until the provided context is cancelled
// or the server stops. The session subsystem is started before the listener
// accepts connections and torn down after the listener stops, regardless of
// how serving ends.
func (g *Gateway) ListenAndServe(ctx context.Context) error {
	return g.lifecycle.Run(ctx, g.serve)
}

func (g *Gateway) serve(ctx context.Context) error {
	g.httpServerMu.Lock()
	if g.httpServer != nil {
		srv := g.httpServer
		g.httpServerMu.Unlock()
		return fmt.Errorf("gateway: server already running on %s", srv.Addr)
	}
	srv := &http.Server{Addr: g.opts.Addr, Handler: g.Handler()}
	g.httpServer = srv
	g.httpServerMu.Unlock()
	defer func() {
		g.httpServerMu.Lock()
		if g.httpServer == srv {
			g.httpServer = nil
		}
		g.httpServerMu.Unlock()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), g.opts.ShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Shutdown stops the embedded HTTP server if it is running.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.httpServerMu.Lock()
	srv := g.httpServer
	g.httpServer = nil
	g.httpServerMu.Unlock()
	if srv == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return srv.Shutdown(ctx)
}
