package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/boardgate/trello-mcp-go/pkg/gateway"
	"github.com/boardgate/trello-mcp-go/pkg/tools"
	"github.com/boardgate/trello-mcp-go/pkg/trello"
)

type config struct {
	trelloAPIKey string
	trelloToken  string

	readOnlyKeys  []string
	readWriteKeys []string

	host             string
	port             string
	useClaudeApp     bool
	streamHeaderMode gateway.StreamHeaderMode
	logLevel         slog.Level
}

func loadConfig() config {
	cfg := config{
		trelloAPIKey: os.Getenv("TRELLO_API_KEY"),
		trelloToken:  os.Getenv("TRELLO_TOKEN"),
		host:         getenvDefault("MCP_SERVER_HOST", "0.0.0.0"),
		port:         getenvDefault("MCP_SERVER_PORT", "8000"),
		useClaudeApp: strings.EqualFold(getenvDefault("USE_CLAUDE_APP", "true"), "true"),
	}

	cfg.readOnlyKeys = gateway.ParseCredentialList(os.Getenv("MCP_READ_ONLY_API_KEYS"))
	cfg.readWriteKeys = gateway.ParseCredentialList(os.Getenv("MCP_READ_WRITE_API_KEYS"))
	if len(cfg.readOnlyKeys) == 0 && len(cfg.readWriteKeys) == 0 {
		// Legacy single-list configuration grants read-write membership only.
		cfg.readWriteKeys = gateway.ParseCredentialList(os.Getenv("MCP_API_KEYS"))
	}

	if strings.EqualFold(os.Getenv("MCP_STREAM_HEADER_MODE"), "strict") {
		cfg.streamHeaderMode = gateway.StreamHeadersStrict
	} else {
		cfg.streamHeaderMode = gateway.StreamHeadersPermissive
	}

	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		cfg.logLevel = slog.LevelDebug
	case "warn":
		cfg.logLevel = slog.LevelWarn
	case "error":
		cfg.logLevel = slog.LevelError
	default:
		cfg.logLevel = slog.LevelInfo
	}

	return cfg
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel}))
	slog.SetDefault(logger)

	if cfg.trelloAPIKey == "" || cfg.trelloToken == "" {
		logger.Error("TRELLO_API_KEY and TRELLO_TOKEN must be set in environment variables")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := trello.NewClient(cfg.trelloAPIKey, cfg.trelloToken, &trello.ClientOptions{Logger: logger})
	if err != nil {
		logger.Error("failed to build Trello client", "error", err)
		os.Exit(1)
	}

	gw, err := gateway.New(&gateway.Options{
		Addr:             net.JoinHostPort(cfg.host, cfg.port),
		ReadOnlyKeys:     cfg.readOnlyKeys,
		ReadWriteKeys:    cfg.readWriteKeys,
		StreamHeaderMode: cfg.streamHeaderMode,
		Logger:           logger,
	})
	if err != nil {
		logger.Error("failed to build gateway", "error", err)
		os.Exit(1)
	}

	tools.Register(gw.Server(), trello.NewServices(client))

	if cfg.useClaudeApp {
		logger.Info("starting Trello MCP server on stdio")
		err = gw.RunStdio(ctx)
	} else {
		logger.Info("starting Trello MCP server",
			"addr", net.JoinHostPort(cfg.host, cfg.port), "path", "/mcp")
		err = gw.ListenAndServe(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("shutting down")
}
