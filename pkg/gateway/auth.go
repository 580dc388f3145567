package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// Paths reachable without authentication regardless of configuration.
var authExemptPaths = map[string]struct{}{
	"/health":  {},
	"/healthz": {},
}

type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: code, Message: message})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. A missing or malformed header yields the empty string.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// tokenPrefix returns a short non-identifying prefix of a token for
// diagnostics. Full tokens never reach the logs.
func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "..."
}

// newAuthMiddleware resolves a role from the request's bearer credential and
// publishes it into the request context before invoking next. Pre-flight
// OPTIONS requests and health-check paths bypass authentication entirely.
// When no credentials are configured, every request resolves to RoleReadWrite
// (deliberate open-access fallback, logged at info level once per request).
func newAuthMiddleware(store *CredentialStore, logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if _, exempt := authExemptPaths[r.URL.Path]; exempt {
			next.ServeHTTP(w, r)
			return
		}

		if store.Empty() {
			logger.Info("no API keys configured, granting read-write access", "path", r.URL.Path)
			next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), RoleReadWrite)))
			return
		}

		token := bearerToken(r)
		role, ok := store.Classify(token)
		if !ok {
			logger.Warn("rejected unauthenticated request",
				"path", r.URL.Path,
				"token_prefix", tokenPrefix(token),
			)
			writeJSONError(w, http.StatusUnauthorized, "unauthorized",
				"missing or invalid bearer token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
	})
}
