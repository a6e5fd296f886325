// Package middleware wraps HTTP handlers with request IDs, logging and
// metrics.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ThantZinWinnnnn/team-task/internal/http/requestutil"
	"github.com/ThantZinWinnnnn/team-task/internal/logging"
	"github.com/ThantZinWinnnnn/team-task/internal/metrics"
)

// Logging wraps the handler with request logging, request ID propagation
// and per-request metrics. The enriched logger is stored on the request
// context for handlers to pick up.
func Logging(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get("X-Request-ID"))
		w.Header().Set("X-Request-ID", reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)

		ctx := logging.WithLogger(r.Context(), logger)
		ctx = withRequestID(ctx, reqID)
		r = r.WithContext(ctx)
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), ww.status, duration)

		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

type requestIDKey struct{}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext extracts the request ID stored by the logging middleware.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}
	return ""
}

// normalizePath collapses per-resource paths so metrics labels stay low
// cardinality.
func normalizePath(path string) string {
	switch {
	case path == "/health", path == "/ready", path == "/metrics",
		path == "/players", path == "/teams", path == "/session":
		return path
	case strings.HasPrefix(path, "/teams/"):
		if strings.Contains(path, "/players/") {
			return "/teams/:id/players/:playerId"
		}
		if strings.HasSuffix(path, "/players") {
			return "/teams/:id/players"
		}
		return "/teams/:id"
	default:
		return path
	}
}
