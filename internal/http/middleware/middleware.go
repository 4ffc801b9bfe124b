// Package middleware carries the request-scoped concerns shared by all
// routes: request IDs, structured request logging and HTTP metrics.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"livescore-service/internal/logging"
	"livescore-service/internal/metrics"
)

type requestIDKey struct{}

// RequestIDFromContext returns the request ID stored by Logging, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}
	return ""
}

// Logging wraps the handler with request ID propagation and per-request
// structured logging. An inbound X-Request-ID is honored; otherwise a
// fresh UUID is issued and echoed back.
func Logging(baseLogger *slog.Logger, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)

		clientIP := r.RemoteAddr
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			clientIP = forwarded
		}

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("client_ip", clientIP),
		)

		ctx := logging.WithLogger(r.Context(), logger)
		ctx = context.WithValue(ctx, requestIDKey{}, reqID)
		r = r.WithContext(ctx)
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
	})
}

// Metrics records request counts and latency per normalized route.
func Metrics(recorder *metrics.Recorder, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)
		recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), ww.status, time.Since(start))
	})
}

// normalizePath collapses per-match URLs into one label so the metric
// cardinality stays bounded.
func normalizePath(path string) string {
	if strings.HasPrefix(path, "/api/matches/") {
		return "/api/matches/{id}"
	}
	if strings.HasPrefix(path, "/api/leagues/") && strings.HasSuffix(path, "/standings") {
		return "/api/leagues/{id}/standings"
	}
	return path
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
