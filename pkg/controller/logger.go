package controller

import (
	"context"
	"linkify/pkg/logger"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// accessRecorder captures the status code and body size written by the
// downstream handler for the access log.
type accessRecorder struct {
	http.ResponseWriter

	status int
	size   int
}

func (rec *accessRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *accessRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.size += n

	return n, err //nolint: wrapcheck
}

// GetClientIP returns the address of the visitor behind r. The first
// X-Forwarded-For entry wins, then X-Real-IP, then the connection address.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

// CtxKey is the type of the context keys set by this package.
type CtxKey string

const (
	// RequestIDKey is the context key under which the current request ID is stored.
	RequestIDKey CtxKey = "RequestID"
)

// RequestID returns the ID WithLogger assigned to the request behind ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)

	return id
}

// accessLevel maps a response status to the level of its access log line.
func accessLevel(status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// WithLogger assigns every request an ID, taken from X-Request-Id when the
// caller sent one, echoes it on the response and scopes the context logger to
// it. One access log line is written per request once the handler returns.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx = context.WithValue(ctx, RequestIDKey, requestID)
		w.Header().Set(RequestIDHeader, requestID)

		ctx = logger.WithFields(ctx, zap.String(string(RequestIDKey), requestID))
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			ctx = logger.WithFields(ctx, zap.String("trace_id", sc.TraceID().String()))
		}

		start := time.Now()
		rec := &accessRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Get(ctx).Log(accessLevel(rec.status), "Access log",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.Int("status_code", rec.status),
			zap.Int("response_bytes", rec.size),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("referer", r.Referer()),
		)
	})
}
