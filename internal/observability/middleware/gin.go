// Package middleware provides gin middleware for request logging, tracing,
// and metrics.
package middleware

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/stroma-app/care-engine/internal/observability/logging"
	"github.com/stroma-app/care-engine/internal/observability/metrics"
)

type GinConfig struct {
	// SkipPaths lists request paths excluded from logging and metrics,
	// typically health and metrics endpoints.
	SkipPaths []string
	Module    logging.Module
	// Worker marks requests as background-job invocations rather than
	// user-facing traffic; the span name then comes from JobNameResolver.
	Worker          bool
	TracerName      string
	JobNameResolver func(c *gin.Context) string
	HTTPMetrics     *metrics.HTTPMetrics
}

// Gin returns middleware that propagates the request id, starts a server
// span, writes an access log line, and records HTTP metrics.
func Gin(cfg GinConfig) gin.HandlerFunc {
	tracer := otel.Tracer(cfg.TracerName)
	propagator := otel.GetTextMapPropagator()

	return func(c *gin.Context) {
		if slices.Contains(cfg.SkipPaths, c.Request.URL.Path) {
			c.Next()
			return
		}

		requestID := logging.ValidateAndExtractRequestID(c.GetHeader("x-request-id"))
		c.Writer.Header().Set("x-request-id", requestID)

		ctx := propagator.Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx = logging.WithRequestID(ctx, requestID)
		ctx = logging.WithModule(ctx, cfg.Module)

		spanName := c.Request.Method + " " + c.FullPath()
		if cfg.Worker && cfg.JobNameResolver != nil {
			spanName = cfg.JobNameResolver(c)
		}

		ctx, span := tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", c.FullPath()),
				attribute.String("request_id", requestID),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.RequestStarted(ctx)
		}

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", status))
		}

		if cfg.HTTPMetrics != nil {
			cfg.HTTPMetrics.RequestFinished(ctx)
			cfg.HTTPMetrics.RecordRequest(ctx, c.Request.Method, c.FullPath(), status, duration)
		}

		logLevel := slog.LevelInfo
		if status >= 500 {
			logLevel = slog.LevelError
		} else if status >= 400 {
			logLevel = slog.LevelWarn
		}

		slog.Default().Log(ctx, logLevel, "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", duration),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// PanicRecoveryGin recovers from handler panics, records the panic on the
// active span, and responds with a 500.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				ctx := c.Request.Context()
				span := trace.SpanFromContext(ctx)
				span.RecordError(fmt.Errorf("panic: %v", r))
				span.SetStatus(codes.Error, "panic")

				slog.ErrorContext(ctx, "panic recovered",
					slog.String("panic", fmt.Sprintf("%v", r)),
					slog.String("path", c.Request.URL.Path),
				)

				c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
