// Package logging provides structured logging primitives shared across the
// service: request-id propagation, module tagging, and a slog handler that
// enriches records from the request context.
package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Module identifies the logical subsystem emitting a log record.
type Module string

// Environment selects log output conventions.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// ServiceInfo describes the running binary for log and trace resources.
type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	moduleKey    contextKey = "module"
)

// WithRequestID stores a request id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request id stored in the context, or
// an empty string if none is present.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ValidateAndExtractRequestID returns the given request id if it is a valid
// UUID, otherwise a freshly generated one. Downstream services always receive
// a usable id.
func ValidateAndExtractRequestID(requestID string) string {
	if _, err := uuid.Parse(requestID); err != nil {
		return uuid.NewString()
	}
	return requestID
}

// WithModule tags the context with the subsystem emitting subsequent logs.
func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

// ModuleFromContext returns the module stored in the context, or the given
// fallback.
func ModuleFromContext(ctx context.Context, fallback Module) Module {
	if v, ok := ctx.Value(moduleKey).(Module); ok {
		return v
	}
	return fallback
}

// HandlerConfig configures NewHandler.
type HandlerConfig struct {
	Service       ServiceInfo
	Environment   Environment
	GCPProjectID  string
	DefaultModule Module
	Level         slog.Leveler
}

// NewHandler builds the slog handler used as the process default. Output is
// JSON with service metadata attached, and each record is enriched with the
// request id, module, and trace correlation attributes from the context.
func NewHandler(cfg HandlerConfig) slog.Handler {
	level := cfg.Level
	if level == nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Environment == EnvProd {
		// Cloud Logging severity mapping.
		opts.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.LevelKey:
				a.Key = "severity"
			case slog.MessageKey:
				a.Key = "message"
			}
			return a
		}
	}

	var base slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	base = base.WithAttrs([]slog.Attr{
		slog.String("service", cfg.Service.Name),
		slog.String("version", cfg.Service.Version),
	})

	return &contextHandler{
		inner:         base,
		gcpProjectID:  cfg.GCPProjectID,
		defaultModule: cfg.DefaultModule,
	}
}

type contextHandler struct {
	inner         slog.Handler
	gcpProjectID  string
	defaultModule Module
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		record.AddAttrs(slog.String("request_id", requestID))
	}
	if module := ModuleFromContext(ctx, h.defaultModule); module != "" {
		record.AddAttrs(slog.String("module", string(module)))
	}
	if attrs := gcpTraceAttrs(ctx, h.gcpProjectID); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}
	return h.inner.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{
		inner:         h.inner.WithAttrs(attrs),
		gcpProjectID:  h.gcpProjectID,
		defaultModule: h.defaultModule,
	}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{
		inner:         h.inner.WithGroup(name),
		gcpProjectID:  h.gcpProjectID,
		defaultModule: h.defaultModule,
	}
}
