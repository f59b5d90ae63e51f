package logger

import (
	"context"
	"log/slog"

	"github.com/phrazzld/quizgen-api/internal/redact"
)

type traceIDKey struct{}

// WithTraceID returns a context carrying traceID. Records logged with that
// context include it as the trace_id attribute.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceID returns the trace ID stored in ctx, or "" if there is none.
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}

// ContextHandler is a slog.Handler that adds the request trace ID to every
// record and redacts error attribute values before they are written.
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler wraps handler.
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{handler: handler}
}

// Enabled implements the slog.Handler interface.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		redacted = append(redacted, redactAttr(a))
	}
	return &ContextHandler{handler: h.handler.WithAttrs(redacted)}
}

// WithGroup implements the slog.Handler interface.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

// Handle implements the slog.Handler interface.
func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	enhanced := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(a slog.Attr) bool {
		enhanced.AddAttrs(redactAttr(a))
		return true
	})

	if traceID := TraceID(ctx); traceID != "" {
		enhanced.AddAttrs(slog.String("trace_id", traceID))
	}

	return h.handler.Handle(ctx, enhanced)
}

// redactAttr replaces error values with their redacted text.
func redactAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			return slog.String(a.Key, redact.Error(err))
		}
	case slog.KindGroup:
		group := a.Value.Group()
		redacted := make([]any, 0, len(group))
		for _, ga := range group {
			redacted = append(redacted, redactAttr(ga))
		}
		return slog.Group(a.Key, redacted...)
	}

	return a
}
