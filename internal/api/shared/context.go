package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/quizgen-api/internal/platform/logger"
)

// SetTraceID adds a fresh trace ID to the context. Loggers built by the
// logger package pick it up automatically.
func SetTraceID(ctx context.Context) context.Context {
	return logger.WithTraceID(ctx, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	return logger.TraceID(ctx)
}
