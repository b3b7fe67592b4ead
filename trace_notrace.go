//go:build notrace

package marked

import (
	"context"
	"log/slog"
)

// No-op implementations when built with -tags notrace

// TracingEnabled is false when built with -tags notrace.
const TracingEnabled = false

var nullLogger = slog.New(slog.DiscardHandler)

// WithTraceLogger returns ctx unchanged in notrace builds.
func WithTraceLogger(ctx context.Context, _ *slog.Logger) context.Context {
	return ctx
}

func getTraceLogFromContext(context.Context) *slog.Logger {
	return nullLogger
}
