// Package logging builds the process-wide slog loggers and carries
// request-scoped logging context.
package logging

import (
	"context"
	"log/slog"
	"os"

	"newsboard/internal/handler/http/requestid"
)

// NewLogger returns a JSON logger. LOG_LEVEL=debug lowers the level;
// source locations are attached when warnings are visible.
func NewLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel <= slog.LevelWarn,
	})
	return slog.New(handler)
}

// WithRequestID returns logger annotated with the request id from ctx,
// or logger unchanged when there is none.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}
