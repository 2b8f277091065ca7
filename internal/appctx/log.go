package appctx

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
)

type loggerContextKey struct{}

// WithLogger returns a copy of ctx carrying logger enriched with attrs
func WithLogger(ctx context.Context, logger *slog.Logger, attrs ...slog.Attr) context.Context {
	if len(attrs) > 0 {
		logger = logger.With(lo.ToAnySlice(attrs)...)
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// GetLogger retrieves the logger from the context. Falls back to slog.Default.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
