// Package logging builds the service's slog logger and carries a request
// scoped logger through context.Context.
//
// Services log through the context so request_id and correlation_id added by
// the HTTP middleware come along:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "could not store invitation",
//	    slog.Int64("cooperation_id", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

// New returns a logger writing to w.
//
// level is one of debug, info, warn or error (any case); anything else means
// info. format "text" selects the logfmt-style text handler, every other
// value selects JSON. Debug loggers also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a configured level name onto slog.Level.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	switch name := strings.ToUpper(strings.TrimSpace(level)); name {
	case "DEBUG", "INFO", "WARN", "ERROR":
		_ = lvl.UnmarshalText([]byte(name))
		return lvl
	}
	return slog.LevelInfo
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
