package app

import (
	"log/slog"
	"time"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixedClock() Option {
	return WithClock(func() time.Time { return fixedNow })
}

func ptr[T any](v T) *T { return &v }
