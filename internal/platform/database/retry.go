package database

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/home-service/internal/platform/config"
	"github.com/jsamuelsen11/home-service/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// connect pings the database until it answers, backing off exponentially
// between attempts. Context cancellation stops the loop immediately.
func (d *DB) connect(ctx context.Context, cfg config.RetryConfig) error {
	if cfg.MaxAttempts <= 0 {
		return fmt.Errorf("database: connect_retry.max_attempts must be >= 1, got %d", cfg.MaxAttempts)
	}

	var lastErr error
	for attempt := range cfg.MaxAttempts {
		if attempt > 0 {
			if err := d.waitForRetry(ctx, cfg, attempt, lastErr); err != nil {
				return err
			}
		}

		lastErr = d.x.PingContext(ctx)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
			return lastErr
		}
	}

	return fmt.Errorf("database unreachable after %d attempts: %w", cfg.MaxAttempts, lastErr)
}

func (d *DB) waitForRetry(ctx context.Context, cfg config.RetryConfig, attempt int, lastErr error) error {
	delay := backoff(attempt, cfg)

	logging.FromContext(ctx).WarnContext(ctx, "retrying database connection",
		slog.String("operation", "database.connect"),
		slog.String("driver", d.driver),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", cfg.MaxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff returns the delay before retry number attempt (1 is the first
// retry): initial * multiplier^(attempt-1), capped at the max interval, then
// jittered by ±25%.
func backoff(attempt int, cfg config.RetryConfig) time.Duration {
	delay := float64(cfg.InitialInterval) * math.Pow(cfg.Multiplier, float64(attempt-1))

	if cfg.MaxInterval > 0 && delay > float64(cfg.MaxInterval) {
		delay = float64(cfg.MaxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}
