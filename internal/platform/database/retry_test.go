package database

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/home-service/internal/platform/config"
)

func TestBackoff(t *testing.T) {
	t.Parallel()

	cfg := config.RetryConfig{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2,
	}

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 100 * time.Millisecond},
		{attempt: 2, base: 200 * time.Millisecond},
		{attempt: 3, base: 400 * time.Millisecond},
		{attempt: 10, base: time.Second},
	}

	for _, tt := range tests {
		for range 20 {
			got := backoff(tt.attempt, cfg)
			assert.GreaterOrEqual(t, got, time.Duration(float64(tt.base)*0.75), "attempt %d", tt.attempt)
			assert.LessOrEqual(t, got, time.Duration(float64(tt.base)*1.25), "attempt %d", tt.attempt)
		}
	}
}

func TestSecureRandFloat64(t *testing.T) {
	t.Parallel()

	for range 100 {
		f := secureRandFloat64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func newPingDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	raw, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })

	db, err := New(sqlx.NewDb(raw, "sqlmock"), config.DriverSQLite, config.CircuitBreakerConfig{MaxFailures: 1},
		nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return db, mock
}

func TestConnect_RetriesUntilPingSucceeds(t *testing.T) {
	t.Parallel()

	db, mock := newPingDB(t)
	mock.ExpectPing().WillReturnError(errors.New("starting up"))
	mock.ExpectPing().WillReturnError(errors.New("starting up"))
	mock.ExpectPing()

	err := db.connect(context.Background(), config.RetryConfig{
		MaxAttempts:     3,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnect_GivesUp(t *testing.T) {
	t.Parallel()

	db, mock := newPingDB(t)
	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectPing().WillReturnError(errors.New("refused"))

	err := db.connect(context.Background(), config.RetryConfig{
		MaxAttempts:     2,
		InitialInterval: time.Millisecond,
		Multiplier:      1,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestConnect_StopsOnCancel(t *testing.T) {
	t.Parallel()

	db, mock := newPingDB(t)
	mock.ExpectPing().WillReturnError(errors.New("refused"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := db.connect(ctx, config.RetryConfig{
		MaxAttempts:     5,
		InitialInterval: time.Hour,
		Multiplier:      1,
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnect_InvalidAttempts(t *testing.T) {
	t.Parallel()

	db, _ := newPingDB(t)
	assert.Error(t, db.connect(context.Background(), config.RetryConfig{}))
}
