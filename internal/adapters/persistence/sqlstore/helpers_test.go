package sqlstore_test

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/home-service/internal/adapters/persistence/sqlstore"
	"github.com/jsamuelsen11/home-service/internal/platform/config"
	"github.com/jsamuelsen11/home-service/internal/platform/database"
	"github.com/jsamuelsen11/home-service/internal/query"
)

var (
	testBreaker = config.CircuitBreakerConfig{
		MaxFailures:   5,
		Timeout:       time.Minute,
		HalfOpenLimit: 1,
	}

	testQueryOptions = query.Options{
		DefaultPageSize: 5,
		MaxPageSize:     100,
		DefaultSort:     "id,desc",
	}

	baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDB returns a migrated in-memory sqlite database. A single
// connection keeps every statement on the same in-memory schema.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	x, err := sqlx.Open(config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	x.SetMaxOpenConns(1)

	db, err := database.New(x, config.DriverSQLite, testBreaker, nil, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	fsys, err := sqlstore.Migrations(config.DriverSQLite)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background(), fsys))
	return db
}

// request builds a query.Request from a raw query string and path pairs.
func request(t *testing.T, rawQuery string, path ...string) query.Request {
	t.Helper()

	q, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)

	p := query.Params{}
	for i := 0; i+1 < len(path); i += 2 {
		p[path[i]] = []string{path[i+1]}
	}
	return query.Request{Path: p, Query: query.Params(q)}
}
