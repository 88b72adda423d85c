// Package database provides an instrumented relational store handle: a sqlx
// pool guarded by a circuit breaker, with an OpenTelemetry client span and
// operation metrics around every statement, connect retry with exponential
// backoff, and embedded goose migrations.
//
// The handle applies its processing in this order:
//
//	Circuit Breaker → OTEL Span → sqlx → driver
//
// Construction:
//
//	db, err := database.Open(ctx, cfg.Database, metrics, logger)
//	defer db.Close()
//
// Statements are built with goqu and executed through the handle:
//
//	ds := db.From("users").Where(goqu.C("id").Eq(id))
//	err := db.Get(ctx, "users.find_by_id", &row, ds)
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"    // goqu "mysql" dialect
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // goqu "postgres" dialect
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // goqu "sqlite3" dialect
	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"                  // database/sql driver "pgx"
	"github.com/jmoiron/sqlx"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	_ "modernc.org/sqlite" // database/sql driver "sqlite"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/platform/config"
	"github.com/jsamuelsen11/home-service/internal/platform/telemetry"
)

const (
	componentName = "database"
	tracerName    = "github.com/jsamuelsen11/home-service/internal/platform/database"
)

// Statement is anything that renders to SQL with bind arguments. goqu
// datasets satisfy it.
type Statement interface {
	ToSQL() (string, []any, error)
}

// DB is an instrumented handle over a *sqlx.DB. Safe for concurrent use.
type DB struct {
	x       *sqlx.DB
	driver  string
	dialect goqu.DialectWrapper
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Open connects using cfg, pinging with retry until the database answers or
// the retry budget is spent. If metrics is nil, metric recording is skipped.
func Open(ctx context.Context, cfg config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*DB, error) {
	dsn, err := dataSource(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}
	x, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}
	x.SetMaxOpenConns(cfg.MaxOpenConns)
	x.SetMaxIdleConns(cfg.MaxIdleConns)
	x.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	x.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	db, err := New(x, cfg.Driver, cfg.CircuitBreaker, metrics, logger)
	if err != nil {
		_ = x.Close()
		return nil, err
	}

	if err := db.connect(ctx, cfg.ConnectRetry); err != nil {
		_ = x.Close()
		return nil, err
	}

	logger.InfoContext(ctx, "database connected",
		slog.String("driver", cfg.Driver),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
	)
	return db, nil
}

// dataSource forces the driver options the stores rely on. MySQL must scan
// DATETIME into time.Time and report matched rather than changed rows, or an
// UPDATE that changes nothing would read as not found.
func dataSource(driver, dsn string) (string, error) {
	if driver != config.DriverMySQL {
		return dsn, nil
	}
	c, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parsing mysql dsn: %w", err)
	}
	c.ParseTime = true
	c.ClientFoundRows = true
	return c.FormatDSN(), nil
}

// New wraps an existing pool. driver must be one of the config.Driver*
// names; it selects the SQL dialect.
func New(x *sqlx.DB, driver string, cb config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	dialect, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        componentName,
		MaxRequests: toUint32(cb.HalfOpenLimit),
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cb.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &DB{
		x:       x,
		driver:  driver,
		dialect: goqu.Dialect(dialect),
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Driver returns the database/sql driver name.
func (d *DB) Driver() string {
	return d.driver
}

// SupportsReturning reports whether INSERT ... RETURNING is available. Only
// postgres qualifies: goqu's mysql and sqlite3 dialects do not render it.
func (d *DB) SupportsReturning() bool {
	return d.driver == config.DriverPostgres
}

// From starts a prepared SELECT on table.
func (d *DB) From(table string) *goqu.SelectDataset {
	return d.dialect.From(table).Prepared(true)
}

// Insert starts a prepared INSERT into table.
func (d *DB) Insert(table string) *goqu.InsertDataset {
	return d.dialect.Insert(table).Prepared(true)
}

// Update starts a prepared UPDATE of table.
func (d *DB) Update(table string) *goqu.UpdateDataset {
	return d.dialect.Update(table).Prepared(true)
}

// Select runs stmt and scans every row into dest, a pointer to a slice.
func (d *DB) Select(ctx context.Context, op string, dest any, stmt Statement) error {
	return d.run(ctx, op, stmt, func(ctx context.Context, query string, args []any) error {
		return d.x.SelectContext(ctx, dest, query, args...)
	})
}

// Get runs stmt and scans the single resulting row into dest. It returns
// sql.ErrNoRows when nothing matches; that outcome does not count against
// the circuit breaker.
func (d *DB) Get(ctx context.Context, op string, dest any, stmt Statement) error {
	return d.run(ctx, op, stmt, func(ctx context.Context, query string, args []any) error {
		return d.x.GetContext(ctx, dest, query, args...)
	})
}

// Exec runs stmt and returns the driver result.
func (d *DB) Exec(ctx context.Context, op string, stmt Statement) (sql.Result, error) {
	var res sql.Result
	err := d.run(ctx, op, stmt, func(ctx context.Context, query string, args []any) error {
		var err error
		res, err = d.x.ExecContext(ctx, query, args...)
		return err
	})
	return res, err
}

// InsertID runs an INSERT and returns the generated id column, using
// RETURNING where the dialect has it and the driver's last insert id
// elsewhere.
func (d *DB) InsertID(ctx context.Context, op string, ds *goqu.InsertDataset) (int64, error) {
	if d.SupportsReturning() {
		var id int64
		if err := d.Get(ctx, op, &id, ds.Returning(goqu.C("id"))); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := d.Exec(ctx, op, ds)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: reading last insert id: %w", op, err)
	}
	return id, nil
}

// Name identifies the database in health reports.
func (d *DB) Name() string {
	return componentName
}

// HealthCheck reports the circuit breaker state and, when the breaker is
// closed, pings the database.
func (d *DB) HealthCheck(ctx context.Context) error {
	switch state := d.breaker.State(); state {
	case gobreaker.StateClosed:
		if err := d.x.PingContext(ctx); err != nil {
			return fmt.Errorf("%s: ping failed: %w", componentName, err)
		}
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", componentName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", componentName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", componentName, state)
	}
}

// Close closes the underlying pool.
func (d *DB) Close() error {
	return d.x.Close()
}

// run renders stmt and executes fn through the breaker, inside a client span,
// recording metrics for the outcome.
func (d *DB) run(ctx context.Context, op string, stmt Statement, fn func(context.Context, string, []any) error) error {
	query, args, err := stmt.ToSQL()
	if err != nil {
		return fmt.Errorf("%s: building statement: %w", op, err)
	}

	start := time.Now()
	_, err = d.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := d.startSpan(ctx, op, query)
		defer span.End()

		err := fn(spanCtx, query, args)
		finishSpan(span, err)
		return struct{}{}, err
	})
	d.recordMetrics(ctx, op, start, err)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: database: %w", domain.ErrUnavailable, err)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return err
}

func (d *DB) startSpan(ctx context.Context, op, query string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "DB "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", d.driver),
			attribute.String("db.operation", op),
			attribute.String("db.statement", query),
		),
	)
}

func finishSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics is recorded outside the breaker so rejections are counted.
// Safe to call with nil metrics.
func (d *DB) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case errors.Is(err, sql.ErrNoRows):
		result = "no_rows"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(d.driver),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)
	d.metrics.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	d.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

// isSuccessful decides which outcomes count against the breaker. Missing
// rows and caller cancellation say nothing about database health.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, context.Canceled)
}

func dialectFor(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverMySQL:
		return "mysql", nil
	case config.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
