package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Accepted bcrypt work factors.
const (
	bcryptMinCost = 4
	bcryptMaxCost = 31
)

// Validate reports every invalid setting at once, joined into one error.
func (c *Config) Validate() error {
	var p problems
	c.Server.check(&p)
	c.Log.check(&p)
	c.Database.check(&p)
	c.Query.check(&p)
	c.Security.check(&p)
	c.Telemetry.check(&p)
	return p.err()
}

// problems accumulates validation failures keyed by config path.
type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) when(bad bool, format string, args ...any) {
	if bad {
		p.addf(format, args...)
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	if !slices.Contains(allowed, got) {
		p.addf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
	}
}

func (p problems) err() error {
	return errors.Join(p...)
}

func (s *ServerConfig) check(p *problems) {
	p.when(s.Port < 1 || s.Port > 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.when(s.ReadTimeout <= 0, "server.read_timeout must be positive, got %s", s.ReadTimeout)
	p.when(s.WriteTimeout <= 0, "server.write_timeout must be positive, got %s", s.WriteTimeout)
}

func (l *LogConfig) check(p *problems) {
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
}

func (d *DatabaseConfig) check(p *problems) {
	p.oneOf("database.driver", d.Driver, DriverPostgres, DriverMySQL, DriverSQLite)
	p.when(d.DSN == "", "database.dsn must not be empty")
	p.when(d.MaxOpenConns < 1, "database.max_open_conns must be >= 1, got %d", d.MaxOpenConns)
	p.when(d.MaxIdleConns < 0 || d.MaxIdleConns > d.MaxOpenConns,
		"database.max_idle_conns must be between 0 and max_open_conns (%d), got %d", d.MaxOpenConns, d.MaxIdleConns)
	p.when(d.ConnectRetry.MaxAttempts < 1,
		"database.connect_retry.max_attempts must be >= 1, got %d", d.ConnectRetry.MaxAttempts)
	p.when(d.ConnectRetry.Multiplier <= 0,
		"database.connect_retry.multiplier must be positive, got %g", d.ConnectRetry.Multiplier)
	p.when(d.CircuitBreaker.MaxFailures < 1,
		"database.circuit_breaker.max_failures must be >= 1, got %d", d.CircuitBreaker.MaxFailures)
}

func (q *QueryConfig) check(p *problems) {
	p.when(q.DefaultPageSize < 1, "query.default_page_size must be >= 1, got %d", q.DefaultPageSize)
	p.when(q.MaxPageSize < q.DefaultPageSize,
		"query.max_page_size (%d) must be >= query.default_page_size (%d)", q.MaxPageSize, q.DefaultPageSize)
	p.when(strings.TrimSpace(q.DefaultSort) == "", "query.default_sort must not be empty")
}

func (s *SecurityConfig) check(p *problems) {
	p.when(s.BcryptCost < bcryptMinCost || s.BcryptCost > bcryptMaxCost,
		"security.bcrypt_cost must be between %d and %d, got %d", bcryptMinCost, bcryptMaxCost, s.BcryptCost)
}

// Telemetry settings are only checked when export is on.
func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.when(t.Exporter == "otlp" && t.Endpoint == "", "telemetry.endpoint must not be empty when exporter is otlp")
	p.when(t.SampleRatio < 0 || t.SampleRatio > 1,
		"telemetry.sample_ratio must be between 0 and 1, got %g", t.SampleRatio)
}
