package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultRetryMaxAttempts = 5
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultPageSize    = 5
	defaultMaxPageSize = 100

	defaultBcryptCost = 10

	defaultSampleRatio = 1.0
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "30s",
		"server.shutdown_timeout": "10s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":                          DriverSQLite,
		"database.dsn":                             "file:home.db?_pragma=foreign_keys(1)",
		"database.max_open_conns":                  defaultMaxOpenConns,
		"database.max_idle_conns":                  defaultMaxIdleConns,
		"database.conn_max_lifetime":               "30m",
		"database.conn_max_idle_time":              "5m",
		"database.auto_migrate":                    true,
		"database.connect_retry.max_attempts":      defaultRetryMaxAttempts,
		"database.connect_retry.initial_interval":  "200ms",
		"database.connect_retry.max_interval":      "5s",
		"database.connect_retry.multiplier":        defaultRetryMultiplier,
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"query.default_page_size": defaultPageSize,
		"query.max_page_size":     defaultMaxPageSize,
		"query.default_sort":      "id,desc",

		"security.bcrypt_cost": defaultBcryptCost,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "home-service",
		"telemetry.environment":  "",
		"telemetry.sample_ratio": defaultSampleRatio,
	}
}
