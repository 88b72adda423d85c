package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/home-service/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
	assert.NotEmpty(t, cfg.Telemetry.Endpoint)
	assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	// From base.yaml, not overridden by local.yaml.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5, cfg.Database.ConnectRetry.MaxAttempts)
	assert.Equal(t, 5, cfg.Database.CircuitBreaker.MaxFailures)
	assert.Equal(t, 5, cfg.Query.DefaultPageSize)
	assert.Equal(t, 100, cfg.Query.MaxPageSize)
	assert.Equal(t, "id,desc", cfg.Query.DefaultSort)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	// Neither base.yaml nor local.yaml sets these.
	assert.InDelta(t, 1.0, cfg.Telemetry.SampleRatio, 0)
	assert.Equal(t, "local", cfg.Telemetry.Environment)
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")
	t.Setenv("APP_QUERY_MAX_PAGE_SIZE", "50")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 50, cfg.Query.MaxPageSize)
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_DATABASE_CONNECT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Database.ConnectRetry.MaxAttempts)
}

func TestLoad_EnvOverrideTelemetry(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_TELEMETRY_SAMPLE_RATIO", "0.25")
	t.Setenv("APP_TELEMETRY_ENVIRONMENT", "staging")

	cfg, err := config.Load("local")
	require.NoError(t, err)

	assert.InDelta(t, 0.25, cfg.Telemetry.SampleRatio, 1e-9)
	assert.Equal(t, "staging", cfg.Telemetry.Environment)
}

func TestLoad_ConfigDirOption(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("server:\n  port: 7070\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ci.yaml"), []byte("log:\n  level: warn\n"), 0o600))

	cfg, err := config.Load("ci", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout, "default survives an empty layer")
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	assert.Error(t, err)
}

func TestLoad_UnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"", "  ", "../etc", `a\b`} {
		_, err := config.Load(p)
		assert.Error(t, err, "profile %q", p)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:    "invalid port",
			mutate:  func(c *config.Config) { c.Server.Port = 0 },
			wantErr: "server.port",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *config.Config) { c.Log.Level = "verbose" },
			wantErr: "log.level",
		},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
			},
			wantErr: "telemetry.endpoint",
		},
		{
			name: "sample ratio above one",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.SampleRatio = 1.5
			},
			wantErr: "telemetry.sample_ratio",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *config.Config) { c.Database.Driver = "oracle" },
			wantErr: "database.driver",
		},
		{
			name:    "empty dsn",
			mutate:  func(c *config.Config) { c.Database.DSN = "" },
			wantErr: "database.dsn",
		},
		{
			name:    "idle above open",
			mutate:  func(c *config.Config) { c.Database.MaxIdleConns = 20 },
			wantErr: "database.max_idle_conns",
		},
		{
			name:    "max page size below default",
			mutate:  func(c *config.Config) { c.Query.MaxPageSize = 2 },
			wantErr: "query.max_page_size",
		},
		{
			name:    "bcrypt cost too low",
			mutate:  func(c *config.Config) { c.Security.BcryptCost = 1 },
			wantErr: "security.bcrypt_cost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0
	cfg.Database.DSN = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "database.dsn")
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 30 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			DSN:          ":memory:",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			ConnectRetry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Query: config.QueryConfig{
			DefaultPageSize: 5,
			MaxPageSize:     100,
			DefaultSort:     "id,desc",
		},
		Security: config.SecurityConfig{BcryptCost: 10},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
