package database

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/home-service/internal/platform/config"
)

func TestDataSource_MySQLForcesOptions(t *testing.T) {
	t.Parallel()

	dsn, err := dataSource(config.DriverMySQL, "home:secret@tcp(db:3306)/home?charset=utf8mb4")
	require.NoError(t, err)

	c, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.True(t, c.ParseTime)
	assert.True(t, c.ClientFoundRows)
	assert.Equal(t, "home", c.DBName)
	assert.Equal(t, "db:3306", c.Addr)
}

func TestDataSource_OtherDriversUntouched(t *testing.T) {
	t.Parallel()

	for _, driver := range []string{config.DriverPostgres, config.DriverSQLite} {
		dsn, err := dataSource(driver, "file:home.db?_pragma=foreign_keys(1)")
		require.NoError(t, err)
		assert.Equal(t, "file:home.db?_pragma=foreign_keys(1)", dsn)
	}
}

func TestDataSource_BadMySQLDSN(t *testing.T) {
	t.Parallel()

	_, err := dataSource(config.DriverMySQL, "not a dsn")
	assert.ErrorContains(t, err, "parsing mysql dsn")
}
