package sqlstore

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/jsamuelsen11/home-service/internal/platform/config"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql migrations/mysql/*.sql
var migrationFiles embed.FS

// Migrations returns the schema migrations written for driver, rooted so
// that the .sql files sit at the top level.
func Migrations(driver string) (fs.FS, error) {
	var dir string
	switch driver {
	case config.DriverPostgres:
		dir = "migrations/postgres"
	case config.DriverMySQL:
		dir = "migrations/mysql"
	case config.DriverSQLite:
		dir = "migrations/sqlite"
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
	return fs.Sub(migrationFiles, dir)
}
