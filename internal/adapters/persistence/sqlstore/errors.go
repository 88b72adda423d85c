// Package sqlstore implements the repository ports on a relational database
// through platform/database. Each entity file pairs a row type with its
// translators to and from the domain entity, plus the filter table that turns
// query filters into goqu predicates.
package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/home-service/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	mysqlDuplicateEntry   = 1062
	sqlitePrimaryCodeMask = 0xff
)

// translateError maps driver errors onto domain kinds. notFound is the
// client-facing message used when the statement matched no row.
func translateError(err error, notFound string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Errorf(domain.ErrNotFound, "%s", notFound)
	}
	if isUniqueViolation(err) {
		return domain.Wrap(domain.ErrConflict, err, "Entity already exists")
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&sqlitePrimaryCodeMask == sqlite3.SQLITE_CONSTRAINT
	}

	return false
}

// requireAffected turns a zero-row UPDATE into a not-found error.
func requireAffected(res sql.Result, notFound string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return domain.Errorf(domain.ErrNotFound, "%s", notFound)
	}
	return nil
}
