package sqldb

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"people-directory/internal/ports/storage"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classify traduce errores de driver a los kinds de storage.
// FK violada = el registro referenciado no existe.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return storage.NotFound(op)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return storage.Duplicate(op, err)
		case pgForeignKeyViolation:
			return storage.NotFound(op)
		}
		return storage.Failure(op, err)
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		switch sqErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return storage.Duplicate(op, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return storage.NotFound(op)
		}
	}

	return storage.Failure(op, err)
}
