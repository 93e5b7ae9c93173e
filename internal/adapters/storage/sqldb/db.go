package sqldb

import (
	"context"
	"database/sql"
	_ "embed"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Schema es el DDL de referencia (postgres y sqlite). No hay migraciones:
// el operador lo aplica; los tests lo usan para levantar la base.
//
//go:embed schema.sql
var Schema string

type Options struct {
	MaxOpenConns int
}

// Open abre un pool database/sql para "postgres" (pgx) o "sqlite" (modernc).
func Open(driver, dsn string, opts Options) (*sql.DB, Dialect, error) {
	d, err := DialectFor(driver)
	if err != nil {
		return nil, Dialect{}, err
	}

	if d.Name == Sqlite {
		dsn = withForeignKeys(dsn)
	}

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, Dialect{}, errors.WithStack(err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	// sqlite serializa escrituras; un solo writer evita SQLITE_BUSY
	if d.Name == Sqlite {
		maxOpen = 1
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(max(1, maxOpen/2))
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, Dialect{}, errors.Wrapf(err, "ping %s", driver)
	}

	return db, d, nil
}

// ApplySchema ejecuta Schema sentencia por sentencia.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(Schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "apply schema")
		}
	}
	return nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
