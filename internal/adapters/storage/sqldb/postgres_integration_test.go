//go:build integration

package sqldb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"people-directory/internal/adapters/storage/storetest"
	"people-directory/internal/domain/accounts"
	"people-directory/internal/domain/people"
)

func startPostgres(t *testing.T) (*sql.DB, Dialect) {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("people"),
		tcpostgres.WithUsername("people"),
		tcpostgres.WithPassword("people"),
		tcpostgres.BasicWaitStrategies(),
	)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Fatalf("failed to terminate container: %+v", errors.WithStack(err))
		}
	})
	if err != nil {
		t.Fatalf("failed to start container: %+v", errors.WithStack(err))
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, d, err := Open(Postgres, dsn, Options{MaxOpenConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, ApplySchema(ctx, db))
	return db, d
}

// truncate deja la base vacía entre subtests; el contenedor se comparte.
func truncate(t *testing.T, db *sql.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := db.ExecContext(ctx, `TRUNCATE pets, people, accounts`)
	require.NoError(t, err)
}

func TestPostgres_Contract(t *testing.T) {
	db, d := startPostgres(t)

	storetest.TestPeopleStorer(t, func(t *testing.T) people.Storer {
		truncate(t, db)
		return NewPeopleRepo(db, d)
	})

	storetest.TestAccountsStorer(t, func(t *testing.T) accounts.Storer {
		truncate(t, db)
		return NewAccountsRepo(db, d)
	})
}
