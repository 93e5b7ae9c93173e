package storage

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"people-directory/internal/adapters/storage/memory"
	redisstore "people-directory/internal/adapters/storage/redis"
	"people-directory/internal/adapters/storage/sqldb"
	"people-directory/internal/domain/accounts"
	"people-directory/internal/domain/people"
	"people-directory/internal/platform/config"
	"people-directory/internal/platform/logger"
)

// Stores agrupa los repositorios del proceso y lo que haya que cerrar al salir.
type Stores struct {
	People   people.Storer
	Accounts accounts.Storer

	closer io.Closer
}

func (s *Stores) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open elige el backend según conf.Driver.
func Open(ctx context.Context, conf config.Storage, log logger.Logger) (*Stores, error) {
	log = log.With(map[string]any{"driver": conf.Driver})

	switch conf.Driver {
	case "memory", "":
		return openMemory(ctx, conf, log)

	case sqldb.Postgres, sqldb.Sqlite:
		db, d, err := sqldb.Open(conf.Driver, conf.DSN, sqldb.Options{MaxOpenConns: conf.MaxOpenConns})
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if conf.ApplySchema {
			if err := sqldb.ApplySchema(ctx, db); err != nil {
				_ = db.Close()
				return nil, errors.WithStack(err)
			}
		}
		log.Info("sql storage ready", nil)
		return &Stores{
			People:   sqldb.NewPeopleRepo(db, d),
			Accounts: sqldb.NewAccountsRepo(db, d),
			closer:   db,
		}, nil

	case "redis":
		client, err := redisstore.Open(ctx, conf.RedisURL)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		log.Info("redis storage ready", map[string]any{"prefix": conf.RedisPrefix})
		return &Stores{
			People:   redisstore.NewPeopleRepo(client, conf.RedisPrefix),
			Accounts: redisstore.NewAccountsRepo(client, conf.RedisPrefix),
			closer:   client,
		}, nil

	default:
		return nil, errors.Errorf("unknown storage driver %q", conf.Driver)
	}
}

func openMemory(ctx context.Context, conf config.Storage, log logger.Logger) (*Stores, error) {
	peopleRepo := memory.NewPeopleRepo()

	if conf.SeedFile != "" {
		n, err := peopleRepo.LoadSeed(ctx, conf.SeedFile)
		if err != nil {
			return nil, errors.Wrapf(err, "load seed %s", conf.SeedFile)
		}
		log.Info("seed loaded", map[string]any{"file": conf.SeedFile, "people": n})
	}

	return &Stores{
		People:   peopleRepo,
		Accounts: memory.NewAccountsRepo(),
		closer:   nopCloser{},
	}, nil
}
