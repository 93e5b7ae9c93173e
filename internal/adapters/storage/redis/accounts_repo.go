package redis

import (
	"context"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"people-directory/internal/domain/accounts"
	"people-directory/internal/ports/storage"
)

// AccountsRepo usa el email como key, así la unicidad la da el propio keyspace.
type AccountsRepo struct {
	rdb  goredis.UniversalClient
	keys keys
}

func NewAccountsRepo(rdb goredis.UniversalClient, prefix string) *AccountsRepo {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &AccountsRepo{rdb: rdb, keys: keys{prefix: prefix}}
}

func (r *AccountsRepo) AddAccount(ctx context.Context, a accounts.Account) (string, error) {
	const op = "redis.AddAccount"

	n, err := addAccountScript.Run(ctx, r.rdb,
		[]string{r.keys.account(a.Email)},
		a.ID, a.Email, a.Password,
	).Int()
	if err != nil {
		return "", storage.Failure(op, err)
	}
	if n == 0 {
		return "", storage.Duplicate(op, errors.New("email already registered"))
	}
	return a.ID, nil
}

func (r *AccountsRepo) GetAccount(ctx context.Context, email string) (accounts.Account, error) {
	h, err := r.rdb.HGetAll(ctx, r.keys.account(email)).Result()
	if err != nil {
		return accounts.Account{}, storage.Failure("redis.GetAccount", err)
	}
	if len(h) == 0 {
		return accounts.Account{}, storage.NotFound("redis.GetAccount")
	}
	return accounts.Account{
		ID:       h["id"],
		Email:    h["email"],
		Password: h["password"],
	}, nil
}

var _ accounts.Storer = (*AccountsRepo)(nil)
