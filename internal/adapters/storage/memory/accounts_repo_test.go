package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"people-directory/internal/adapters/storage/storetest"
	"people-directory/internal/domain/accounts"
	"people-directory/internal/ports/storage"
)

func TestAccountsRepo(t *testing.T) {
	r := NewAccountsRepo()
	ctx := context.Background()

	id, err := r.AddAccount(ctx, accounts.Account{ID: "acc-1", Email: "a@b.com", Password: "digest"})
	require.NoError(t, err)
	assert.Equal(t, "acc-1", id)

	_, err = r.AddAccount(ctx, accounts.Account{ID: "acc-2", Email: "a@b.com", Password: "other"})
	assert.True(t, storage.IsDuplicate(err))

	got, err := r.GetAccount(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "digest", got.Password)

	_, err = r.GetAccount(ctx, "nobody@b.com")
	assert.True(t, storage.IsNotFound(err))
}

func TestAccountsRepo_Contract(t *testing.T) {
	storetest.TestAccountsStorer(t, func(t *testing.T) accounts.Storer { return NewAccountsRepo() })
}
