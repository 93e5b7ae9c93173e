package sqldb

import (
	"context"
	"database/sql"

	"people-directory/internal/domain/accounts"
)

type AccountsRepo struct {
	db *sql.DB
	d  Dialect
}

func NewAccountsRepo(db *sql.DB, d Dialect) *AccountsRepo {
	return &AccountsRepo{db: db, d: d}
}

// AddAccount confía en el UNIQUE de email; la violación sale como DuplicateKey.
func (r *AccountsRepo) AddAccount(ctx context.Context, a accounts.Account) (string, error) {
	_, err := r.db.ExecContext(ctx, r.d.Rebind(`
		INSERT INTO accounts (id, email, password) VALUES (?, ?, ?)
	`), a.ID, a.Email, a.Password)
	if err != nil {
		return "", classify("sqldb.AddAccount", err)
	}
	return a.ID, nil
}

func (r *AccountsRepo) GetAccount(ctx context.Context, email string) (accounts.Account, error) {
	var a accounts.Account
	err := r.db.QueryRowContext(ctx, r.d.Rebind(`
		SELECT id, email, password FROM accounts WHERE email = ?
	`), email).Scan(&a.ID, &a.Email, &a.Password)
	if err != nil {
		return accounts.Account{}, classify("sqldb.GetAccount", err)
	}
	return a, nil
}

var _ accounts.Storer = (*AccountsRepo)(nil)
