package accounts

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/storer_mock.go -package=mocks

// Storer persiste cuentas. AddAccount devuelve un error DuplicateKey
// (internal/ports/storage) si el email ya existe.
type Storer interface {
	AddAccount(ctx context.Context, a Account) (string, error)
	GetAccount(ctx context.Context, email string) (Account, error)
}

// PasswordHasher es el KDF; Verify devuelve error solo si el digest es ilegible.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) (bool, error)
}
