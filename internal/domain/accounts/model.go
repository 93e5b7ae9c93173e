package accounts

import (
	"strings"

	"github.com/google/uuid"
)

// Account guarda el digest del password, nunca el password.
type Account struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type NewAccount struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newAccountID() string { return uuid.NewString() }
