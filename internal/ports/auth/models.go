package auth

import "time"

// Identity es lo que el servicio de cuentas entrega para emitir un token.
type Identity struct {
	AccountID string
	Email     string
}

// Claims representa la información extraída del token.
type Claims struct {
	AccountID string    `json:"account_id"`
	Email     string    `json:"email"`
	TokenID   string    `json:"token_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
