package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token firmado y de vida corta para una identidad.
type TokenIssuer interface {
	Issue(ctx context.Context, id Identity) (string, error)
}
