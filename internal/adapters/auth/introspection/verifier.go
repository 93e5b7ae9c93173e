package introspection

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"people-directory/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.AuthVerifier contra el IdP externo.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.Introspect(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("introspection verify failed: %w", err)
	}
	return claims, nil
}

// Chain prueba cada verifier en orden y devuelve el primer éxito.
// Con todos fallando devuelve el error del último.
type Chain []auth.AuthVerifier

func (c Chain) Verify(ctx context.Context, token string) (auth.Claims, error) {
	err := errors.New("no verifiers configured")
	for _, v := range c {
		if v == nil {
			continue
		}
		var claims auth.Claims
		claims, err = v.Verify(ctx, token)
		if err == nil {
			return claims, nil
		}
	}
	return auth.Claims{}, err
}
