package moderation

import "context"

//go:generate mockgen -source=censorious.go -destination=mocks/censorious_mock.go -package=mocks

// Censorious sanea texto libre contra un filtro de contenido.
// Toda falla se reporta con apperr.KindModeration.
type Censorious interface {
	// Censor falla rápido: un solo intento.
	Censor(ctx context.Context, text string) (string, error)

	// CensorWithBackoff reintenta fallas transitorias con backoff exponencial acotado.
	CensorWithBackoff(ctx context.Context, text string) (string, error)
}
