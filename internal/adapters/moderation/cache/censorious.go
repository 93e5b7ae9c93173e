package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"people-directory/internal/platform/metrics"
	"people-directory/internal/ports/moderation"
)

// Censorious decora otro moderation.Censorious con un LRU con expiración.
// Solo se cachean resultados exitosos; ambos tiers comparten entradas.
type Censorious struct {
	next    moderation.Censorious
	lru     *expirable.LRU[string, string]
	metrics *metrics.Metrics
}

func NewCensorious(next moderation.Censorious, size int, ttl time.Duration, m *metrics.Metrics) *Censorious {
	return &Censorious{
		next:    next,
		lru:     expirable.NewLRU[string, string](size, nil, ttl),
		metrics: m,
	}
}

func (c *Censorious) Censor(ctx context.Context, text string) (string, error) {
	return c.lookup(ctx, "plain", text, c.next.Censor)
}

func (c *Censorious) CensorWithBackoff(ctx context.Context, text string) (string, error) {
	return c.lookup(ctx, "backoff", text, c.next.CensorWithBackoff)
}

func (c *Censorious) lookup(
	ctx context.Context,
	tier string,
	text string,
	fetch func(context.Context, string) (string, error),
) (string, error) {
	if out, ok := c.lru.Get(text); ok {
		c.metrics.ObserveModeration(tier, "cached", 0)
		return out, nil
	}

	out, err := fetch(ctx, text)
	if err != nil {
		return "", err
	}

	c.lru.Add(text, out)
	return out, nil
}

var _ moderation.Censorious = (*Censorious)(nil)
