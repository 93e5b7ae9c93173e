package apilayer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"people-directory/internal/platform/apperr"
	"people-directory/internal/platform/httpclient"
	"people-directory/internal/platform/logger"
	"people-directory/internal/platform/metrics"
)

var (
	ErrNotConfigured = errors.New("apilayer client not configured")
	ErrUpstream      = errors.New("apilayer upstream error")
	ErrBadResponse   = errors.New("apilayer invalid response")
)

const (
	tierPlain   = "plain"
	tierBackoff = "backoff"
)

// Config del cliente de moderación (apilayer bad_words).
type Config struct {
	URL    string
	APIKey string

	// Si está vacío, se usa "apikey".
	APIKeyHeader string

	// Timeout por intento.
	Timeout time.Duration

	// Solo aplican al tier con backoff. MaxAttempts cuenta intentos totales.
	MaxAttempts int
	BackoffMin  time.Duration
	BackoffMax  time.Duration

	// Límite de llamadas salientes; 0 = sin límite.
	RatePerSecond float64
	Burst         int

	// Opcional (tests).
	Transport http.RoundTripper
}

// Client implementa moderation.Censorious contra apilayer.
type Client struct {
	url          string
	apiKey       string
	apiKeyHeader string

	plain    *httpclient.Client
	retrying *httpclient.Client
	limiter  *rate.Limiter

	log     logger.Logger
	metrics *metrics.Metrics
}

func NewClient(cfg Config, log logger.Logger, m *metrics.Metrics) *Client {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "apikey"
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"component": "moderation.apilayer"})

	plain := httpclient.New(cfg.Timeout)
	if cfg.Transport != nil {
		plain.HTTP.Transport = cfg.Transport
	}

	retrying := httpclient.NewRetrying(httpclient.RetryConfig{
		Timeout:     cfg.Timeout,
		MaxAttempts: cfg.MaxAttempts,
		BackoffMin:  cfg.BackoffMin,
		BackoffMax:  cfg.BackoffMax,
		Transport:   cfg.Transport,
		OnRetry: func(_ *http.Request, attempt int) {
			m.IncModerationRetries()
			log.Debug("retrying moderation call", map[string]any{"attempt": attempt})
		},
	})

	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	return &Client{
		url:          strings.TrimSpace(cfg.URL),
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		plain:        plain,
		retrying:     retrying,
		limiter:      limiter,
		log:          log,
		metrics:      m,
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.url != "" && c.apiKey != ""
}

func (c *Client) Censor(ctx context.Context, text string) (string, error) {
	return c.censor(ctx, tierPlain, c.plain, text)
}

func (c *Client) CensorWithBackoff(ctx context.Context, text string) (string, error) {
	return c.censor(ctx, tierBackoff, c.retrying, text)
}

// badWordsResponse es el subconjunto de la respuesta de apilayer que usamos.
type badWordsResponse struct {
	Content         string `json:"content"`
	BadWordsTotal   int    `json:"bad_words_total"`
	CensoredContent *string `json:"censored_content"`
}

type apiErrorResponse struct {
	Message string `json:"message"`
}

func (c *Client) censor(ctx context.Context, tier string, hc *httpclient.Client, text string) (string, error) {
	const op = "apilayer.Censor"

	if !c.IsConfigured() {
		return "", apperr.Wrap(apperr.KindModeration, op, ErrNotConfigured)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.log.Warn("moderation rate limiter aborted", map[string]any{"tier": tier, "error": err})
			return "", apperr.Wrap(apperr.KindModeration, op, err)
		}
	}

	start := time.Now()
	raw, err := hc.Do(ctx, http.MethodPost, c.url, map[string]string{
		c.apiKeyHeader: c.apiKey,
		"Content-Type": "text/plain",
	}, []byte(text))
	if err != nil {
		c.metrics.ObserveModeration(tier, "error", time.Since(start))
		c.logFailure(tier, err)
		return "", apperr.Wrap(apperr.KindModeration, op, err)
	}

	var out badWordsResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		c.metrics.ObserveModeration(tier, "error", time.Since(start))
		c.log.Error("parsing apilayer response", map[string]any{"tier": tier, "error": err})
		return "", apperr.Wrap(apperr.KindModeration, op, errors.Join(ErrBadResponse, err))
	}

	if out.CensoredContent == nil {
		c.metrics.ObserveModeration(tier, "error", time.Since(start))
		c.log.Error("apilayer response without censored_content", map[string]any{"tier": tier})
		return "", apperr.Wrap(apperr.KindModeration, op, ErrBadResponse)
	}

	c.metrics.ObserveModeration(tier, "ok", time.Since(start))
	c.log.Debug("text moderated", map[string]any{"tier": tier, "bad_words_total": out.BadWordsTotal})

	return *out.CensoredContent, nil
}

// logFailure deja en logs la distinción cliente/servidor; el error devuelto es siempre el mismo kind.
func (c *Client) logFailure(tier string, err error) {
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		c.log.Error("calling apilayer api", map[string]any{"tier": tier, "error": err})
		return
	}

	msg := httpErr.Body
	var apiErr apiErrorResponse
	if jerr := json.Unmarshal([]byte(httpErr.Body), &apiErr); jerr == nil && apiErr.Message != "" {
		msg = apiErr.Message
	}

	class := "server"
	if httpErr.IsClientError() {
		class = "client"
	}

	c.log.Error("apilayer api responded with error", map[string]any{
		"tier":    tier,
		"status":  httpErr.StatusCode,
		"class":   class,
		"message": msg,
		"error":   errors.Join(ErrUpstream, err),
	})
}
