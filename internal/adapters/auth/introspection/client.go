package introspection

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"people-directory/internal/platform/httpclient"
	"people-directory/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("introspection client not configured")
	ErrUnauthorized  = errors.New("introspection unauthorized")
	ErrUpstream      = errors.New("introspection upstream error")
)

// Config del endpoint de introspección de un IdP externo.
type Config struct {
	URL    string
	APIKey string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	url          string
	apiKey       string
	apiKeyHeader string
	http         *httpclient.Client
}

func NewClient(cfg Config) *Client {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	return &Client{
		url:          strings.TrimSpace(cfg.URL),
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		http:         httpclient.New(cfg.Timeout),
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.url != "" && c.apiKey != ""
}

type introspectResponse struct {
	Active    bool   `json:"active"`
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	TokenID   string `json:"token_id"`
	ExpiresAt int64  `json:"exp"`
}

// Introspect envía el token al IdP. Un 401/403 o active=false es ErrUnauthorized.
func (c *Client) Introspect(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}

	headers := map[string]string{
		c.apiKeyHeader:  c.apiKey,
		"Authorization": "Bearer " + token,
	}

	var out introspectResponse
	err := c.http.DoJSON(ctx, http.MethodPost, c.url, headers, map[string]string{"token": token}, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) &&
			(httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if !out.Active {
		return auth.Claims{}, ErrUnauthorized
	}

	id := strings.TrimSpace(out.AccountID)
	if id == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing account_id", ErrUpstream)
	}

	claims := auth.Claims{
		AccountID: id,
		Email:     strings.TrimSpace(out.Email),
		TokenID:   strings.TrimSpace(out.TokenID),
	}
	if out.ExpiresAt > 0 {
		claims.ExpiresAt = time.Unix(out.ExpiresAt, 0).UTC()
	}
	return claims, nil
}
