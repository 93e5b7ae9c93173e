package jwt

import (
	"context"
	"errors"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"people-directory/internal/platform/apperr"
	"people-directory/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("jwt signing key not configured")
	ErrTokenExpired  = errors.New("token has expired")
	ErrTokenInvalid  = errors.New("invalid token")
)

const DefaultTTL = 2 * time.Hour

type Config struct {
	SigningKey string
	Issuer     string
	Audience   string
	TTL        time.Duration
}

// claims es el payload firmado. El subject es el id de la cuenta.
type claims struct {
	Email string `json:"email,omitempty"`
	gojwt.RegisteredClaims
}

// Service emite y verifica tokens HS256. Implementa auth.TokenIssuer y auth.AuthVerifier.
type Service struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewService(cfg Config) *Service {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		key:      []byte(strings.TrimSpace(cfg.SigningKey)),
		issuer:   strings.TrimSpace(cfg.Issuer),
		audience: strings.TrimSpace(cfg.Audience),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Service) Issue(_ context.Context, id auth.Identity) (string, error) {
	if len(s.key) == 0 {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(id.AccountID) == "" {
		return "", errors.New("jwt: account id required")
	}

	now := s.now()
	c := claims{
		Email: id.Email,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   id.AccountID,
			Issuer:    s.issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			NotBefore: gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}
	if s.audience != "" {
		c.Audience = gojwt.ClaimStrings{s.audience}
	}

	return gojwt.NewWithClaims(gojwt.SigningMethodHS256, c).SignedString(s.key)
}

func (s *Service) Verify(_ context.Context, token string) (auth.Claims, error) {
	if len(s.key) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}

	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(s.now),
		gojwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, gojwt.WithAudience(s.audience))
	}

	var c claims
	parsed, err := gojwt.ParseWithClaims(strings.TrimSpace(token), &c, func(*gojwt.Token) (any, error) {
		return s.key, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, gojwt.ErrTokenExpired) {
			return auth.Claims{}, apperr.Wrap(apperr.KindUnauthorized, "jwt.Verify", ErrTokenExpired)
		}
		return auth.Claims{}, apperr.Wrap(apperr.KindUnauthorized, "jwt.Verify", ErrTokenInvalid)
	}
	if !parsed.Valid || c.Subject == "" {
		return auth.Claims{}, apperr.Wrap(apperr.KindUnauthorized, "jwt.Verify", ErrTokenInvalid)
	}

	out := auth.Claims{
		AccountID: c.Subject,
		Email:     c.Email,
		TokenID:   c.ID,
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out, nil
}
