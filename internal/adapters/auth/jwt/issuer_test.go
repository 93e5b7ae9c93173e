package jwt

import (
	"context"
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"people-directory/internal/platform/apperr"
	"people-directory/internal/ports/auth"
)

func testService() *Service {
	return NewService(Config{
		SigningKey: "test-key",
		Issuer:     "people-api",
		Audience:   "people-api-clients",
	})
}

func TestIssueAndVerify(t *testing.T) {
	s := testService()
	fixed := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	tok, err := s.Issue(context.Background(), auth.Identity{AccountID: "acc-1", Email: "a@b.com"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := s.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.NotEmpty(t, claims.TokenID)
	assert.True(t, claims.ExpiresAt.Equal(fixed.Add(DefaultTTL)))
}

func TestIssue_UniqueTokenIDs(t *testing.T) {
	s := testService()
	id := auth.Identity{AccountID: "acc-1"}

	t1, err := s.Issue(context.Background(), id)
	require.NoError(t, err)
	t2, err := s.Issue(context.Background(), id)
	require.NoError(t, err)

	c1, _ := s.Verify(context.Background(), t1)
	c2, _ := s.Verify(context.Background(), t2)
	assert.NotEqual(t, c1.TokenID, c2.TokenID)
}

func TestVerify_Expired(t *testing.T) {
	s := testService()
	issued := time.Now().Add(-3 * time.Hour)
	s.now = func() time.Time { return issued }

	tok, err := s.Issue(context.Background(), auth.Identity{AccountID: "acc-1"})
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Verify(context.Background(), tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenExpired))
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestVerify_Rejects(t *testing.T) {
	s := testService()
	tok, err := s.Issue(context.Background(), auth.Identity{AccountID: "acc-1"})
	require.NoError(t, err)

	other := NewService(Config{SigningKey: "other-key", Issuer: "people-api", Audience: "people-api-clients"})
	wrongAud := NewService(Config{SigningKey: "test-key", Issuer: "people-api", Audience: "somebody-else"})

	none, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sub": "acc-1"}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := []struct {
		name string
		svc  *Service
		tok  string
	}{
		{"wrong key", other, tok},
		{"wrong audience", wrongAud, tok},
		{"garbage", s, "not-a-token"},
		{"alg none", s, none},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.svc.Verify(context.Background(), tc.tok)
			assert.True(t, errors.Is(err, ErrTokenInvalid))
		})
	}
}

func TestNotConfigured(t *testing.T) {
	s := NewService(Config{})

	_, err := s.Issue(context.Background(), auth.Identity{AccountID: "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = s.Verify(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
