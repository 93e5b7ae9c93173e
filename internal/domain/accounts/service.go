package accounts

import (
	"context"
	"strings"

	"people-directory/internal/platform/apperr"
	"people-directory/internal/platform/logger"
	"people-directory/internal/platform/metrics"
	"people-directory/internal/ports/auth"
	"people-directory/internal/ports/storage"
)

type Service struct {
	store   Storer
	hasher  PasswordHasher
	tokens  auth.TokenIssuer
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewService(store Storer, hasher PasswordHasher, tokens auth.TokenIssuer, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store:   store,
		hasher:  hasher,
		tokens:  tokens,
		log:     log.With(map[string]any{"component": "accounts.service"}),
		metrics: m,
	}
}

// AddAccount hashea el password antes de construir la cuenta.
func (s *Service) AddAccount(ctx context.Context, in NewAccount) (string, error) {
	const op = "accounts.AddAccount"

	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return "", apperr.New(apperr.KindInvalidInput, "email and password are required")
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.log.Error("hashing password", map[string]any{"op": op, "error": err})
		return "", apperr.Wrap(apperr.KindCreateAccount, op, err)
	}

	id, err := s.store.AddAccount(ctx, Account{
		ID:       newAccountID(),
		Email:    email,
		Password: digest,
	})
	if err != nil {
		if storage.IsDuplicate(err) {
			s.log.Warn("account already registered", map[string]any{"op": op, "email": email})
			return "", apperr.Wrap(apperr.KindDuplicateAccount, op, err)
		}
		s.log.Error("adding account into repository", map[string]any{"op": op, "email": email, "error": err})
		return "", apperr.Wrap(apperr.KindCreateAccount, op, err)
	}

	s.metrics.IncAccountsCreated()
	s.log.Info("account created", map[string]any{"account_id": id})
	return id, nil
}

// Login devuelve un token firmado. Cuenta inexistente y falla del backend
// comparten GetAccount; la diferencia queda solo en logs.
func (s *Service) Login(ctx context.Context, in Login) (string, error) {
	const op = "accounts.Login"

	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return "", apperr.New(apperr.KindInvalidInput, "email and password are required")
	}

	acc, err := s.store.GetAccount(ctx, email)
	if err != nil {
		fields := map[string]any{"op": op, "email": email, "error": err}
		if storage.IsNotFound(err) {
			s.log.Info("login for unknown account", fields)
		} else {
			s.log.Error("getting account", fields)
		}
		s.metrics.IncLogins("get_account")
		return "", apperr.Wrap(apperr.KindGetAccount, op, err)
	}

	ok, err := s.hasher.Verify(acc.Password, in.Password)
	if err != nil {
		s.log.Error("verifying login password", map[string]any{"op": op, "account_id": acc.ID, "error": err})
		s.metrics.IncLogins("error")
		return "", apperr.Wrap(apperr.KindLogin, op, err)
	}
	if !ok {
		s.metrics.IncLogins("wrong_password")
		return "", apperr.Wrap(apperr.KindWrongPassword, op, nil)
	}

	token, err := s.tokens.Issue(ctx, auth.Identity{AccountID: acc.ID, Email: acc.Email})
	if err != nil {
		s.log.Error("issuing token", map[string]any{"op": op, "account_id": acc.ID, "error": err})
		s.metrics.IncLogins("error")
		return "", apperr.Wrap(apperr.KindLogin, op, err)
	}

	s.metrics.IncLogins("ok")
	s.log.Debug("login was successful", map[string]any{"account_id": acc.ID})
	return strings.TrimSpace(token), nil
}
