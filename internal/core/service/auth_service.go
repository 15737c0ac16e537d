package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/handylink/marketplace-api/internal/core/domain"
	"github.com/handylink/marketplace-api/internal/core/ports"
)

// AuthService implements registration, login/logout and token resolution.
type AuthService struct {
	accounts ports.AccountRepository
	sessions ports.SessionIssuer
	creds    Credentials
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	sessions ports.SessionIssuer,
	creds Credentials,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *AuthService {
	if audit == nil {
		audit = nopRecorder{}
	}
	return &AuthService{
		accounts: accounts,
		sessions: sessions,
		creds:    creds,
		audit:    audit,
		logger:   logger,
	}
}

// Register validates the input for the requested kind, persists the account
// and issues its first session token. On any validation failure nothing is
// persisted. A duplicate email that slips past the pre-check in a race is
// surfaced by the store's unique constraint and reported the same way.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.Session, error) {
	now := time.Now().UTC()

	if verr := validateRegistration(in, now); verr != nil {
		return nil, verr
	}

	email := normalizeEmail(in.Email)
	if existing, err := s.accounts.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.NewValidationError("email", domain.ReasonDuplicateEmail, "email is already registered")
	} else if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := s.creds.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Email:        email,
		Username:     in.Username,
		PasswordHash: hash,
		Kind:         in.Kind,
		DateOfBirth:  in.DateOfBirth,
		FieldOfWork:  in.FieldOfWork,
		Active:       true,
		CreatedAt:    now,
	}
	// The kind-specific field invariant is re-checked at the write, not
	// only in request validation.
	if err := account.CheckKindFields(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return nil, verr
		}
		return nil, err
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.NewValidationError("email", domain.ReasonDuplicateEmail, "email is already registered")
		}
		s.logger.Error().Err(err).Str("kind", string(in.Kind)).Msg("account creation failed")
		return nil, err
	}

	token, err := s.sessions.Issue(ctx, created.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("account_id", created.ID).Msg("token issuance failed after registration")
		return nil, err
	}

	s.logger.Info().
		Str("account_id", created.ID).
		Str("kind", string(created.Kind)).
		Msg("account registered")
	s.audit.Record(ports.AuditEventInput{
		Actor:     created.Email,
		AccountID: created.ID,
		Action:    domain.AuditRegistered,
		Outcome:   "ok",
		Timestamp: now,
	})

	return &ports.Session{Account: created, Token: token}, nil
}

// Login verifies credentials and returns the account with its live token.
// The check order is fixed: existence, then active status, then credential.
// A missing account and a wrong password are indistinguishable to the
// caller; only a disabled account is reported separately.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	account, err := s.accounts.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.Active {
		return nil, domain.ErrAccountDisabled
	}

	if !s.creds.Verify(password, account.PasswordHash) {
		s.audit.Record(ports.AuditEventInput{
			Actor:     account.Email,
			AccountID: account.ID,
			Action:    domain.AuditLoggedIn,
			Outcome:   "bad_password",
			Timestamp: time.Now().UTC(),
		})
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", account.ID).Msg("login succeeded")
	s.audit.Record(ports.AuditEventInput{
		Actor:     account.Email,
		AccountID: account.ID,
		Action:    domain.AuditLoggedIn,
		Outcome:   "ok",
		Timestamp: time.Now().UTC(),
	})

	return &ports.Session{Account: account, Token: token}, nil
}

// Logout revokes the token. Revoking an already-revoked token reports
// domain.ErrTokenNotFound so the caller can treat it as already logged out.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	accountID, _ := s.sessions.Resolve(ctx, token)

	if err := s.sessions.Revoke(ctx, token); err != nil {
		return err
	}

	s.audit.Record(ports.AuditEventInput{
		AccountID: accountID,
		Action:    domain.AuditLoggedOut,
		Outcome:   "ok",
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// Authenticate resolves a bearer token to its live account.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	accountID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	if !account.Active {
		return nil, domain.ErrAccountDisabled
	}
	return account, nil
}

// nopRecorder drops audit events when no recorder is wired.
type nopRecorder struct{}

func (nopRecorder) Record(ports.AuditEventInput) {}
