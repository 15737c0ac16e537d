package ports

import (
	"context"
	"time"

	"github.com/handylink/marketplace-api/internal/core/domain"
)

// RegisterInput carries the fields of a registration request. Kind selects
// which kind-specific field is required; the other must stay unset.
type RegisterInput struct {
	Kind            domain.AccountKind
	Email           string
	Username        string
	Password        string
	PasswordConfirm string
	DateOfBirth     *time.Time // customer only
	FieldOfWork     string     // company only
}

// Session pairs an account with its live bearer token.
type Session struct {
	Account *domain.Account
	Token   string
}

// AuthService covers the account lifecycle in scope: registration of both
// account kinds, login/logout, and token-to-account resolution.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.Account, error)
}
