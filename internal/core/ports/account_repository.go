package ports

import (
	"context"

	"github.com/handylink/marketplace-api/internal/core/domain"
)

// AccountRepository defines the persistence contract for accounts.
// Create must rely on a store-level unique constraint for the email and
// surface a collision as domain.ErrDuplicateEmail, so concurrent
// registrations of the same address resolve to exactly one account.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}
