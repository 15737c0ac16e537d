package ports

import (
	"context"

	"github.com/handylink/marketplace-api/internal/core/domain"
)

// ListingFilter narrows a listing query. Zero values mean "no filter".
type ListingFilter struct {
	Category  string
	CompanyID string
}

// ListingRepository defines the persistence contract for service listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.ServiceListing) (*domain.ServiceListing, error)
	List(ctx context.Context, filter ListingFilter) ([]domain.ServiceListing, error)
}
