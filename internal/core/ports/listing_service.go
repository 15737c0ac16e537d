package ports

import (
	"context"

	"github.com/handylink/marketplace-api/internal/core/domain"
)

// CreateListingInput carries the fields of a listing creation request.
type CreateListingInput struct {
	Name         string
	Description  string
	PricePerHour float64
	Category     string
}

// ListingService creates and lists service offerings. Creation is restricted
// to company accounts; non-company actors are rejected with
// domain.ErrForbidden.
type ListingService interface {
	Create(ctx context.Context, actor *domain.Account, in CreateListingInput) (*domain.ServiceListing, error)
	List(ctx context.Context, filter ListingFilter) ([]domain.ServiceListing, error)
}
