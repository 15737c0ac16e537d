package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/handylink/marketplace-api/internal/core/domain"
	"github.com/handylink/marketplace-api/internal/core/ports"
)

// ListingService creates and lists service offerings.
type ListingService struct {
	listings ports.ListingRepository
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewListingService(listings ports.ListingRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ListingService {
	if audit == nil {
		audit = nopRecorder{}
	}
	return &ListingService{listings: listings, audit: audit, logger: logger}
}

// Create persists a new listing owned by the acting company account.
// Non-company actors are rejected with domain.ErrForbidden before any field
// validation or persistence.
func (s *ListingService) Create(ctx context.Context, actor *domain.Account, in ports.CreateListingInput) (*domain.ServiceListing, error) {
	if actor == nil || !actor.IsCompany() {
		return nil, domain.ErrForbidden
	}

	if verr := validateListing(in); verr != nil {
		return nil, verr
	}

	listing := &domain.ServiceListing{
		CompanyID:    actor.ID,
		Name:         in.Name,
		Description:  in.Description,
		PricePerHour: in.PricePerHour,
		Category:     in.Category,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.listings.Create(ctx, listing)
	if err != nil {
		s.logger.Error().Err(err).Str("company_id", actor.ID).Msg("listing creation failed")
		return nil, err
	}

	s.logger.Info().
		Str("listing_id", created.ID).
		Str("company_id", actor.ID).
		Str("category", created.Category).
		Msg("listing created")
	s.audit.Record(ports.AuditEventInput{
		Actor:     actor.Email,
		AccountID: actor.ID,
		Action:    domain.AuditListingCreated,
		Outcome:   "ok",
		Timestamp: created.CreatedAt,
	})

	return created, nil
}

// List returns listings matching the filter.
func (s *ListingService) List(ctx context.Context, filter ports.ListingFilter) ([]domain.ServiceListing, error) {
	if filter.Category != "" && !domain.IsTrade(filter.Category) {
		return nil, domain.NewValidationError("category", domain.ReasonInvalidEnum, "category is not in the trade catalog")
	}
	return s.listings.List(ctx, filter)
}

func validateListing(in ports.CreateListingInput) *domain.ValidationError {
	var verr *domain.ValidationError

	add := func(field, reason, message string) {
		if verr == nil {
			verr = domain.NewValidationError(field, reason, message)
			return
		}
		verr.Add(field, reason, message)
	}

	if in.Name == "" {
		add("name", domain.ReasonMissingField, "name is required")
	}
	if in.PricePerHour < 0 {
		add("price_per_hour", domain.ReasonInvalidField, "price per hour must not be negative")
	}
	if in.Category == "" {
		add("category", domain.ReasonMissingField, "category is required")
	} else if !domain.IsTrade(in.Category) {
		add("category", domain.ReasonInvalidEnum, "category is not in the trade catalog")
	}

	return verr
}
