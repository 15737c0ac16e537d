package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handylink/marketplace-api/internal/api/metrics"
	"github.com/handylink/marketplace-api/internal/core/domain"
	"github.com/handylink/marketplace-api/internal/core/ports"
)

// ListingHandler handles HTTP requests for service listings.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

type createListingRequest struct {
	Name         string  `json:"name"           validate:"required"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"price_per_hour" validate:"gte=0"`
	Category     string  `json:"category"       validate:"required"`
}

type listingResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"company_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"price_per_hour"`
	Category     string  `json:"category"`
	CreatedAt    string  `json:"created_at"`
}

type listListingsResponse struct {
	Listings []listingResponse `json:"listings"`
}

func toListingResponse(l *domain.ServiceListing) listingResponse {
	return listingResponse{
		ID:           l.ID,
		CompanyID:    l.CompanyID,
		Name:         l.Name,
		Description:  l.Description,
		PricePerHour: l.PricePerHour,
		Category:     l.Category,
		CreatedAt:    l.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// Create handles POST /v1/services.
//
// @Summary      Create a service listing
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createListingRequest  true  "Listing details"
// @Success      201   {object}  listingResponse
// @Failure      400   {object}  map[string]map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/services [post]
func (h *ListingHandler) Create(c echo.Context) error {
	account, err := ctxAccount(c)
	if err != nil {
		return err
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.service.Create(c.Request().Context(), account, ports.CreateListingInput{
		Name:         req.Name,
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		Category:     req.Category,
	})
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(listing.Category).Inc()
	return c.JSON(http.StatusCreated, toListingResponse(listing))
}

// List handles GET /v1/services.
//
// @Summary      List service listings
// @Tags         services
// @Produce      json
// @Param        category  query     string  false  "Filter by trade category"
// @Param        company   query     string  false  "Filter by owning company id"
// @Success      200       {object}  listListingsResponse
// @Failure      400       {object}  map[string]map[string]string
// @Router       /v1/services [get]
func (h *ListingHandler) List(c echo.Context) error {
	listings, err := h.service.List(c.Request().Context(), ports.ListingFilter{
		Category:  c.QueryParam("category"),
		CompanyID: c.QueryParam("company"),
	})
	if err != nil {
		return err
	}

	resp := listListingsResponse{Listings: make([]listingResponse, 0, len(listings))}
	for i := range listings {
		resp.Listings = append(resp.Listings, toListingResponse(&listings[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
