package domain

import "time"

// ServiceListing is a service offering published by a company account.
type ServiceListing struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PricePerHour float64   `json:"price_per_hour"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
}
