package handler

import "github.com/handylink/marketplace-api/internal/core/domain"

const dateLayout = "2006-01-02"

// The account representation is a closed pair of variants selected by kind.
// Each variant carries only its own kind-specific field, so a customer view
// can never leak a field_of_work key and a company view never a
// date_of_birth key.

type customerView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Kind        string `json:"kind"`
	DateOfBirth string `json:"date_of_birth"`
	CreatedAt   string `json:"created_at"`
}

type companyView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Kind        string `json:"kind"`
	FieldOfWork string `json:"field_of_work"`
	CreatedAt   string `json:"created_at"`
}

// accountView selects the representation variant for the account's kind.
func accountView(a *domain.Account) any {
	createdAt := a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z")
	if a.IsCompany() {
		return companyView{
			ID:          a.ID,
			Email:       a.Email,
			Username:    a.Username,
			Kind:        string(a.Kind),
			FieldOfWork: a.FieldOfWork,
			CreatedAt:   createdAt,
		}
	}

	dob := ""
	if a.DateOfBirth != nil {
		dob = a.DateOfBirth.Format(dateLayout)
	}
	return customerView{
		ID:          a.ID,
		Email:       a.Email,
		Username:    a.Username,
		Kind:        string(a.Kind),
		DateOfBirth: dob,
		CreatedAt:   createdAt,
	}
}
