package domain

import "time"

// AccountKind distinguishes the two kinds of marketplace accounts.
type AccountKind string

const (
	KindCustomer AccountKind = "customer"
	KindCompany  AccountKind = "company"
)

// Trades is the fixed catalog of trade categories. It constrains both a
// company account's field_of_work and a listing's category.
var Trades = []string{
	"Air Conditioner",
	"All in One",
	"Carpentry",
	"Electricity",
	"Gardening",
	"Home Machines",
	"Housekeeping",
	"Interior Design",
	"Locks",
	"Painting",
	"Plumbing",
	"Water Heaters",
}

// IsTrade reports whether value is one of the catalog trades.
func IsTrade(value string) bool {
	for _, t := range Trades {
		if t == value {
			return true
		}
	}
	return false
}

// Account models a registered actor: either a customer or a company.
// Exactly one of DateOfBirth / FieldOfWork is set, determined by Kind.
type Account struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Kind         AccountKind `json:"kind"`
	DateOfBirth  *time.Time  `json:"date_of_birth,omitempty"`
	FieldOfWork  string      `json:"field_of_work,omitempty"`
	Active       bool        `json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
}

// IsCustomer reports whether the account is of the customer kind.
func (a *Account) IsCustomer() bool { return a.Kind == KindCustomer }

// IsCompany reports whether the account is of the company kind.
func (a *Account) IsCompany() bool { return a.Kind == KindCompany }

// CheckKindFields verifies the kind-specific field invariant: a customer
// carries a date of birth and no field of work, a company the reverse.
// It runs before every account write, not only at registration.
func (a *Account) CheckKindFields() error {
	switch a.Kind {
	case KindCustomer:
		if a.DateOfBirth == nil {
			return NewValidationError("date_of_birth", ReasonMissingField, "date of birth is required")
		}
		if a.FieldOfWork != "" {
			return NewValidationError("field_of_work", ReasonInvalidField, "field of work is not a customer attribute")
		}
	case KindCompany:
		if a.FieldOfWork == "" {
			return NewValidationError("field_of_work", ReasonMissingField, "field of work is required")
		}
		if !IsTrade(a.FieldOfWork) {
			return NewValidationError("field_of_work", ReasonInvalidEnum, "field of work is not in the trade catalog")
		}
		if a.DateOfBirth != nil {
			return NewValidationError("date_of_birth", ReasonInvalidField, "date of birth is not a company attribute")
		}
	default:
		return NewValidationError("kind", ReasonInvalidEnum, "unknown account kind")
	}
	return nil
}

// Age returns the account holder's age in full calendar years at the given
// date. The month/day comparison subtracts a year when the birthday has not
// yet occurred, so someone turns 18 exactly on their 18th birthday.
func Age(dob, at time.Time) int {
	years := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		years--
	}
	return years
}
