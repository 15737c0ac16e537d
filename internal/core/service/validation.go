package service

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/handylink/marketplace-api/internal/core/domain"
	"github.com/handylink/marketplace-api/internal/core/ports"
)

const minimumAge = 18

// fieldValidator performs single-value syntax checks (email format).
var fieldValidator = validator.New()

// normalizeEmail lowercases and trims an address. Applied before every
// lookup and write so uniqueness is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateRegistration enforces the cross-field registration invariants for
// both account kinds. It is the one validation routine shared by the
// customer and company flows; only the duplicate-email check is left to the
// store's unique constraint. A nil return means the input is acceptable.
func validateRegistration(in ports.RegisterInput, now time.Time) *domain.ValidationError {
	var verr *domain.ValidationError

	add := func(field, reason, message string) {
		if verr == nil {
			verr = domain.NewValidationError(field, reason, message)
			return
		}
		verr.Add(field, reason, message)
	}

	if in.Username == "" {
		add("username", domain.ReasonMissingField, "username is required")
	}

	email := normalizeEmail(in.Email)
	if email == "" {
		add("email", domain.ReasonMissingField, "email is required")
	} else if err := fieldValidator.Var(email, "email"); err != nil {
		add("email", domain.ReasonInvalidField, "email must be a valid address")
	}

	if in.Password == "" {
		add("password", domain.ReasonMissingField, "password is required")
	} else if in.Password != in.PasswordConfirm {
		add("password_confirm", domain.ReasonPasswordMismatch, "password confirmation does not match")
	}

	switch in.Kind {
	case domain.KindCustomer:
		if in.DateOfBirth == nil {
			add("date_of_birth", domain.ReasonMissingField, "date of birth is required")
		} else if domain.Age(*in.DateOfBirth, now) < minimumAge {
			add("date_of_birth", domain.ReasonUnderage, "you must be at least 18 years old to register")
		}
		if in.FieldOfWork != "" {
			add("field_of_work", domain.ReasonInvalidField, "field of work is not a customer attribute")
		}
	case domain.KindCompany:
		if in.FieldOfWork == "" {
			add("field_of_work", domain.ReasonMissingField, "field of work is required")
		} else if !domain.IsTrade(in.FieldOfWork) {
			add("field_of_work", domain.ReasonInvalidEnum, "field of work is not in the trade catalog")
		}
		if in.DateOfBirth != nil {
			add("date_of_birth", domain.ReasonInvalidField, "date of birth is not a company attribute")
		}
	default:
		add("kind", domain.ReasonInvalidEnum, "unknown account kind")
	}

	return verr
}
