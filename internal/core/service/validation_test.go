package service

import (
	"testing"
	"time"

	"github.com/handylink/marketplace-api/internal/core/domain"
	"github.com/handylink/marketplace-api/internal/core/ports"
)

// The birthday boundary is checked against a fixed "today" so the test does
// not depend on the wall clock.
func TestValidateRegistration_BirthdayBoundary(t *testing.T) {
	today := time.Date(2026, time.August, 29, 13, 37, 0, 0, time.UTC)

	cases := []struct {
		name     string
		dob      time.Time
		underage bool
	}{
		{"18th birthday today", time.Date(2008, time.August, 29, 0, 0, 0, 0, time.UTC), false},
		{"18 tomorrow", time.Date(2008, time.August, 30, 0, 0, 0, 0, time.UTC), true},
		{"18 yesterday", time.Date(2008, time.August, 28, 0, 0, 0, 0, time.UTC), false},
		{"far too young", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dob := tc.dob
			verr := validateRegistration(ports.RegisterInput{
				Kind:            domain.KindCustomer,
				Email:           "kid@example.com",
				Username:        "kid",
				Password:        "sup3rsecret",
				PasswordConfirm: "sup3rsecret",
				DateOfBirth:     &dob,
			}, today)

			if tc.underage {
				if verr == nil || !verr.HasReason(domain.ReasonUnderage) {
					t.Fatalf("expected underage rejection, got %v", verr)
				}
			} else if verr != nil {
				t.Fatalf("expected acceptance, got %v", verr)
			}
		})
	}
}

func TestValidateRegistration_EmailSyntax(t *testing.T) {
	dob := time.Date(1990, time.May, 5, 0, 0, 0, 0, time.UTC)
	in := ports.RegisterInput{
		Kind:            domain.KindCustomer,
		Email:           "not-an-email",
		Username:        "alice",
		Password:        "sup3rsecret",
		PasswordConfirm: "sup3rsecret",
		DateOfBirth:     &dob,
	}

	verr := validateRegistration(in, time.Now().UTC())
	if verr == nil || !verr.HasReason(domain.ReasonInvalidField) {
		t.Fatalf("expected invalid email rejection, got %v", verr)
	}
}

func TestValidateRegistration_CollectsAllFailures(t *testing.T) {
	verr := validateRegistration(ports.RegisterInput{
		Kind:            domain.KindCompany,
		Email:           "",
		Username:        "",
		Password:        "a",
		PasswordConfirm: "b",
		FieldOfWork:     "Alchemy",
	}, time.Now().UTC())

	if verr == nil {
		t.Fatalf("expected validation failure")
	}
	for _, reason := range []string{
		domain.ReasonMissingField,
		domain.ReasonPasswordMismatch,
		domain.ReasonInvalidEnum,
	} {
		if !verr.HasReason(reason) {
			t.Fatalf("missing reason %s in %v", reason, verr)
		}
	}
}

func TestValidateRegistration_CrossKindFields(t *testing.T) {
	dob := time.Date(1990, time.May, 5, 0, 0, 0, 0, time.UTC)

	// A company registration carrying a date of birth is rejected.
	verr := validateRegistration(ports.RegisterInput{
		Kind:            domain.KindCompany,
		Email:           "acme@example.com",
		Username:        "acme",
		Password:        "sup3rsecret",
		PasswordConfirm: "sup3rsecret",
		FieldOfWork:     "Locks",
		DateOfBirth:     &dob,
	}, time.Now().UTC())
	if verr == nil || !verr.HasReason(domain.ReasonInvalidField) {
		t.Fatalf("company with date_of_birth accepted: %v", verr)
	}

	// A customer registration carrying a field of work is rejected.
	verr = validateRegistration(ports.RegisterInput{
		Kind:            domain.KindCustomer,
		Email:           "alice@example.com",
		Username:        "alice",
		Password:        "sup3rsecret",
		PasswordConfirm: "sup3rsecret",
		DateOfBirth:     &dob,
		FieldOfWork:     "Locks",
	}, time.Now().UTC())
	if verr == nil || !verr.HasReason(domain.ReasonInvalidField) {
		t.Fatalf("customer with field_of_work accepted: %v", verr)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := normalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}
