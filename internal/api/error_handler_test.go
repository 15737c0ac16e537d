package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/handylink/marketplace-api/internal/core/domain"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"disabled account", domain.ErrAccountDisabled, http.StatusForbidden, "account disabled"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid session token"},
		{"already logged out", domain.ErrTokenNotFound, http.StatusNotFound, "already logged out"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"duplicate email", domain.ErrDuplicateEmail, http.StatusBadRequest, "email already registered"},
		{"listing not found", domain.ErrListingNotFound, http.StatusNotFound, "listing not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := handleError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("login: store lookup"), domain.ErrInvalidCredentials)
	rec := handleError(t, wrapped)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrapped error, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_ValidationError(t *testing.T) {
	verr := domain.NewValidationError("email", domain.ReasonMissingField, "email is required")
	verr.Add("date_of_birth", domain.ReasonUnderage, "must be at least 18 years old")

	rec := handleError(t, verr)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp validationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Errors["email"] != "email is required" {
		t.Fatalf("missing email error: %v", resp.Errors)
	}
	if resp.Errors["date_of_birth"] != "must be at least 18 years old" {
		t.Fatalf("missing date_of_birth error: %v", resp.Errors)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "invalid payload" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorMasked(t *testing.T) {
	rec := handleError(t, errors.New("mongo: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "internal server error" {
		t.Fatalf("internal details must not leak: %q", resp.Error)
	}
}
