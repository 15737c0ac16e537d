package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidToken       = errors.New("invalid session token")
	ErrTokenNotFound      = errors.New("session token not found")
	ErrListingNotFound    = errors.New("listing not found")
)

// Validation failure reasons. They key the machine-readable part of a
// ValidationError so callers can react without parsing messages.
const (
	ReasonMissingField     = "missing_field"
	ReasonInvalidEnum      = "invalid_enum"
	ReasonUnderage         = "underage"
	ReasonPasswordMismatch = "password_mismatch"
	ReasonDuplicateEmail   = "duplicate_email"
	ReasonInvalidField     = "invalid_field"
)

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// ValidationError aggregates field-keyed validation failures. It is
// recoverable and renders as a 400 with one entry per field.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError builds a ValidationError with a single field entry.
func NewValidationError(field, reason, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason, Message: message}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field entry and returns the receiver for chaining.
func (e *ValidationError) Add(field, reason, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason, Message: message})
	return e
}

// HasReason reports whether any field failed for the given reason.
func (e *ValidationError) HasReason(reason string) bool {
	for _, f := range e.Fields {
		if f.Reason == reason {
			return true
		}
	}
	return false
}
