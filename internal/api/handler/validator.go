package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/handylink/marketplace-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Failures surface as domain.ValidationError, so request-shape validation and
// business validation render the same field-keyed 400.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	// Report fields under their json names, matching the response shape.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	var verr *domain.ValidationError
	for _, fe := range ve {
		field := fe.Field()
		reason, message := fieldError(field, fe)
		if verr == nil {
			verr = domain.NewValidationError(field, reason, message)
			continue
		}
		verr.Add(field, reason, message)
	}
	return verr
}

// fieldError converts a single ValidationError into a reason and a
// human-readable message.
func fieldError(field string, fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "required":
		return domain.ReasonMissingField, field + " is required"
	case "email":
		return domain.ReasonInvalidField, field + " must be a valid email"
	case "gt":
		return domain.ReasonInvalidField, fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return domain.ReasonInvalidField, fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return domain.ReasonInvalidField, fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return domain.ReasonInvalidEnum, fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return domain.ReasonInvalidField, fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
