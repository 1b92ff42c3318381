// Package validator adapts the shared go-playground engine to echo.Validator.
package validator

import (
	"crm/internal/domain/validation"
	"crm/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	engine *validator.Validate
}

// New returns an echo.Validator whose failures are VALIDATION_FAILED errors listing every field.
func New() echo.Validator {
	return &requestValidator{engine: validation.Engine()}
}

// Validate checks the `validate` tags of a request struct.
func (v *requestValidator) Validate(i any) error {
	err := v.engine.Struct(i)
	if err == nil {
		return nil
	}

	if violations := validation.FromError("", err); len(violations) > 0 {
		return violations.Err()
	}

	return errors.Wrap(err, "failed to validate request")
}
