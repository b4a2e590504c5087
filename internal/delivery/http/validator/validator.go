// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "storefront/internal/domain/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the validator echo uses for c.Validate calls.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks struct tags and converts failures into the shared error
// envelope instead of leaking validator internals.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
