// Package validator adapts the shared struct validator to echo.
package validator

import (
	"net/http"

	"fragments/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{validator: validation.New()}
}

// Validate reports failures as 400s so they pass through the error handler unchanged.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validation.Describe(err))
	}

	return nil
}
