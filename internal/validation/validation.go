// Package validation configures the struct validator shared by the client and the stub store.
package validation

import (
	"fragments/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// TagFragmentType accepts a string whose media type is a supported fragment type.
const TagFragmentType = "fragment_type"

// New returns a validator with the fragment rules registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(TagFragmentType, func(fl validator.FieldLevel) bool {
		return entity.FragmentType(fl.Field().String()).IsValid()
	})

	return v
}

// Describe flattens validation errors into "Field: rule" pairs for diagnostics.
func Describe(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	out := ""
	for i, fe := range errs {
		if i > 0 {
			out += "; "
		}
		out += fe.Field() + ": failed " + fe.Tag()
		if fe.Param() != "" {
			out += "=" + fe.Param()
		}
	}

	return out
}
