package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
		return domain.IsStrongPassword(fl.Field().String())
	})
}

// isEmail runs the standard email-format check on a single value.
func isEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// isStrongPassword runs the registered password_strength rule, keeping the
// wire-level check and any tag usage on the same code path.
func isStrongPassword(s string) bool {
	return validate.Var(s, "password_strength") == nil
}

// checkRequired validates a struct's `validate:"required"` tags and collapses
// any failure into the demo's blanket missing-fields error.
func checkRequired(req any) error {
	if err := validate.Struct(req); err != nil {
		return domain.ErrMissingFields()
	}
	return nil
}
