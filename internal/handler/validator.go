package handler

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	cardPattern  = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{4}$`)
	phonePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}-\d{2}$`)
)

// Validator adapts go-playground/validator to echo's Validator
// interface and registers the custom card and phone format checks used
// by the customer payloads.
type Validator struct {
	v *validator.Validate
}

// NewValidator builds the validator used by every handler.
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("cardformat", func(fl validator.FieldLevel) bool {
		return cardPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phoneformat", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &Validator{v: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.v.Struct(i)
}
