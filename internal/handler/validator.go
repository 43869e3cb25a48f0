package handler

import (
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo's Validator interface.
// It carries the custom `firstupper` rule used by genre names.
type Validator struct {
	v *validator.Validate
}

// NewValidator builds the request validator with all custom rules
// registered.  Registration can only fail for a blank tag name, so the
// error is ignored.
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("firstupper", firstUpper)
	return &Validator{v: v}
}

// Validate implements echo.Validator.
func (cv *Validator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// firstUpper passes when the field's first rune is an uppercase letter.
// Empty strings pass so that `required` stays the single source of the
// emptiness error.
func firstUpper(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
