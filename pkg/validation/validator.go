package validation

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts the validator engine to echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// NewEngine returns a validator with the dashboard rules registered.
// The rules are part of the startup contract, so a registration failure panics.
func NewEngine() *validator.Validate {
	v := validator.New()
	if err := registerRules(v); err != nil {
		panic("validation rules registration failed: " + err.Error())
	}
	return v
}

// New returns the echo-facing validator.
func New() *CustomValidator {
	return &CustomValidator{validator: NewEngine()}
}
