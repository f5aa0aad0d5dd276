package validators

import "github.com/go-playground/validator/v10"

// New returns the validator instance shared by the engine services.
func New() *validator.Validate {
	return validator.New()
}
