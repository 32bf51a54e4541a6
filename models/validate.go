package models

import validator "github.com/go-playground/validator/v10"

// NewValidator returns the validator used for all inbound payloads.
// Constraints live in the `validate` struct tags on the model types.
func NewValidator() *validator.Validate {
	return validator.New()
}
