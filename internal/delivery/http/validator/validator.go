// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a shared validate instance for echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and returns the raw validation error; the
// handler decides how to shape it for the client.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
