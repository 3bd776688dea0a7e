package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidYAML indicates YAML parsing failed
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrValidationFailed indicates configuration validation failed
	ErrValidationFailed = errors.New("configuration validation failed")
)

// ValidationError wraps configuration validation errors with context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for one field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
