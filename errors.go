package checkchain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidationFailed is the generic failure used when no specific
	// message is available.
	ErrValidationFailed = errors.New("validation failed")

	// ErrAccessorFault is recorded as the failure message when a property
	// accessor panics instead of producing a value. Accessor faults are
	// validation failures, not chain failures; they never propagate to the
	// caller.
	ErrAccessorFault = errors.New("property accessor failed")
)

// FieldError describes a single failed check.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is the error form of a chain's failed results.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the field has at least one recorded failure.
func (fe FieldErrors) Has(field string) bool {
	for _, err := range fe {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns every failure message recorded for the field.
func (fe FieldErrors) Get(field string) []string {
	var messages []string
	for _, err := range fe {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct failed field names in first-failure order.
func (fe FieldErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range fe {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// ExtractFieldErrors extracts FieldErrors from an error, or returns nil if
// the error does not carry any.
func ExtractFieldErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}

	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}

	return nil
}

// IsFieldError reports whether the error carries FieldErrors.
func IsFieldError(err error) bool {
	if err == nil {
		return false
	}

	var fieldErrs FieldErrors
	return errors.As(err, &fieldErrs)
}
