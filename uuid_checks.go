package checkchain

import (
	"strings"

	"github.com/google/uuid"
)

// ValidUUID checks that a string property is a standard UUID. Length and
// hyphen positions are verified before parsing to reject garbage cheaply.
func ValidUUID[S any](property string, get func(S) string) Check[S] {
	return Check[S]{
		Property: property,
		Message:  "must be a valid UUID",
		Eval: func(subject S) bool {
			value := get(subject)
			if strings.TrimSpace(value) == "" {
				return false
			}

			if len(value) != 36 {
				return false
			}

			if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}

			_, err := uuid.Parse(value)
			return err == nil
		},
	}
}

// NonNilUUID checks that a uuid.UUID property is not the nil UUID.
func NonNilUUID[S any](property string, get func(S) uuid.UUID) Check[S] {
	return Check[S]{
		Property: property,
		Message:  "UUID cannot be nil",
		Eval: func(subject S) bool {
			return get(subject) != uuid.Nil
		},
	}
}
