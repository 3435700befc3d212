package checkchain

import (
	"fmt"
	"slices"
)

// InList checks that a property value is one of the allowed values.
func InList[S any, T comparable](property string, get func(S) T, allowed []T) Check[S] {
	return Check[S]{
		Property: property,
		Message:  fmt.Sprintf("must be one of: %v", allowed),
		Eval: func(subject S) bool {
			return slices.Contains(allowed, get(subject))
		},
	}
}

// NotInList checks that a property value is none of the forbidden values.
func NotInList[S any, T comparable](property string, get func(S) T, forbidden []T) Check[S] {
	return Check[S]{
		Property: property,
		Message:  fmt.Sprintf("must not be one of: %v", forbidden),
		Eval: func(subject S) bool {
			return !slices.Contains(forbidden, get(subject))
		},
	}
}
