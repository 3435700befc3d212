package checkchain

import (
	"fmt"
	"strings"
)

// RequiredString checks that a string property is not empty after trimming
// whitespace.
func RequiredString[S any](property string, get func(S) string) Check[S] {
	return Check[S]{
		Property: property,
		Message:  "field is required",
		Eval: func(subject S) bool {
			return strings.TrimSpace(get(subject)) != ""
		},
	}
}

func MinLenString[S any](property string, get func(S) string, min int) Check[S] {
	return Check[S]{
		Property: property,
		Message:  fmt.Sprintf("must be at least %d characters long", min),
		Eval: func(subject S) bool {
			return len(get(subject)) >= min
		},
	}
}

func MaxLenString[S any](property string, get func(S) string, max int) Check[S] {
	return Check[S]{
		Property: property,
		Message:  fmt.Sprintf("must be at most %d characters long", max),
		Eval: func(subject S) bool {
			return len(get(subject)) <= max
		},
	}
}

func LenString[S any](property string, get func(S) string, exact int) Check[S] {
	return Check[S]{
		Property: property,
		Message:  fmt.Sprintf("must be exactly %d characters long", exact),
		Eval: func(subject S) bool {
			return len(get(subject)) == exact
		},
	}
}
