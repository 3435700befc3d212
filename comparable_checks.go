package checkchain

import "fmt"

// RequiredComparable checks that a comparable property is not its zero value.
func RequiredComparable[S any, T comparable](property string, get func(S) T) Check[S] {
	return Check[S]{
		Property: property,
		Message:  "field is required",
		Eval: func(subject S) bool {
			var zero T
			return get(subject) != zero
		},
	}
}

// EqualTo checks that a comparable property equals the expected value.
func EqualTo[S any, T comparable](property string, get func(S) T, expected T) Check[S] {
	return Check[S]{
		Property: property,
		Message:  fmt.Sprintf("must equal %v", expected),
		Eval: func(subject S) bool {
			return get(subject) == expected
		},
	}
}
