package checkchain

import "fmt"

func RequiredSlice[S, T any](property string, get func(S) []T) Check[S] {
	return Check[S]{
		Property: property,
		Message:  "field is required",
		Eval: func(subject S) bool {
			return len(get(subject)) > 0
		},
	}
}

func MinLenSlice[S, T any](property string, get func(S) []T, min int) Check[S] {
	return Check[S]{
		Property: property,
		Message:  fmt.Sprintf("must have at least %d items", min),
		Eval: func(subject S) bool {
			return len(get(subject)) >= min
		},
	}
}

func MaxLenSlice[S, T any](property string, get func(S) []T, max int) Check[S] {
	return Check[S]{
		Property: property,
		Message:  fmt.Sprintf("must have at most %d items", max),
		Eval: func(subject S) bool {
			return len(get(subject)) <= max
		},
	}
}

func RequiredMap[S any, K comparable, V any](property string, get func(S) map[K]V) Check[S] {
	return Check[S]{
		Property: property,
		Message:  "field is required",
		Eval: func(subject S) bool {
			return len(get(subject)) > 0
		},
	}
}
