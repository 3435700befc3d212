package checkchain

import "fmt"

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// RequiredNum checks that a numeric property is not zero.
func RequiredNum[S any, T Numeric](property string, get func(S) T) Check[S] {
	return Check[S]{
		Property: property,
		Message:  "field is required",
		Eval: func(subject S) bool {
			var zero T
			return get(subject) != zero
		},
	}
}

// MinNum checks that a numeric property is greater than or equal to min.
func MinNum[S any, T Numeric](property string, get func(S) T, min T) Check[S] {
	return Check[S]{
		Property: property,
		Message:  fmt.Sprintf("must be at least %v", min),
		Eval: func(subject S) bool {
			return get(subject) >= min
		},
	}
}

// MaxNum checks that a numeric property is less than or equal to max.
func MaxNum[S any, T Numeric](property string, get func(S) T, max T) Check[S] {
	return Check[S]{
		Property: property,
		Message:  fmt.Sprintf("must be at most %v", max),
		Eval: func(subject S) bool {
			return get(subject) <= max
		},
	}
}

// BetweenNum checks that a numeric property lies in [min, max].
func BetweenNum[S any, T Numeric](property string, get func(S) T, min, max T) Check[S] {
	return Check[S]{
		Property: property,
		Message:  fmt.Sprintf("must be between %v and %v", min, max),
		Eval: func(subject S) bool {
			v := get(subject)
			return v >= min && v <= max
		},
	}
}
