package checkchain

// Check pairs a named property accessor with a predicate and a failure
// message. The value type of the property is erased into the Eval closure,
// so checks for differently typed properties of the same subject can live
// in one chain.
type Check[S any] struct {
	// Property is the human-readable name of the property under check,
	// recorded on every result produced for this check.
	Property string

	// Message describes the failure. Recorded only when the check fails.
	Message string

	// Eval extracts the property value from the subject and applies the
	// predicate. It must be deterministic and side-effect-free; the chain
	// invokes it at most once per check.
	Eval func(S) bool
}

// Prop builds a check from an (accessor, predicate, message) triple.
//
//	checkchain.Prop("Age",
//	    func(u User) int { return u.Age },
//	    func(age int) bool { return age >= 18 },
//	    "must be 18 or older")
//
// The ready-made builders in the *_checks.go files cover common cases;
// Prop is the escape hatch for everything else.
func Prop[S, V any](property string, get func(S) V, predicate func(V) bool, message string) Check[S] {
	return Check[S]{
		Property: property,
		Message:  message,
		Eval: func(subject S) bool {
			return predicate(get(subject))
		},
	}
}
