// Package checkchain provides a fluent, type-safe validation chain over a
// single subject value and its named properties.
//
// A chain is created from the subject with Begin and fed a sequence of
// checks, each one an (accessor, predicate, message) triple built either
// with the generic Prop constructor or with one of the ready-made builders
// (RequiredString, MinNum, ValidEmail, ValidUUID, ...). Every check yields
// one CheckResult; the results keep evaluation order and are inspected
// through Results, IsValid, FirstFailure or Err.
//
// # Short-circuiting
//
// By default the chain fails fast: once a check fails, the remaining checks
// are recorded as skipped and their accessors and predicates are never
// invoked. This makes expensive predicates after a known failure free. Pass
// WithCollectAll to Begin to evaluate every check and collect every
// failure instead.
//
// # Usage
//
//	type User struct {
//		Name string
//		Age  int
//	}
//
//	chain := checkchain.Begin(user).Check(
//		checkchain.Prop("Name",
//			func(u User) string { return u.Name },
//			func(name string) bool { return strings.TrimSpace(name) != "" },
//			"Name cannot be empty"),
//		checkchain.MinNum("Age", func(u User) int { return u.Age }, 18),
//	)
//
//	if !chain.IsValid() {
//		if failure, ok := chain.FirstFailure(); ok {
//			// failure.Property, failure.Message
//		}
//	}
//
// # Error Handling
//
// Predicate rejections and accessor faults are recorded as failed results,
// never raised: a panicking accessor (nil dereference, absent path) is
// converted into a failed result carrying the ErrAccessorFault message, and
// later checks still skip as usual. Err bubbles the failed results as a
// FieldErrors value implementing the error interface, extractable with
// errors.As or ExtractFieldErrors. Only malformed construction (a check
// without an Eval closure) panics.
//
// # Concurrency
//
// A chain is bound to one subject and meant for single-goroutine use; Check
// is a read-then-append on the internal result slice and is not
// synchronized. The subject itself is never mutated.
package checkchain
