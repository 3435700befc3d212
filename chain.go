package checkchain

import "strconv"

// Chain validates one subject through an ordered sequence of property
// checks. Create it with Begin; the zero value is not usable.
//
// A chain is bound to a single subject for its whole life and is meant for
// single-goroutine use: Check is a read-then-append on the internal result
// slice and is not synchronized.
type Chain[S any] struct {
	subject    S
	results    []CheckResult
	failed     bool
	collectAll bool
}

// Begin constructs a chain bound to subject. No validation is performed
// until Check is called. Begin never fails.
func Begin[S any](subject S, opts ...Option) *Chain[S] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Chain[S]{
		subject:    subject,
		collectAll: cfg.collectAll,
	}
}

// Check evaluates the given checks in order, recording one CheckResult per
// check, and returns the receiver for chaining. Once a check has failed,
// subsequent checks are recorded as skipped without invoking their
// accessors or predicates, unless the chain was created with
// WithCollectAll. The subject is never mutated.
func (c *Chain[S]) Check(checks ...Check[S]) *Chain[S] {
	for _, check := range checks {
		// A check without an evaluation closure is a construction bug, not
		// a validation outcome.
		if check.Eval == nil {
			panic("checkchain: check for property " + strconv.Quote(check.Property) + " has no Eval func")
		}
		c.results = append(c.results, c.run(check))
	}
	return c
}

func (c *Chain[S]) run(check Check[S]) CheckResult {
	if c.failed && !c.collectAll {
		return CheckResult{Property: check.Property, Status: StatusSkipped}
	}

	ok, fault := evaluate(check, c.subject)
	switch {
	case fault:
		c.failed = true
		return CheckResult{Property: check.Property, Status: StatusFailed, Message: ErrAccessorFault.Error()}
	case !ok:
		c.failed = true
		return CheckResult{Property: check.Property, Status: StatusFailed, Message: check.Message}
	default:
		return CheckResult{Property: check.Property, Status: StatusPassed}
	}
}

// evaluate converts panics from broken accessors (nil dereference, absent
// path) into a fault instead of unwinding the caller.
func evaluate[S any](check Check[S], subject S) (ok, fault bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			fault = true
		}
	}()

	return check.Eval(subject), false
}

// Results returns a snapshot of the recorded results in evaluation order.
// Calling it repeatedly returns equal slices without re-evaluating any
// predicate.
func (c *Chain[S]) Results() []CheckResult {
	out := make([]CheckResult, len(c.results))
	copy(out, c.results)
	return out
}

// IsValid reports whether no recorded check has failed.
func (c *Chain[S]) IsValid() bool {
	return !c.failed
}

// FirstFailure returns the first failed result and true, or a zero result
// and false when every recorded check passed.
func (c *Chain[S]) FirstFailure() (CheckResult, bool) {
	for _, r := range c.results {
		if r.Status == StatusFailed {
			return r, true
		}
	}
	return CheckResult{}, false
}

// Err returns the failed results as a FieldErrors error, or nil when the
// chain is valid. Skipped and passed results are not part of the error.
func (c *Chain[S]) Err() error {
	if !c.failed {
		return nil
	}

	var errs FieldErrors
	for _, r := range c.results {
		if r.Status == StatusFailed {
			errs = append(errs, FieldError{Field: r.Property, Message: r.Message})
		}
	}
	return errs
}
