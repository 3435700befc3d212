package checkchain

// Status is the outcome discriminant of a single check. Statuses are plain
// values compared with ==; there is no shared sentinel to compare against
// by identity.
type Status int

const (
	// StatusPassed means the predicate accepted the property value.
	StatusPassed Status = iota

	// StatusFailed means the predicate rejected the property value, or the
	// accessor faulted while producing it.
	StatusFailed

	// StatusSkipped means the check was never evaluated because an earlier
	// check in the chain had already failed.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// CheckResult is the immutable outcome of one check.
type CheckResult struct {
	// Property is the display name of the checked property. Recorded for
	// skipped checks too, so short-circuited sequences stay traceable.
	Property string

	// Status is the tri-state outcome of the check.
	Status Status

	// Message is the failure description. Empty unless Status is StatusFailed.
	Message string
}

// Passed reports whether the check was evaluated and accepted.
func (r CheckResult) Passed() bool { return r.Status == StatusPassed }

// Failed reports whether the check was evaluated and rejected, or faulted.
func (r CheckResult) Failed() bool { return r.Status == StatusFailed }

// Skipped reports whether the check was short-circuited away.
func (r CheckResult) Skipped() bool { return r.Status == StatusSkipped }
