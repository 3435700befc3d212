package checkchain

// Option configures a chain during construction.
type Option func(*config)

type config struct {
	collectAll bool
}

// WithCollectAll disables short-circuiting: every check is evaluated and
// every failure is recorded. The default is fail-fast, where checks after
// the first failure are recorded as skipped without invoking their
// accessors or predicates.
func WithCollectAll() Option {
	return func(cfg *config) {
		cfg.collectAll = true
	}
}
