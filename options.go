package planarity

// Option configures a non-default Planar run. Ordinary callers pass none:
// Planar's contract is a pure function of its input graph, with no
// configuration surface. Option exists solely for differential testing of
// the Euler-bound fast rejection against the full two-phase test.
type Option func(*config)

type config struct {
	eulerBound bool
}

func resolveOptions(opts []Option) *config {
	cfg := &config{eulerBound: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithEulerBoundDisabled skips the m > 3n-6 fast rejection, forcing every
// component through the full two-phase test regardless of its edge count.
// Without it, K5 (10 edges > 3*5-6) never reaches phase 2 at all; tests
// that want to exercise add_constraints's failure path on such a dense
// graph need this. K3,3 (9 edges <= 3*6-6) passes the bound either way.
func WithEulerBoundDisabled() Option {
	return func(cfg *config) {
		cfg.eulerBound = false
	}
}
