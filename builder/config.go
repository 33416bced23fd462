package builder

import "strconv"

// IDFn maps a vertex index to its string ID. The default numbers vertices
// "0", "1", "2", ....
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// builderConfig holds the knobs a Constructor consults when it runs.
// There is no *rand.Rand or WeightFn here: planarity fixtures are
// unweighted, deterministic graphs.
type builderConfig struct {
	idFn IDFn
}

// BuilderOption configures a builderConfig.
type BuilderOption func(cfg *builderConfig)

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithIDScheme overrides the default numeric vertex-ID scheme.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}
