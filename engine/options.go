package engine

import "go.uber.org/zap"

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute() / ExecuteAll()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Logger      *zap.Logger
	Parallelism int // max queries in flight for ExecuteAll
}

// WithLogger routes executor logs to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithParallelism bounds how many queries ExecuteAll runs at once.
// Values below 1 mean one at a time.
func WithParallelism(n int) Option {
	return func(c *config) {
		c.Parallelism = n
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Logger:      zap.NewNop(),
		Parallelism: 1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Parallelism < 1 {
		cfg.Parallelism = 1
	}
	return cfg
}
