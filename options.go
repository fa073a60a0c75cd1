package screech

// config holds the construction-time options shared by [NewPatchbay]
// and [NewProcessor]. There is nothing here a running tick can observe
// or change. This is the library's entire "configuration" surface,
// deliberately small since the engine has no config file or CLI.
type config struct {
	logger Logger
}

// Option configures a [Patchbay] or [Processor] at construction time.
type Option func(*config)

// WithLogger attaches a diagnostic [Logger]. Without it, both
// [Patchbay] and [Processor] log nothing.
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: noopLogger{}}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}
