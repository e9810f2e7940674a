package frame

// Option customizes New.
type Option func(*frameConfig)

type frameConfig struct {
	index      Labels
	columns    Labels
	ownData    bool
	ownIndex   bool
	ownColumns bool
}

func newFrameConfig(opts ...Option) frameConfig {
	var cfg frameConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIndex sets the row labels. Panics on nil.
func WithIndex(l Labels) Option {
	if l == nil {
		panic("frame: WithIndex(nil)")
	}
	return func(c *frameConfig) { c.index = l }
}

// WithColumns sets the column labels. Panics on nil.
func WithColumns(l Labels) Option {
	if l == nil {
		panic("frame: WithColumns(nil)")
	}
	return func(c *frameConfig) { c.columns = l }
}

// WithOwnData lets the frame adopt the TypeBlocks without copying. The
// caller must not use the TypeBlocks afterwards.
func WithOwnData() Option { return func(c *frameConfig) { c.ownData = true } }

// WithOwnIndex lets the frame adopt the row labels without copying.
func WithOwnIndex() Option { return func(c *frameConfig) { c.ownIndex = true } }

// WithOwnColumns lets the frame adopt the column labels without copying.
// Labels whose static trait differs from the frame's are copied anyway.
func WithOwnColumns() Option { return func(c *frameConfig) { c.ownColumns = true } }
