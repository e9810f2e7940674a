package source

import "go.uber.org/zap"

// Deterministic defaults.
const (
	// DefaultFloor is the minimum count the cache is sized for; the first
	// growth allocates twice this.
	DefaultFloor = 100_000

	// DefaultMemoSize bounds the MaterializeSpec memo.
	DefaultMemoSize = 128

	// shuffleSeed seeds every shuffle of a newly added integer range.
	shuffleSeed = 22
)

// Option customizes a Source.
type Option func(*sourceConfig)

type sourceConfig struct {
	floor    int
	memoSize int
	logger   *zap.Logger
}

func newSourceConfig(opts ...Option) sourceConfig {
	cfg := sourceConfig{
		floor:    DefaultFloor,
		memoSize: DefaultMemoSize,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes cache growth events to l at debug level.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("source: WithLogger(nil)")
	}
	return func(c *sourceConfig) { c.logger = l }
}

// WithFloor overrides the minimum cache count. Values generated for the
// same position differ between floors, so fixtures pinned against the
// default floor should not change it. Panics if n <= 0.
func WithFloor(n int) Option {
	if n <= 0 {
		panic("source: WithFloor(n<=0)")
	}
	return func(c *sourceConfig) { c.floor = n }
}

// WithMemoSize bounds the MaterializeSpec memo. Panics if n <= 0.
func WithMemoSize(n int) Option {
	if n <= 0 {
		panic("source: WithMemoSize(n<=0)")
	}
	return func(c *sourceConfig) { c.memoSize = n }
}
