package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/framefixtures/fixture"
	"github.com/katalvlaran/framefixtures/frame"
)

// DefaultConcurrency bounds the fixtures BuildAll builds at once.
const DefaultConcurrency = 4

// Option customizes Build and BuildAll.
type Option func(*buildConfig)

type buildConfig struct {
	builder     *fixture.Builder
	logger      *zap.Logger
	concurrency int
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{logger: zap.NewNop(), concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.builder == nil {
		cfg.builder = fixture.NewBuilder(fixture.WithLogger(cfg.logger))
	}
	return cfg
}

// WithBuilder builds fixtures with b.
func WithBuilder(b *fixture.Builder) Option {
	if b == nil {
		panic("catalog: WithBuilder(nil)")
	}
	return func(c *buildConfig) { c.builder = b }
}

// WithLogger logs each built fixture.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("catalog: WithLogger(nil)")
	}
	return func(c *buildConfig) { c.logger = l }
}

// WithConcurrency sets the BuildAll worker limit. Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("catalog: WithConcurrency(%d)", n))
	}
	return func(c *buildConfig) { c.concurrency = n }
}

// Built is one fixture built from a catalog entry.
type Built struct {
	Entry Entry
	Frame *frame.Frame
}

// Build builds the fixture called name.
func (c *Catalog) Build(name string, opts ...Option) (*frame.Frame, error) {
	e, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	cfg := newBuildConfig(opts...)
	return buildEntry(cfg, e)
}

// BuildAll builds every fixture, at most the configured number at a time.
// Results keep catalog order. The first failure cancels the remaining work.
func (c *Catalog) BuildAll(ctx context.Context, opts ...Option) ([]Built, error) {
	cfg := newBuildConfig(opts...)
	out := make([]Built, len(c.Fixtures))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i, e := range c.Fixtures {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := buildEntry(cfg, e)
			if err != nil {
				return err
			}
			out[i] = Built{Entry: e, Frame: f}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func buildEntry(cfg buildConfig, e Entry) (*frame.Frame, error) {
	f, err := cfg.builder.Parse(e.DSL)
	if err != nil {
		return nil, fmt.Errorf("fixture %q: %w", e.Name, err)
	}
	rows, cols := f.Shape()
	cfg.logger.Debug("catalog fixture built",
		zap.String("name", e.Name),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
	)
	return f, nil
}
