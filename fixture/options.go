// SPDX-License-Identifier: MIT
// Package: framefixtures/fixture
//
// options.go — functional options for Builder.
//
// Contract:
//   • Options are applied in order; later options win.
//   • Option constructors panic on nil input; building never panics.

package fixture

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/framefixtures/dtype"
	"github.com/katalvlaran/framefixtures/source"
)

// Option customizes a Builder.
type Option func(*builderConfig)

// builderConfig holds the collaborators of a Builder.
type builderConfig struct {
	source   *source.Source
	registry *dtype.Registry
	logger   *zap.Logger
}

// newBuilderConfig resolves opts over the shared defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		source:   source.Default(),
		registry: dtype.DefaultRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSource draws values from s instead of the process-wide source.
func WithSource(s *source.Source) Option {
	if s == nil {
		panic("fixture: WithSource(nil)")
	}
	return func(c *builderConfig) { c.source = s }
}

// WithRegistry resolves tokens through r.
func WithRegistry(r *dtype.Registry) Option {
	if r == nil {
		panic("fixture: WithRegistry(nil)")
	}
	return func(c *builderConfig) { c.registry = r }
}

// WithLogger logs every built fixture at debug level.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("fixture: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}
