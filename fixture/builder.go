// SPDX-License-Identifier: MIT
// Package: framefixtures/fixture
//
// builder.go — DSL to frame.Frame.
//
// Contract:
//   • Parse is all-or-nothing: any syntax, specifier, configuration or
//     generation failure returns a nil frame and the wrapped cause.
//   • The same DSL over the same Source yields an equal frame every time.
//   • A Builder holds no per-call state and is safe for concurrent use.

package fixture

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/framefixtures/dtype"
	"github.com/katalvlaran/framefixtures/frame"
	"github.com/katalvlaran/framefixtures/grammar"
	"github.com/katalvlaran/framefixtures/source"
)

// defaultValues is the values spec used when the DSL has no v component.
var defaultValues = []source.Spec{source.SpecOf(dtype.Float64)}

// Builder turns DSL strings into frames.
type Builder struct {
	cfg builderConfig
}

// NewBuilder returns a Builder over the shared source and registry unless
// opts say otherwise.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{cfg: newBuilderConfig(opts...)}
}

var (
	defaultOnce    sync.Once
	defaultBuilder *Builder
)

// Parse builds the fixture described by dsl with the shared Builder.
func Parse(dsl string) (*frame.Frame, error) {
	defaultOnce.Do(func() { defaultBuilder = NewBuilder() })
	return defaultBuilder.Parse(dsl)
}

// Parse builds the fixture described by dsl.
func (b *Builder) Parse(dsl string) (*frame.Frame, error) {
	f, err := b.build(dsl)
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): %w", dsl, err)
	}
	rows, cols := f.Shape()
	b.cfg.logger.Debug("fixture built",
		zap.String("dsl", dsl),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Stringer("constructor", f.Constructor()),
	)
	return f, nil
}

func (b *Builder) build(dsl string) (*frame.Frame, error) {
	comps, err := grammar.Parse(dsl)
	if err != nil {
		return nil, err
	}
	rows, cols := comps.Shape()
	if err := source.CheckCount(max(rows, cols)); err != nil {
		return nil, err
	}

	specs, err := b.valueSpecs(comps, cols)
	if err != nil {
		return nil, err
	}
	blocks, err := b.buildBlocks(rows, cols, specs)
	if err != nil {
		return nil, err
	}

	opts := []frame.Option{frame.WithOwnData()}
	index, err := b.labelsFor(comps, grammar.Index, rows)
	if err != nil {
		return nil, err
	}
	if index != nil {
		opts = append(opts, frame.WithIndex(index), frame.WithOwnIndex())
	}
	columns, err := b.labelsFor(comps, grammar.Columns, cols)
	if err != nil {
		return nil, err
	}
	if columns != nil {
		opts = append(opts, frame.WithColumns(columns), frame.WithOwnColumns())
	}

	ctor, err := b.frameConstructor(comps)
	if err != nil {
		return nil, err
	}
	return frame.New(ctor, blocks, opts...)
}

// valueSpecs resolves the v component; an absent v means float columns.
func (b *Builder) valueSpecs(comps *grammar.Components, cols int) ([]source.Spec, error) {
	args, ok := comps.Args(grammar.Values)
	if !ok {
		return defaultValues, nil
	}
	if len(args) == 0 && cols > 0 {
		return nil, configErrorf("component v has no dtype specifiers for %d columns", cols)
	}
	specs := make([]source.Spec, len(args))
	for i, arg := range args {
		s, err := b.resolveSpec(arg)
		if err != nil {
			return nil, err
		}
		specs[i] = s
	}
	return specs, nil
}

// labelsFor builds the index or columns for letter l, or returns nil when
// the component is absent or empty.
func (b *Builder) labelsFor(comps *grammar.Components, l grammar.Letter, count int) (frame.Labels, error) {
	args, ok := comps.Args(l)
	if !ok || len(args) == 0 {
		return nil, nil
	}
	return b.buildIndex(count, args[0], args[1])
}

func (b *Builder) frameConstructor(comps *grammar.Components) (dtype.Constructor, error) {
	args, ok := comps.Args(grammar.Frame)
	if !ok || len(args) == 0 {
		return dtype.CtorFrame, nil
	}
	if args[0].Kind == grammar.ArgTuple {
		return dtype.CtorInvalid, configErrorf("component f takes a single constructor, got %s", args[0])
	}
	ctor, err := b.resolveConstructor(tokenOf(args[0]))
	if err != nil {
		return dtype.CtorInvalid, err
	}
	if !ctor.IsFrame() {
		return dtype.CtorInvalid, configErrorf("%s cannot build a frame", ctor)
	}
	return ctor, nil
}
