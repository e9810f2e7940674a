// SPDX-License-Identifier: MIT
// Package: framefixtures/fixture
//
// index.go — row and column label construction.
//
// Contract:
//   • A single constructor with a single dtype spec yields a flat index over
//     count labels drawn at shift 0.
//   • A constructor tuple, or a single hierarchical constructor, yields an
//     IndexHierarchy. Level i of depth d is drawn at shift 10·i and each
//     value is repeated 2·(d-1-i) times; the innermost level is not
//     repeated. Outer levels therefore vary slowest.

package fixture

import (
	"iter"
	"slices"

	"github.com/katalvlaran/framefixtures/array"
	"github.com/katalvlaran/framefixtures/dtype"
	"github.com/katalvlaran/framefixtures/frame"
	"github.com/katalvlaran/framefixtures/grammar"
	"github.com/katalvlaran/framefixtures/source"
)

// levelShiftStep separates the value streams of adjacent levels.
const levelShiftStep = 10

// levelRepeats returns the per-level repeat counts for depth d: 4, 2, 1
// for d == 3.
func levelRepeats(d int) []int {
	out := make([]int, d)
	for i := range out {
		out[i] = 2 * (d - 1 - i)
		if out[i] == 0 {
			out[i] = 1
		}
	}
	return out
}

func (b *Builder) buildIndex(count int, ctorArg, dtArg grammar.Arg) (frame.Labels, error) {
	ctors, isTuple, err := b.resolveConstructors(ctorArg)
	if err != nil {
		return nil, err
	}
	if isTuple || ctors[0].IsHierarchy() {
		return b.buildHierarchy(count, ctors, isTuple, dtArg)
	}

	ctor := ctors[0]
	if !ctor.IsIndex() {
		return nil, configErrorf("%s cannot build an index", ctor)
	}
	spec, err := b.resolveSpec(dtArg)
	if err != nil {
		return nil, err
	}
	labels, err := b.cfg.source.MaterializeSpec(spec, count, 0)
	if err != nil {
		return nil, err
	}
	return frame.IndexFromLabels(ctor, labels)
}

func (b *Builder) buildHierarchy(count int, ctors []dtype.Constructor, isTuple bool, dtArg grammar.Arg) (frame.Labels, error) {
	if dtArg.Kind != grammar.ArgTuple || len(dtArg.Names) < 2 {
		return nil, configErrorf("for building IH dtype spec must be a tuple of at least 2, got %s", dtArg)
	}
	dts, err := b.resolveDTypes(dtArg.Names)
	if err != nil {
		return nil, err
	}

	builder, levelCtors := ctors[0], make([]dtype.Constructor, len(dts))
	for i := range levelCtors {
		levelCtors[i] = dtype.CtorIndexAutoFactory
	}
	if isTuple {
		if len(ctors) != len(dts) {
			return nil, configErrorf("length of index constructors (%d) must be the same as dtype spec (%d)", len(ctors), len(dts))
		}
		for _, c := range ctors {
			if !c.IsIndex() && !c.IsAutoFactory() {
				return nil, configErrorf("%s cannot build a hierarchy level", c)
			}
			if c.Static() != ctors[0].Static() {
				return nil, configErrorf("index constructors %v mix static and growable kinds", ctors)
			}
		}
		builder, levelCtors = ctors[0].Hierarchy(), ctors
	}

	labels, err := b.hierarchyLabels(count, dts)
	if err != nil {
		return nil, err
	}
	return frame.IndexHierarchyFromLabels(builder, labels, levelCtors...)
}

// hierarchyLabels zips the repeated level streams into count tuples.
func (b *Builder) hierarchyLabels(count int, dts []dtype.DType) ([]array.Tuple, error) {
	repeats := levelRepeats(len(dts))
	pulls := make([]func() (any, bool), len(dts))
	for i, dt := range dts {
		a, err := b.cfg.source.MaterializeSpec(source.SpecOf(dt), count, levelShiftStep*i)
		if err != nil {
			return nil, err
		}
		seq, err := source.RepeatEach(slices.Values(array.Slice(a)), repeats[i])
		if err != nil {
			return nil, err
		}
		next, stop := iter.Pull(seq)
		defer stop()
		pulls[i] = next
	}

	out := make([]array.Tuple, count)
	for row := range out {
		t := make(array.Tuple, len(pulls))
		for i, next := range pulls {
			t[i], _ = next()
		}
		out[row] = t
	}
	return out, nil
}
