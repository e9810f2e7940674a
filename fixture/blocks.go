package fixture

import (
	"github.com/katalvlaran/framefixtures/array"
	"github.com/katalvlaran/framefixtures/dtype"
	"github.com/katalvlaran/framefixtures/frame"
	"github.com/katalvlaran/framefixtures/source"
)

// maxColumnShift bounds the per-column shift.
const maxColumnShift = 100

// columnShifts draws one shift per column from the int64 stream, reduced
// into [0, maxColumnShift).
func (b *Builder) columnShifts(cols int) ([]int, error) {
	a, err := b.cfg.source.Materialize(dtype.Int64, cols, 0)
	if err != nil {
		return nil, err
	}
	ints, _ := array.Values[int64](a)
	out := make([]int, cols)
	for i, v := range ints {
		m := v % maxColumnShift
		if m < 0 {
			m += maxColumnShift
		}
		out[i] = int(m)
	}
	return out, nil
}

// buildBlocks materializes one array per column, cycling through specs,
// and consolidates them.
func (b *Builder) buildBlocks(rows, cols int, specs []source.Spec) (*frame.TypeBlocks, error) {
	if cols == 0 {
		return frame.EmptyBlocks(rows), nil
	}
	if len(specs) == 0 {
		return nil, configErrorf("component v needs at least one dtype specifier for %d columns", cols)
	}
	shifts, err := b.columnShifts(cols)
	if err != nil {
		return nil, err
	}
	arrays := make([]array.Array, cols)
	for c := range arrays {
		if arrays[c], err = b.cfg.source.MaterializeSpec(specs[c%len(specs)], rows, shifts[c]); err != nil {
			return nil, err
		}
	}
	tb, err := frame.FromBlocks(arrays...)
	if err != nil {
		return nil, err
	}
	return tb.Consolidate(), nil
}
