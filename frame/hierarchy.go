// SPDX-License-Identifier: MIT
// Package: framefixtures/frame
//
// hierarchy.go — multi-level label index.
//
// Contract:
//   • Each label is an array.Tuple of fixed depth; full tuples are unique.
//   • Level d is a flat Index over the distinct values at depth d, in order
//     of first appearance; labels are stored as per-level codes.
//   • IndexAutoConstructorFactory picks each level's index type from its
//     values: datetime64 values of one unit get the temporal index of that
//     unit, anything else a plain index.

package frame

import (
	"github.com/katalvlaran/framefixtures/array"
	"github.com/katalvlaran/framefixtures/dtype"
)

// IndexHierarchy is a multi-level index.
type IndexHierarchy struct {
	ctor      dtype.Constructor
	levels    []*Index
	codes     [][]int // codes[d][i] is the level-d position of label i
	positions map[any]int
}

// IndexHierarchyFromLabels builds a hierarchical index of kind ctor
// (IndexHierarchy or IndexHierarchyGO) from tuple labels. levelCtors gives
// one constructor per depth; a single IndexAutoConstructorFactory applies
// to every depth.
// Complexity: O(N·D) for N labels of depth D.
func IndexHierarchyFromLabels(ctor dtype.Constructor, labels []array.Tuple, levelCtors ...dtype.Constructor) (*IndexHierarchy, error) {
	const method = "IndexHierarchyFromLabels"
	if !ctor.IsHierarchy() {
		return nil, errorf(method, ErrConstructor, "%s is not a hierarchical index", ctor)
	}
	depth := len(levelCtors)
	if len(labels) > 0 {
		depth = len(labels[0])
	}
	if len(levelCtors) == 1 && levelCtors[0].IsAutoFactory() {
		levelCtors = repeatCtor(levelCtors[0], depth)
	}
	if len(levelCtors) != depth {
		return nil, errorf(method, ErrShape, "%d level constructors for depth %d", len(levelCtors), depth)
	}

	// Distinct values per depth, in order of first appearance.
	distinct := make([][]any, depth)
	seen := make([]map[any]struct{}, depth)
	for d := range seen {
		seen[d] = make(map[any]struct{})
	}
	for i, t := range labels {
		if len(t) != depth {
			return nil, errorf(method, ErrShape, "label %d has depth %d, want %d", i, len(t), depth)
		}
		for d, v := range t {
			k := keyOf(v)
			if _, ok := seen[d][k]; !ok {
				seen[d][k] = struct{}{}
				distinct[d] = append(distinct[d], v)
			}
		}
	}

	ih := &IndexHierarchy{
		ctor:      ctor,
		levels:    make([]*Index, depth),
		codes:     make([][]int, depth),
		positions: make(map[any]int, len(labels)),
	}
	for d := range depth {
		lc := levelCtors[d]
		if lc.IsAutoFactory() {
			lc = autoConstructor(distinct[d], ctor.Static())
		}
		lvl, err := indexFromValues(method, lc, levelDType(distinct[d]), distinct[d])
		if err != nil {
			return nil, err
		}
		ih.levels[d] = lvl
		ih.codes[d] = make([]int, 0, len(labels))
	}
	for _, t := range labels {
		if err := ih.push(t); err != nil {
			return nil, errorf(method, err, "building %s", ctor)
		}
	}
	return ih, nil
}

func repeatCtor(c dtype.Constructor, n int) []dtype.Constructor {
	out := make([]dtype.Constructor, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// autoConstructor chooses the level index for values.
func autoConstructor(values []any, static bool) dtype.Constructor {
	unit := dtype.UnitNone
	for _, v := range values {
		d, ok := v.(dtype.Datetime64)
		if !ok || (unit != dtype.UnitNone && d.Unit != unit) {
			unit = dtype.UnitNone
			break
		}
		unit = d.Unit
	}
	if unit != dtype.UnitNone {
		return dtype.TemporalIndex(unit, static)
	}
	if static {
		return dtype.CtorIndex
	}
	return dtype.CtorIndexGO
}

// levelDType infers the dtype of a level from its values.
func levelDType(values []any) dtype.DType {
	dt := dtype.Object
	for i, v := range values {
		var cur dtype.DType
		switch x := v.(type) {
		case int64:
			cur = dtype.Int64
		case float64:
			cur = dtype.Float64
		case bool:
			cur = dtype.Bool
		case string:
			cur = dtype.Str
		case []byte:
			cur = dtype.Bytes
		case dtype.Datetime64:
			cur = dtype.Datetime(x.Unit)
		case dtype.Timedelta64:
			cur = dtype.Timedelta(x.Unit)
		default:
			return dtype.Object
		}
		if i == 0 {
			dt = cur
		} else if cur != dt {
			return dtype.Object
		}
	}
	return dt
}

// push appends one tuple whose level values already exist or can be added
// to each level.
func (ih *IndexHierarchy) push(t array.Tuple) error {
	if len(t) != len(ih.levels) {
		return errorf("push", ErrShape, "label depth %d, want %d", len(t), len(ih.levels))
	}
	codes := make([]int, len(t))
	for d, v := range t {
		lvl := ih.levels[d]
		p, ok := lvl.Loc(v)
		if !ok {
			// Temporal levels store converted values; look up the converted form.
			if u, temporal := lvl.ctor.Unit(); temporal {
				if cv, err := castTemporal(v, u); err == nil {
					p, ok = lvl.Loc(cv)
				}
			}
		}
		if !ok {
			if err := lvl.push(v); err != nil {
				return err
			}
			p = lvl.Len() - 1
		}
		codes[d] = p
	}
	label := ih.tupleAt(codes)
	k := keyOf(label)
	if _, dup := ih.positions[k]; dup {
		return errorf("push", ErrDuplicateLabel, "%s", array.Format(label))
	}
	ih.positions[k] = len(ih.codes[0])
	for d, c := range codes {
		ih.codes[d] = append(ih.codes[d], c)
	}
	return nil
}

func (ih *IndexHierarchy) tupleAt(codes []int) array.Tuple {
	t := make(array.Tuple, len(codes))
	for d, c := range codes {
		t[d] = ih.levels[d].labels[c]
	}
	return t
}

// Append adds a tuple label to a growable hierarchy.
// Complexity: O(D).
func (ih *IndexHierarchy) Append(label any) error {
	if ih.ctor.Static() {
		return errorf("Append", ErrStatic, "%s", ih.ctor)
	}
	t, ok := label.(array.Tuple)
	if !ok {
		return errorf("Append", ErrLabel, "%v (%T) is not a tuple", label, label)
	}
	return ih.push(t)
}

// Len implements Labels.
func (ih *IndexHierarchy) Len() int {
	if len(ih.codes) == 0 {
		return 0
	}
	return len(ih.codes[0])
}

// At implements Labels; the result is a fresh array.Tuple.
func (ih *IndexHierarchy) At(i int) any {
	codes := make([]int, len(ih.codes))
	for d := range ih.codes {
		codes[d] = ih.codes[d][i]
	}
	return ih.tupleAt(codes)
}

// Loc implements Labels. Temporal level values are matched after
// conversion to the level's unit.
func (ih *IndexHierarchy) Loc(label any) (int, bool) {
	t, ok := label.(array.Tuple)
	if !ok || len(t) != len(ih.levels) {
		return 0, false
	}
	conv := make(array.Tuple, len(t))
	for d, v := range t {
		conv[d] = v
		if u, temporal := ih.levels[d].ctor.Unit(); temporal {
			if cv, err := castTemporal(v, u); err == nil {
				conv[d] = cv
			}
		}
	}
	p, ok := ih.positions[keyOf(conv)]
	return p, ok
}

// Constructor implements Labels.
func (ih *IndexHierarchy) Constructor() dtype.Constructor { return ih.ctor }

// Static implements Labels.
func (ih *IndexHierarchy) Static() bool { return ih.ctor.Static() }

// Depth implements Labels.
func (ih *IndexHierarchy) Depth() int { return len(ih.levels) }

// Level returns the flat index of depth d.
func (ih *IndexHierarchy) Level(d int) *Index { return ih.levels[d] }

// withStatic returns a copy with the requested static trait on the
// hierarchy and on every level.
func (ih *IndexHierarchy) withStatic(static bool) *IndexHierarchy {
	ctor := dtype.CtorIndexHierarchy
	if !static {
		ctor = dtype.CtorIndexHierarchyGO
	}
	out := &IndexHierarchy{
		ctor:      ctor,
		levels:    make([]*Index, len(ih.levels)),
		codes:     make([][]int, len(ih.codes)),
		positions: make(map[any]int, len(ih.positions)),
	}
	for d, lvl := range ih.levels {
		out.levels[d] = lvl.withStatic(static)
		out.codes[d] = append([]int(nil), ih.codes[d]...)
	}
	for k, v := range ih.positions {
		out.positions[k] = v
	}
	return out
}
