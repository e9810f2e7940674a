// SPDX-License-Identifier: MIT
// Package: framefixtures/frame
//
// index.go — single-level label index.
//
// Contract:
//   • Labels are unique; Loc is O(1).
//   • Temporal constructors (IndexDate, IndexSecond, ...) hold datetime64
//     labels of their unit; other labels are converted or rejected.
//   • Only growable ("GO") indices accept Append.

package frame

import (
	"reflect"

	"github.com/katalvlaran/framefixtures/array"
	"github.com/katalvlaran/framefixtures/dtype"
)

// Index is a flat, unique-label index.
type Index struct {
	ctor      dtype.Constructor
	dt        dtype.DType
	labels    []any
	positions map[any]int
}

// IndexFromLabels builds an index of kind ctor over the labels array.
// ctor must be a flat index constructor (plain or temporal).
// Complexity: O(N) time and space.
func IndexFromLabels(ctor dtype.Constructor, labels array.Array) (*Index, error) {
	return indexFromValues("IndexFromLabels", ctor, labels.DType(), array.Slice(labels))
}

func indexFromValues(method string, ctor dtype.Constructor, dt dtype.DType, values []any) (*Index, error) {
	if !ctor.IsIndex() {
		return nil, errorf(method, ErrConstructor, "%s is not a flat index", ctor)
	}
	idx := &Index{ctor: ctor, dt: dt, labels: make([]any, 0, len(values)), positions: make(map[any]int, len(values))}
	if u, ok := ctor.Unit(); ok {
		idx.dt = dtype.Datetime(u)
	}
	for _, v := range values {
		if err := idx.push(v); err != nil {
			return nil, errorf(method, err, "building %s", ctor)
		}
	}
	return idx, nil
}

// DefaultIndex returns the positional int64 index 0..n-1.
func DefaultIndex(n int, static bool) *Index {
	ctor := dtype.CtorIndex
	if !static {
		ctor = dtype.CtorIndexGO
	}
	idx := &Index{ctor: ctor, dt: dtype.Int64, labels: make([]any, n), positions: make(map[any]int, n)}
	for i := range n {
		idx.labels[i] = int64(i)
		idx.positions[int64(i)] = i
	}
	return idx
}

// push converts and appends one label, keeping the dtype consistent: a
// label of a different Go type turns a plain index into an object index.
func (idx *Index) push(v any) error {
	if u, ok := idx.ctor.Unit(); ok {
		d, err := castTemporal(v, u)
		if err != nil {
			return err
		}
		v = d
	} else if len(idx.labels) > 0 && reflect.TypeOf(v) != reflect.TypeOf(idx.labels[0]) {
		idx.dt = dtype.Object
	}
	k := keyOf(v)
	if _, dup := idx.positions[k]; dup {
		return errorf("push", ErrDuplicateLabel, "%s", array.Format(v))
	}
	idx.positions[k] = len(idx.labels)
	idx.labels = append(idx.labels, v)
	return nil
}

// Append adds label to a growable index.
// Returns ErrStatic on static indices, ErrDuplicateLabel, or ErrLabel.
// Complexity: amortized O(1).
func (idx *Index) Append(label any) error {
	if idx.ctor.Static() {
		return errorf("Append", ErrStatic, "%s", idx.ctor)
	}
	return idx.push(label)
}

// Len implements Labels.
func (idx *Index) Len() int { return len(idx.labels) }

// At implements Labels.
func (idx *Index) At(i int) any { return idx.labels[i] }

// Loc implements Labels.
func (idx *Index) Loc(label any) (int, bool) {
	p, ok := idx.positions[keyOf(label)]
	return p, ok
}

// Constructor implements Labels.
func (idx *Index) Constructor() dtype.Constructor { return idx.ctor }

// Static implements Labels.
func (idx *Index) Static() bool { return idx.ctor.Static() }

// Depth implements Labels.
func (idx *Index) Depth() int { return 1 }

// DType returns the label dtype.
func (idx *Index) DType() dtype.DType { return idx.dt }

// Values returns a copy of the labels.
func (idx *Index) Values() []any { return append([]any(nil), idx.labels...) }

// withStatic returns a copy of idx whose constructor has the requested
// static trait.
func (idx *Index) withStatic(static bool) *Index {
	ctor := idx.ctor
	if ctor.Static() != static {
		if u, ok := ctor.Unit(); ok {
			ctor = dtype.TemporalIndex(u, static)
		} else if static {
			ctor = dtype.CtorIndex
		} else {
			ctor = dtype.CtorIndexGO
		}
	}
	out := &Index{ctor: ctor, dt: idx.dt, labels: idx.Values(), positions: make(map[any]int, len(idx.positions))}
	for k, v := range idx.positions {
		out.positions[k] = v
	}
	return out
}
