// SPDX-License-Identifier: MIT
// Package: framefixtures/frame
//
// frame.go — the two-dimensional labeled table.
//
// Contract:
//   • Index length equals the row count; columns length equals the column
//     count. Missing labels default to positional int64 indices.
//   • Columns of a growable frame (FrameGO) are growable; columns of a
//     static frame are static.
//   • Only FrameGO accepts AddColumn.

package frame

import (
	"github.com/katalvlaran/framefixtures/array"
	"github.com/katalvlaran/framefixtures/dtype"
)

// Frame is a table of typed columns with row and column labels.
type Frame struct {
	ctor    dtype.Constructor
	blocks  *TypeBlocks
	index   Labels
	columns Labels
}

// New builds a frame of kind ctor (Frame or FrameGO) over blocks.
// Returns ErrConstructor for a non-frame ctor and ErrShape when labels and
// data disagree.
// Complexity: O(1) when data and labels are owned, otherwise O(R + C).
func New(ctor dtype.Constructor, blocks *TypeBlocks, opts ...Option) (*Frame, error) {
	const method = "New"
	if !ctor.IsFrame() {
		return nil, errorf(method, ErrConstructor, "%s is not a frame", ctor)
	}
	if blocks == nil {
		blocks = &TypeBlocks{}
	}
	cfg := newFrameConfig(opts...)
	rows, cols := blocks.Shape()

	f := &Frame{ctor: ctor, blocks: blocks}
	if !cfg.ownData {
		f.blocks = blocks.clone()
	}

	switch {
	case cfg.index == nil:
		f.index = DefaultIndex(rows, true)
	case cfg.ownIndex:
		f.index = cfg.index
	default:
		f.index = copyLabels(cfg.index, cfg.index.Static())
	}

	static := ctor.Static()
	switch {
	case cfg.columns == nil:
		f.columns = DefaultIndex(cols, static)
	case cfg.ownColumns && cfg.columns.Static() == static:
		f.columns = cfg.columns
	default:
		f.columns = copyLabels(cfg.columns, static)
	}

	if f.index.Len() != rows {
		return nil, errorf(method, ErrShape, "index has %d labels for %d rows", f.index.Len(), rows)
	}
	if f.columns.Len() != cols {
		return nil, errorf(method, ErrShape, "columns have %d labels for %d columns", f.columns.Len(), cols)
	}
	return f, nil
}

func copyLabels(l Labels, static bool) Labels {
	switch x := l.(type) {
	case *Index:
		return x.withStatic(static)
	case *IndexHierarchy:
		return x.withStatic(static)
	}
	return l
}

// Constructor returns Frame or FrameGO.
func (f *Frame) Constructor() dtype.Constructor { return f.ctor }

// Shape returns (rows, columns).
func (f *Frame) Shape() (rows, cols int) { return f.blocks.Shape() }

// Index returns the row labels.
func (f *Frame) Index() Labels { return f.index }

// Columns returns the column labels.
func (f *Frame) Columns() Labels { return f.columns }

// Blocks returns the value store.
func (f *Frame) Blocks() *TypeBlocks { return f.blocks }

// Column returns column j by position.
func (f *Frame) Column(j int) array.Array { return f.blocks.Column(j) }

// ColumnByLabel returns the column labeled label.
func (f *Frame) ColumnByLabel(label any) (array.Array, bool) {
	j, ok := f.columns.Loc(label)
	if !ok {
		return nil, false
	}
	return f.blocks.Column(j), true
}

// At returns the value at row r, column c.
func (f *Frame) At(r, c int) any { return f.blocks.Column(c).At(r) }

// DTypes returns the dtype of each column.
func (f *Frame) DTypes() []dtype.DType { return f.blocks.DTypes() }

// Records returns the values row by row.
// Complexity: O(R·C).
func (f *Frame) Records() [][]any {
	rows, cols := f.Shape()
	out := make([][]any, rows)
	columns := f.blocks.Columns()
	for r := range out {
		rec := make([]any, cols)
		for c, col := range columns {
			rec[c] = col.At(r)
		}
		out[r] = rec
	}
	return out
}

// Pair is one (label, value) entry.
type Pair struct {
	Label any
	Value any
}

// ColumnPairs is one column with its label and (row label, value) pairs.
type ColumnPairs struct {
	Label any
	Pairs []Pair
}

// Pairs returns the frame column by column, each value paired with its
// row label.
// Complexity: O(R·C).
func (f *Frame) Pairs() []ColumnPairs {
	rows, _ := f.Shape()
	columns := f.blocks.Columns()
	out := make([]ColumnPairs, len(columns))
	for c, col := range columns {
		pairs := make([]Pair, rows)
		for r := range pairs {
			pairs[r] = Pair{Label: f.index.At(r), Value: col.At(r)}
		}
		out[c] = ColumnPairs{Label: f.columns.At(c), Pairs: pairs}
	}
	return out
}

// AddColumn appends a labeled column to a growable frame.
// Returns ErrStatic for static frames, ErrShape for a length mismatch and
// ErrDuplicateLabel for an existing label.
func (f *Frame) AddColumn(label any, a array.Array) error {
	const method = "AddColumn"
	if f.ctor.Static() {
		return errorf(method, ErrStatic, "%s", f.ctor)
	}
	if rows, _ := f.Shape(); a.Len() != rows {
		return errorf(method, ErrShape, "column has %d rows, want %d", a.Len(), rows)
	}
	app, ok := f.columns.(interface{ Append(any) error })
	if !ok {
		return errorf(method, ErrStatic, "columns %s", f.columns.Constructor())
	}
	if err := app.Append(label); err != nil {
		return errorf(method, err, "label %v", label)
	}
	return f.blocks.appendColumn(a)
}
