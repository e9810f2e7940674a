// SPDX-License-Identifier: MIT
// Package: framefixtures/frame
//
// typeblocks.go — column storage grouped into same-dtype blocks.
//
// Contract:
//   • Every column has the same length (the row count).
//   • Consolidate merges ADJACENT columns of equal dtype; column order and
//     values never change.
//   • Arrays are immutable, so blocks share them freely.

package frame

import (
	"github.com/katalvlaran/framefixtures/array"
	"github.com/katalvlaran/framefixtures/dtype"
)

// Block is a run of adjacent columns sharing one dtype.
type Block struct {
	DType   dtype.DType
	Columns []array.Array
}

// TypeBlocks is the two-dimensional value store of a Frame.
type TypeBlocks struct {
	rows   int
	blocks []Block
}

// FromBlocks builds TypeBlocks with one block per array.
// Returns ErrShape if the arrays differ in length.
// Complexity: O(C) for C arrays.
func FromBlocks(arrays ...array.Array) (*TypeBlocks, error) {
	tb := &TypeBlocks{}
	for i, a := range arrays {
		if i == 0 {
			tb.rows = a.Len()
		} else if a.Len() != tb.rows {
			return nil, errorf("FromBlocks", ErrShape, "array %d has %d rows, want %d", i, a.Len(), tb.rows)
		}
		tb.blocks = append(tb.blocks, Block{DType: a.DType(), Columns: []array.Array{a}})
	}
	return tb, nil
}

// EmptyBlocks returns TypeBlocks with rows rows and no columns.
func EmptyBlocks(rows int) *TypeBlocks {
	return &TypeBlocks{rows: rows}
}

// Consolidate returns new TypeBlocks with adjacent same-dtype blocks merged.
// Complexity: O(C).
func (tb *TypeBlocks) Consolidate() *TypeBlocks {
	out := &TypeBlocks{rows: tb.rows}
	for _, b := range tb.blocks {
		if n := len(out.blocks); n > 0 && out.blocks[n-1].DType == b.DType {
			last := &out.blocks[n-1]
			last.Columns = append(last.Columns, b.Columns...)
			continue
		}
		out.blocks = append(out.blocks, Block{DType: b.DType, Columns: append([]array.Array(nil), b.Columns...)})
	}
	return out
}

// Shape returns (rows, columns).
func (tb *TypeBlocks) Shape() (rows, cols int) {
	for _, b := range tb.blocks {
		cols += len(b.Columns)
	}
	return tb.rows, cols
}

// Blocks returns a copy of the block list.
func (tb *TypeBlocks) Blocks() []Block {
	out := make([]Block, len(tb.blocks))
	for i, b := range tb.blocks {
		out[i] = Block{DType: b.DType, Columns: append([]array.Array(nil), b.Columns...)}
	}
	return out
}

// Columns returns every column in order.
func (tb *TypeBlocks) Columns() []array.Array {
	var out []array.Array
	for _, b := range tb.blocks {
		out = append(out, b.Columns...)
	}
	return out
}

// Column returns column j, or nil if j is out of range.
// Complexity: O(B) for B blocks.
func (tb *TypeBlocks) Column(j int) array.Array {
	if j < 0 {
		return nil
	}
	for _, b := range tb.blocks {
		if j < len(b.Columns) {
			return b.Columns[j]
		}
		j -= len(b.Columns)
	}
	return nil
}

// DTypes returns the dtype of every column.
func (tb *TypeBlocks) DTypes() []dtype.DType {
	var out []dtype.DType
	for _, b := range tb.blocks {
		for range b.Columns {
			out = append(out, b.DType)
		}
	}
	return out
}

func (tb *TypeBlocks) clone() *TypeBlocks {
	return &TypeBlocks{rows: tb.rows, blocks: tb.Blocks()}
}

// appendColumn adds a as the last column, extending the last block when
// its dtype matches.
func (tb *TypeBlocks) appendColumn(a array.Array) error {
	if _, cols := tb.Shape(); cols == 0 {
		tb.rows = a.Len()
	} else if a.Len() != tb.rows {
		return errorf("appendColumn", ErrShape, "column has %d rows, want %d", a.Len(), tb.rows)
	}
	if n := len(tb.blocks); n > 0 && tb.blocks[n-1].DType == a.DType() {
		tb.blocks[n-1].Columns = append(tb.blocks[n-1].Columns, a)
		return nil
	}
	tb.blocks = append(tb.blocks, Block{DType: a.DType(), Columns: []array.Array{a}})
	return nil
}
