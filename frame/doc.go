// Package frame is a small labeled-table model: the container surface a
// fixture is built into.
//
//   - TypeBlocks stores typed column arrays grouped into same-dtype blocks
//     (FromBlocks, Consolidate).
//   - Index is a unique flat index; temporal kinds hold datetime64 labels.
//   - IndexHierarchy is a multi-level index built from tuple labels with
//     per-level constructors (IndexHierarchyFromLabels).
//   - Frame combines TypeBlocks with row and column labels (New).
//
// Static containers are fixed after construction; growable ("GO") kinds
// accept Append and AddColumn.
package frame
