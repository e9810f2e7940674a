package array

import (
	"iter"

	"github.com/katalvlaran/framefixtures/dtype"
)

// Array is a read-only view over a typed column of values.
type Array interface {
	// Len returns the element count.
	Len() int
	// DType returns the element type.
	DType() dtype.DType
	// At returns element i boxed as any. It panics if i is out of range,
	// like a slice index.
	At(i int) any
}

// Tuple is one compound element of an object array, such as a
// hierarchical label.
type Tuple []any

// Typed is the generic Array implementation.
type Typed[T any] struct {
	dt   dtype.DType
	data []T
}

// New wraps data as an array of dtype dt. New takes ownership of data:
// callers MUST NOT modify the slice afterwards.
func New[T any](dt dtype.DType, data []T) *Typed[T] {
	return &Typed[T]{dt: dt, data: data}
}

// Len implements Array.
func (a *Typed[T]) Len() int { return len(a.data) }

// DType implements Array.
func (a *Typed[T]) DType() dtype.DType { return a.dt }

// At implements Array.
func (a *Typed[T]) At(i int) any { return a.data[i] }

// Item returns element i without boxing.
func (a *Typed[T]) Item(i int) T { return a.data[i] }

// Values returns a copy of the elements.
func (a *Typed[T]) Values() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

// All iterates over (position, element) pairs.
func (a *Typed[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Slice returns the boxed elements of any Array.
func Slice(a Array) []any {
	out := make([]any, a.Len())
	for i := range out {
		out[i] = a.At(i)
	}
	return out
}

// Values returns the typed elements of a when its element type is T.
func Values[T any](a Array) ([]T, bool) {
	t, ok := a.(*Typed[T])
	if !ok {
		return nil, false
	}
	return t.Values(), true
}
