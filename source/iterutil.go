package source

import (
	"fmt"
	"iter"
)

// Rotate returns seq rotated left by k: the first k elements are held back
// and emitted after the rest. k <= 0 returns seq unchanged.
func Rotate[T any](seq iter.Seq[T], k int) iter.Seq[T] {
	if k <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		head := make([]T, 0, k)
		for v := range seq {
			if len(head) < k {
				head = append(head, v)
				continue
			}
			if !yield(v) {
				return
			}
		}
		for _, v := range head {
			if !yield(v) {
				return
			}
		}
	}
}

// Take collects at most n elements of seq.
func Take[T any](seq iter.Seq[T], n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// RepeatEach emits every element of seq k times in a row.
func RepeatEach[T any](seq iter.Seq[T], k int) (iter.Seq[T], error) {
	if k <= 0 {
		return nil, fmt.Errorf("RepeatEach(k=%d): %w", k, ErrBadRepeat)
	}
	return func(yield func(T) bool) {
		for v := range seq {
			for range k {
				if !yield(v) {
					return
				}
			}
		}
	}, nil
}
