// SPDX-License-Identifier: MIT
// Package: framefixtures/source
//
// errors.go — sentinel errors for the source package.

package source

import "errors"

var (
	// ErrNotImplemented indicates a dtype kind with no generation rule.
	ErrNotImplemented = errors.New("source: no generation rule for dtype")

	// ErrCast indicates a generated value that cannot be packed into the
	// requested dtype.
	ErrCast = errors.New("source: value cannot be cast to dtype")

	// ErrBadCount indicates a negative count or shift.
	ErrBadCount = errors.New("source: count and shift must be >= 0")

	// ErrBadRepeat indicates a repeat count <= 0.
	ErrBadRepeat = errors.New("source: repeat count must be > 0")

	// ErrShortSequence indicates a sequence that ended before the requested
	// number of values was drawn.
	ErrShortSequence = errors.New("source: sequence exhausted")

	// ErrLabelsExhausted indicates the label permutation space is used up.
	ErrLabelsExhausted = errors.New("source: label permutations exhausted")
)
