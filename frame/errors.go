// SPDX-License-Identifier: MIT
// Package: framefixtures/frame
//
// errors.go — sentinel errors for the frame package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.
//   • Option constructors panic on meaningless input; operations never panic.

package frame

import (
	"errors"
	"fmt"
)

// ErrShape indicates arrays or labels whose lengths do not line up, or a
// hierarchical label of the wrong depth.
var ErrShape = errors.New("frame: shape mismatch")

// ErrDuplicateLabel indicates a label that already exists in an index.
var ErrDuplicateLabel = errors.New("frame: duplicate label")

// ErrStatic indicates a mutation of a static (non-growable) container.
var ErrStatic = errors.New("frame: container is static")

// ErrConstructor indicates a constructor kind that cannot build the
// requested container.
var ErrConstructor = errors.New("frame: unsupported constructor")

// ErrLabel indicates a label value the index type cannot hold.
var ErrLabel = errors.New("frame: invalid label")

// errorf wraps a sentinel with method context.
func errorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
