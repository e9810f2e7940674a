// SPDX-License-Identifier: MIT
// Package: framefixtures/fixture
//
// errors.go — sentinel errors for the fixture package.
//
// Error policy:
//   • ErrConfig is the only sentinel declared here. Failures from the
//     grammar, dtype, source and frame packages pass through wrapped with
//     %w, so errors.Is matches their own sentinels.

package fixture

import (
	"errors"
	"fmt"
)

// ErrConfig indicates a DSL that parses but cannot be built: a hierarchical
// index without a dtype tuple, constructor and dtype tuples of different
// lengths, mixed static and growable level constructors, or a token of the
// wrong category in a component.
var ErrConfig = errors.New("fixture: invalid configuration")

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}
