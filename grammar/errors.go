// SPDX-License-Identifier: MIT
// Package: framefixtures/grammar
//
// errors.go — sentinel errors for the grammar package.

package grammar

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates a malformed DSL string: an unexpected character or
// token, an unsupported argument expression, an unknown or repeated
// component letter, a wrong argument count, or a missing shape.
var ErrSyntax = errors.New("grammar: syntax error")

func syntaxErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}
