// SPDX-License-Identifier: MIT
// Package: framefixtures/dtype
//
// errors.go — sentinel errors for the dtype package.
//
// Callers MUST branch with errors.Is; messages carry context via %w wrapping.

package dtype

import "errors"

var (
	// ErrUnknownSpecifier indicates a token that is neither a constructor
	// token nor a dtype token. The wrapped message lists every valid token.
	ErrUnknownSpecifier = errors.New("dtype: unknown specifier")

	// ErrUnitConversion indicates a temporal value cannot be expressed in
	// the requested unit (e.g. a month-based timedelta as a time.Duration).
	ErrUnitConversion = errors.New("dtype: unit conversion not supported")
)
