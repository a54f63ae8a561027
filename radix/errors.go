// SPDX-License-Identifier: MIT
// Package: kata/radix
//
// errors.go — sentinel errors for the radix package.
//
// Callers branch with errors.Is; context (the offending base) is attached
// with %w at the return site.

package radix

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella for every precondition violation.
var ErrInvalidArgument = errors.New("radix: invalid argument")

// ErrInvalidBase indicates a base outside [MinBase, MaxBase].
// Usage: if errors.Is(err, ErrInvalidBase) { /* re-prompt for base */ }.
var ErrInvalidBase = fmt.Errorf("%w: base must be between %d and %d", ErrInvalidArgument, MinBase, MaxBase)

// checkBase returns nil for a supported base, ErrInvalidBase otherwise.
func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w (got %d)", ErrInvalidBase, base)
	}

	return nil
}
