// SPDX-License-Identifier: MIT
// Package: kata/radix
//
// Package radix checks whether a string is a well-formed numeral in a
// positional system with base 2..36.
//
// 🚀 Digit alphabet
//
//	Symbols are 0-9 followed by A-Z, compared case-insensitively:
//
//	  '0'..'9' → 0..9
//	  'A'..'Z' → 10..35   ('a'..'z' fold to the same values)
//
//	A numeral is valid in base B when it is non-empty and every symbol's
//	value is strictly below B. Any byte outside 0-9/A-Z/a-z invalidates
//	the whole string.
//
// ✨ Key features:
//   - IsValid     — the boolean decision
//   - ValidDigits — the ascending vocabulary for a base (documentation aid)
//   - Diagnose    — every offending symbol with its value, for error reports
//   - Check       — all three bundled in a Result
//
// ⚙️ Usage:
//
//	ok, err := radix.IsValid("1F", 16) // true, nil
//	_, err = radix.IsValid("1", 37)   // errors.Is(err, radix.ErrInvalidBase)
//
// Errors:
//   - ErrInvalidBase (wraps ErrInvalidArgument) — base outside [2,36].
//
// The base is never clamped; an out-of-range base is always reported.
package radix
