// SPDX-License-Identifier: MIT
// Package: kata/radix
//
// digits.go — the symbol vocabulary of a base.

package radix

import "strings"

// digitSymbols holds every symbol in ascending value order.
const digitSymbols = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ValidDigits lists the legal symbols of base in ascending order:
// 0..9 first, then A..Z as needed. It validates nothing beyond base itself.
//
// Example:
//
//	ValidDigits(12) → "0123456789AB" as []byte
func ValidDigits(base int) ([]byte, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	out := make([]byte, base)
	copy(out, digitSymbols[:base])

	return out, nil
}

// DigitsString is ValidDigits joined by ", " for display.
func DigitsString(base int) (string, error) {
	digits, err := ValidDigits(base)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = string(d)
	}

	return strings.Join(parts, ", "), nil
}
