// SPDX-License-Identifier: MIT
// Package: kata/radix
//
// radix.go — symbol values and the validity decision.

package radix

// DigitValue maps one symbol to its digit value.
// Letters are folded to upper case first; ok is false for any byte
// outside 0-9/A-Z/a-z.
// Complexity: O(1).
func DigitValue(c byte) (value int, ok bool) {
	c = upper(c)
	switch {
	case '0' <= c && c < '0'+decimalDigits:
		return int(c - '0'), true
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + letterOffset, true
	}

	return 0, false
}

// IsValid reports whether s is a numeral in the given base.
//
// Steps:
//  1. base outside [MinBase, MaxBase] → ErrInvalidBase.
//  2. empty s → false (an empty numeral is not a number).
//  3. every symbol must be alphanumeric with DigitValue < base.
//
// Complexity: O(len(s)) time, O(1) space.
func IsValid(s string, base int) (bool, error) {
	if err := checkBase(base); err != nil {
		return false, err
	}
	if s == "" {
		return false, nil
	}
	for i := 0; i < len(s); i++ {
		if _, bad := offends(s[i], base); bad {
			return false, nil
		}
	}

	return true, nil
}

// offends returns the symbol's value and whether it is illegal in base.
func offends(c byte, base int) (int, bool) {
	v, ok := DigitValue(c)
	if !ok {
		return 0, true
	}

	return v, v >= base
}

// upper folds ASCII a-z to A-Z and leaves every other byte untouched.
func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}
