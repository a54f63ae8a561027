// SPDX-License-Identifier: MIT
// Package: kata/radix
//
// diagnose.go — per-symbol error reporting built on the IsValid rules.

package radix

// Diagnose lists every symbol of s that is illegal in base, in input order.
// It returns nil when s is empty or valid; the decision per symbol is the
// one IsValid uses.
// Complexity: O(len(s)) time, O(k) space for k offenses.
func Diagnose(s string, base int) ([]Offense, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	var out []Offense
	for i := 0; i < len(s); i++ {
		v, bad := offends(s[i], base)
		if !bad {
			continue
		}
		_, alnum := DigitValue(s[i])
		out = append(out, Offense{
			Position:     i,
			Symbol:       string(upper(s[i])),
			Value:        v,
			Alphanumeric: alnum,
		})
	}

	return out, nil
}

// Check runs IsValid, DigitsString and Diagnose for one input.
func Check(s string, base int) (Result, error) {
	valid, err := IsValid(s, base)
	if err != nil {
		return Result{}, err
	}
	digits, err := DigitsString(base)
	if err != nil {
		return Result{}, err
	}
	offenses, err := Diagnose(s, base)
	if err != nil {
		return Result{}, err
	}

	return Result{Input: s, Base: base, Valid: valid, Digits: digits, Offenses: offenses}, nil
}
