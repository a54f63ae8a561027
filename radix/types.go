// SPDX-License-Identifier: MIT
// Package: kata/radix
//
// types.go — bounds and result types.

package radix

import "fmt"

// Supported base range, inclusive.
const (
	MinBase = 2
	MaxBase = 36
)

const (
	decimalDigits = 10 // '0'..'9'
	letterOffset  = 10 // value of 'A'
)

// Offense describes one symbol that makes a numeral invalid.
//
// Fields:
//   - Position     — byte index in the original input.
//   - Symbol       — the byte, upper-cased if it is an ASCII letter.
//   - Value        — digit value; meaningful only if Alphanumeric.
//   - Alphanumeric — false when the byte is not 0-9/A-Z/a-z at all.
type Offense struct {
	Position     int    `yaml:"position"`
	Symbol       string `yaml:"symbol"`
	Value        int    `yaml:"value,omitempty"`
	Alphanumeric bool   `yaml:"alphanumeric"`
}

// String renders the offense as "'G' (value 16)" or "'-' (invalid character)".
func (o Offense) String() string {
	if !o.Alphanumeric {
		return fmt.Sprintf("'%s' (invalid character)", o.Symbol)
	}

	return fmt.Sprintf("'%s' (value %d)", o.Symbol, o.Value)
}

// Result bundles everything Check computes for one input.
type Result struct {
	Input    string    `yaml:"input"`
	Base     int       `yaml:"base"`
	Valid    bool      `yaml:"valid"`
	Digits   string    `yaml:"digits"`
	Offenses []Offense `yaml:"offenses,omitempty"`
}
