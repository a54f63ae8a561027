// Package kata is a small collection of self-contained string and
// sequence exercises, each a pure function with a diagnostic sibling.
//
// 🚀 What is inside?
//
//	• vowel/     — is a string vowel-balanced around its midpoint?
//	• radix/     — is a string a valid numeral in base 2..36, and if not, why?
//	• fibonacci/ — additive sequences from any two seeds, fixed or big precision
//
// ✨ Why this shape?
//
//   - No shared state: every call works only on its arguments
//   - Safe for concurrent use without locks
//   - Errors are package sentinels, checked with errors.Is
//
// The command-line front end lives in cmd/kata:
//
//	kata vowel hello world
//	kata radix --base 16 ABC GHI
//	kata fib --first 0 --second 1 --length 10
//	kata prompt vowel
//
//	go install github.com/katalvlaran/kata/cmd/kata@latest
package kata
