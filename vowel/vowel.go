package vowel

import (
	"fmt"
	"strings"
)

// Summary texts used by Analyze.
const (
	summaryEmpty       = "Empty string - balanced by default"
	verdictBalanced    = "Balanced"
	verdictNotBalanced = "Not balanced"
)

// IsVowel reports whether b is one of a, e, i, o, u in either case.
// Only ASCII letters are folded; every other byte is not a vowel.
func IsVowel(b byte) bool {
	// ASCII fold: 'A'..'Z' differ from 'a'..'z' only in bit 0x20.
	if 'A' <= b && b <= 'Z' {
		b |= 0x20
	}
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}

	return false
}

// IsBalanced reports whether the first and second halves of s contain the
// same number of vowels. For odd lengths the center byte is ignored.
//
// Edge cases:
//   - ""          → true (0 vs 0)
//   - single byte → true (the byte is the center)
//
// Complexity: O(len(s)) time, O(1) space.
func IsBalanced(s string) bool {
	h := split(s)

	return countVowels(h.first) == countVowels(h.second)
}

// Analyze runs the same split and count as IsBalanced and returns every
// intermediate value in a Report.
//
// Example:
//
//	r := Analyze("world")
//	// r.FirstHalf == "wo", r.SecondHalf == "ld", r.Center == 'r'
//	// r.Summary  == "Not balanced - 1 vs 0 vowels"
func Analyze(s string) Report {
	h := split(s)
	first, second := countVowels(h.first), countVowels(h.second)

	r := Report{
		Input:        s,
		Length:       len(s),
		FirstHalf:    h.first,
		SecondHalf:   h.second,
		FirstVowels:  first,
		SecondVowels: second,
		HasCenter:    h.hasCenter,
		Center:       h.center,
		Balanced:     first == second,
	}
	r.Summary = summarize(r)

	return r
}

// String renders the report as the multi-line block printed by the CLI.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Input: '%s'\n", r.Input)
	fmt.Fprintf(&sb, "Length: %d\n", r.Length)
	fmt.Fprintf(&sb, "First half: '%s' (%d vowels)\n", r.FirstHalf, r.FirstVowels)
	fmt.Fprintf(&sb, "Second half: '%s' (%d vowels)\n", r.SecondHalf, r.SecondVowels)
	if r.HasCenter {
		fmt.Fprintf(&sb, "Center character (ignored): '%s'\n", []byte{r.Center})
	}
	fmt.Fprintf(&sb, "Result: %t - %s", r.Balanced, r.Summary)

	return sb.String()
}

// split cuts s at len(s)/2, dropping the center byte when len(s) is odd.
func split(s string) halves {
	n := len(s)
	mid := n / 2
	h := halves{
		first:  s[:mid],
		second: s[mid+n%2:],
	}
	if n%2 == 1 {
		h.center, h.hasCenter = s[mid], true
	}

	return h
}

// countVowels returns the number of bytes in s for which IsVowel holds.
func countVowels(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if IsVowel(s[i]) {
			count++
		}
	}

	return count
}

func summarize(r Report) string {
	if r.Length == 0 {
		return summaryEmpty
	}
	verdict := verdictNotBalanced
	if r.Balanced {
		verdict = verdictBalanced
	}

	return fmt.Sprintf("%s - %d vs %d vowels", verdict, r.FirstVowels, r.SecondVowels)
}
