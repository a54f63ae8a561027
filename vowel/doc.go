// Package vowel decides whether a string is vowel-balanced.
//
// 🚀 What is a vowel-balanced string?
//
//	Split the string into two halves. If the length is odd, the single
//	center character belongs to neither half. The string is balanced when
//	both halves hold the same number of vowels (a, e, i, o, u in any case).
//
//	  "hello"  →  "he" | l | "lo"   →  1 vs 1  →  balanced
//	  "world"  →  "wo" | r | "ld"   →  1 vs 0  →  not balanced
//
// ✨ Key features:
//   - IsBalanced: the plain boolean check
//   - Analyze:    the same computation, returned as a Report with halves,
//     per-half counts, the ignored center and a one-line summary
//   - ASCII-only classification; any other byte is simply not a vowel
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kata/vowel"
//
//	ok := vowel.IsBalanced("bookkeeper") // false: 2 vs 3
//	r := vowel.Analyze("abcdefg")
//	fmt.Println(r.Summary)              // Balanced - 1 vs 1 vowels
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(1) for IsBalanced; Analyze only re-slices the input.
//
// All functions are pure and safe for concurrent use.
package vowel
