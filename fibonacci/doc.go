// Package fibonacci generates finite additive-recurrence sequences from a
// seed pair.
//
// Starting from Seed{A, B}, every next element is the sum of the previous
// two:
//
//	s[0] = A
//	s[1] = B
//	s[i] = s[i-1] + s[i-2]   for i ≥ 2
//
// With Seed{0, 1} this is the classic Fibonacci sequence, but any numeric
// seeds work, negative ones included: Seed{-1, 4} → -1, 4, 3, 7, 10, …
//
// The seed is a two-field value type, so a malformed seed cannot be
// expressed; the only runtime precondition left is length ≥ 0.
// SeedFromSlice bridges callers that hold the seed as a dynamic list.
//
// GenerateBig is the arbitrary-precision variant on math/big for lengths
// where fixed-width integers would overflow.
//
// No upper bound on length is enforced here; a caller that wants one
// (the kata CLI, for instance) applies it before calling in.
package fibonacci
