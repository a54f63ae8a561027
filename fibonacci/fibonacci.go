package fibonacci

import "fmt"

// Generate returns the first length elements of the sequence seeded by seed.
//
//	length == 0 → []          (empty, non-nil)
//	length == 1 → [A]
//	length == 2 → [A, B]
//	length  > 2 → [A, B, A+B, …]
//
// The returned slice is freshly allocated on every call. Integer overflow
// wraps exactly as Go arithmetic on T does; use GenerateBig when that
// matters.
//
// Errors:
//   - ErrNegativeLength — length < 0.
//
// Complexity: O(length) time and space.
func Generate[T Number](seed Seed[T], length int) ([]T, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrNegativeLength, length)
	}
	out := make([]T, length)
	if length == 0 {
		return out, nil
	}
	out[0] = seed.A
	if length == 1 {
		return out, nil
	}
	out[1] = seed.B
	for i := 2; i < length; i++ {
		out[i] = out[i-1] + out[i-2]
	}

	return out, nil
}

// SeedFromSlice converts a dynamic seed list into a Seed.
// It fails with ErrSeedArity unless vals holds exactly two values.
func SeedFromSlice[T Number](vals []T) (Seed[T], error) {
	if len(vals) != 2 {
		return Seed[T]{}, fmt.Errorf("%w (got %d)", ErrSeedArity, len(vals))
	}

	return Seed[T]{A: vals[0], B: vals[1]}, nil
}
