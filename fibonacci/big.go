package fibonacci

import (
	"fmt"
	"math/big"
)

// GenerateBig is Generate on arbitrary-precision integers.
//
// Every returned element is a distinct *big.Int; a and b are copied, so
// mutating the result never touches the caller's seeds and vice versa.
//
// Errors:
//   - ErrNegativeLength — length < 0.
//   - ErrNilSeed        — a or b is nil.
func GenerateBig(a, b *big.Int, length int) ([]*big.Int, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrNegativeLength, length)
	}
	if a == nil || b == nil {
		return nil, ErrNilSeed
	}
	out := make([]*big.Int, length)
	if length == 0 {
		return out, nil
	}
	out[0] = new(big.Int).Set(a)
	if length == 1 {
		return out, nil
	}
	out[1] = new(big.Int).Set(b)
	for i := 2; i < length; i++ {
		out[i] = new(big.Int).Add(out[i-1], out[i-2])
	}

	return out, nil
}
