package fibonacci

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella for every precondition violation.
var ErrInvalidArgument = errors.New("fibonacci: invalid argument")

var (
	// ErrNegativeLength indicates a requested length below zero.
	ErrNegativeLength = fmt.Errorf("%w: length must be a non-negative integer", ErrInvalidArgument)

	// ErrSeedArity indicates a dynamic seed that is not exactly two values.
	ErrSeedArity = fmt.Errorf("%w: seed must contain exactly two numbers", ErrInvalidArgument)

	// ErrNilSeed indicates a nil *big.Int seed passed to GenerateBig.
	ErrNilSeed = fmt.Errorf("%w: seed values must be non-nil", ErrInvalidArgument)
)
