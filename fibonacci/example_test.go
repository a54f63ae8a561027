package fibonacci_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/kata/fibonacci"
)

// ExampleGenerate prints the classic sequence and a custom one.
func ExampleGenerate() {
	classic, _ := fibonacci.Generate(fibonacci.Pair(0, 1), 10)
	custom, _ := fibonacci.Generate(fibonacci.Pair(-1, 4), 4)
	fmt.Println(classic)
	fmt.Println(custom)

	_, err := fibonacci.Generate(fibonacci.Pair(0, 1), -1)
	fmt.Println(err)
	// Output:
	// [0 1 1 2 3 5 8 13 21 34]
	// [-1 4 3 7]
	// fibonacci: invalid argument: length must be a non-negative integer (got -1)
}

// ExampleGenerateBig goes past the range of uint64.
func ExampleGenerateBig() {
	seq, _ := fibonacci.GenerateBig(big.NewInt(0), big.NewInt(1), 101)
	fmt.Println(seq[100])
	// Output:
	// 354224848179261915075
}
