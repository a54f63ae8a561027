package fibonacci

// Number is any built-in integer or floating-point type, including named
// types derived from them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Seed is the ordered pair a sequence starts from.
type Seed[T Number] struct {
	A T // first element
	B T // second element
}

// Pair returns Seed{A: a, B: b}.
func Pair[T Number](a, b T) Seed[T] {
	return Seed[T]{A: a, B: b}
}
