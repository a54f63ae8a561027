package radix_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/kata/radix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsValid_Table covers the reference numerals and mixed cases.
func TestIsValid_Table(t *testing.T) {
	cases := []struct {
		in   string
		base int
		want bool
	}{
		{"101", 2, true},
		{"102", 2, false},
		{"ABC", 16, true},
		{"abc", 16, true},
		{"GHI", 16, false},
		{"zZ", 36, true},
		{"1F", 16, true},
		{"1f", 15, false},
		{"9", 10, true},
		{"A", 10, false},
		{"-12", 10, false}, // sign is not a digit
		{"1 0", 2, false},  // neither is whitespace
		{"1.5", 10, false},
		{"0", 2, true},
		{"Z", 35, false},
	}
	for _, tc := range cases {
		got, err := radix.IsValid(tc.in, tc.base)
		require.NoErrorf(t, err, "IsValid(%q, %d)", tc.in, tc.base)
		assert.Equalf(t, tc.want, got, "IsValid(%q, %d)", tc.in, tc.base)
	}
}

// TestIsValid_EmptyIsInvalid holds for every supported base.
func TestIsValid_EmptyIsInvalid(t *testing.T) {
	for base := radix.MinBase; base <= radix.MaxBase; base++ {
		got, err := radix.IsValid("", base)
		require.NoError(t, err)
		assert.Falsef(t, got, "empty string in base %d", base)
	}
}

// TestIsValid_BadBase ensures out-of-range bases are errors, not clamps.
func TestIsValid_BadBase(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 37, 100} {
		got, err := radix.IsValid("1", base)
		assert.Falsef(t, got, "base %d", base)
		assert.ErrorIsf(t, err, radix.ErrInvalidBase, "base %d", base)
		assert.ErrorIsf(t, err, radix.ErrInvalidArgument, "base %d", base)
	}
	// The base is checked before the empty-input shortcut.
	_, err := radix.IsValid("", 1)
	assert.True(t, errors.Is(err, radix.ErrInvalidBase))
}

// TestIsValid_EveryBase checks the highest digit is accepted and the next rejected.
func TestIsValid_EveryBase(t *testing.T) {
	const symbols = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for base := radix.MinBase; base <= radix.MaxBase; base++ {
		top := string(symbols[base-1])
		ok, err := radix.IsValid(top, base)
		require.NoError(t, err)
		assert.Truef(t, ok, "%s in base %d", top, base)

		if base < radix.MaxBase {
			next := string(symbols[base])
			ok, err = radix.IsValid(next, base)
			require.NoError(t, err)
			assert.Falsef(t, ok, "%s in base %d", next, base)
		}
	}
}

// TestDigitValue checks both cases map to the same value.
func TestDigitValue(t *testing.T) {
	cases := []struct {
		c    byte
		want int
		ok   bool
	}{
		{'0', 0, true}, {'9', 9, true},
		{'A', 10, true}, {'a', 10, true},
		{'Z', 35, true}, {'z', 35, true},
		{'-', 0, false}, {' ', 0, false}, {'@', 0, false}, {'[', 0, false},
	}
	for _, tc := range cases {
		v, ok := radix.DigitValue(tc.c)
		assert.Equalf(t, tc.ok, ok, "DigitValue(%q) ok", tc.c)
		assert.Equalf(t, tc.want, v, "DigitValue(%q) value", tc.c)
	}
}

// TestValidDigits checks vocabulary length and ordering.
func TestValidDigits(t *testing.T) {
	d, err := radix.ValidDigits(2)
	require.NoError(t, err)
	assert.Equal(t, []byte("01"), d)

	d, err = radix.ValidDigits(16)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789ABCDEF"), d)

	d, err = radix.ValidDigits(36)
	require.NoError(t, err)
	assert.Len(t, d, 36)
	assert.Equal(t, byte('Z'), d[35])

	_, err = radix.ValidDigits(37)
	assert.ErrorIs(t, err, radix.ErrInvalidBase)
}

// TestValidDigits_Independent ensures callers cannot corrupt later results.
func TestValidDigits_Independent(t *testing.T) {
	d, err := radix.ValidDigits(10)
	require.NoError(t, err)
	d[0] = 'X'

	again, err := radix.ValidDigits(10)
	require.NoError(t, err)
	assert.Equal(t, byte('0'), again[0])
}

// TestDigitsString checks the display form.
func TestDigitsString(t *testing.T) {
	s, err := radix.DigitsString(12)
	require.NoError(t, err)
	assert.Equal(t, "0, 1, 2, 3, 4, 5, 6, 7, 8, 9, A, B", s)

	_, err = radix.DigitsString(0)
	assert.ErrorIs(t, err, radix.ErrInvalidBase)
}

// TestDiagnose lists every offender with its value or the invalid marker.
func TestDiagnose(t *testing.T) {
	off, err := radix.Diagnose("1g-H", 16)
	require.NoError(t, err)
	require.Len(t, off, 3)

	assert.Equal(t, radix.Offense{Position: 1, Symbol: "G", Value: 16, Alphanumeric: true}, off[0])
	assert.Equal(t, radix.Offense{Position: 2, Symbol: "-", Alphanumeric: false}, off[1])
	assert.Equal(t, radix.Offense{Position: 3, Symbol: "H", Value: 17, Alphanumeric: true}, off[2])

	assert.Equal(t, "'G' (value 16)", off[0].String())
	assert.Equal(t, "'-' (invalid character)", off[1].String())
}

// TestDiagnose_ValidOrEmpty returns no offenders.
func TestDiagnose_ValidOrEmpty(t *testing.T) {
	off, err := radix.Diagnose("ABC", 16)
	require.NoError(t, err)
	assert.Empty(t, off)

	off, err = radix.Diagnose("", 2)
	require.NoError(t, err)
	assert.Empty(t, off)

	_, err = radix.Diagnose("1", 1)
	assert.ErrorIs(t, err, radix.ErrInvalidBase)
}

// TestDiagnose_AgreesWithIsValid guards against the two paths diverging.
func TestDiagnose_AgreesWithIsValid(t *testing.T) {
	inputs := []string{"101", "102", "ABC", "GHI", "zZ", "7_7", "ff", "FFG"}
	for _, base := range []int{2, 8, 10, 16, 36} {
		for _, s := range inputs {
			ok, err := radix.IsValid(s, base)
			require.NoError(t, err)
			off, err := radix.Diagnose(s, base)
			require.NoError(t, err)
			assert.Equalf(t, ok, len(off) == 0, "%q base %d", s, base)
		}
	}
}

// TestCheck bundles all three views.
func TestCheck(t *testing.T) {
	res, err := radix.Check("GHI", 16)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, 16, res.Base)
	assert.Equal(t, "GHI", res.Input)
	assert.Equal(t, "0, 1, 2, 3, 4, 5, 6, 7, 8, 9, A, B, C, D, E, F", res.Digits)
	assert.Len(t, res.Offenses, 3)

	res, err = radix.Check("101", 2)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Nil(t, res.Offenses)

	_, err = radix.Check("101", 37)
	assert.ErrorIs(t, err, radix.ErrInvalidBase)
}

// TestIsValid_Concurrent calls the validator from many goroutines.
func TestIsValid_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			if _, err := radix.IsValid("zZ", base); err != nil {
				errs <- err
			}
		}(radix.MinBase + i%(radix.MaxBase-radix.MinBase+1))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}
}
