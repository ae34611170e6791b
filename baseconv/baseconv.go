package baseconv

import (
	"errors"
	"fmt"
	"math/big"
)

const (
	// MinBase is the smallest supported numeric base.
	MinBase = 2

	// MaxBase is the largest supported numeric base, limited by the
	// 10-digit + 26-letter alphabet.
	MaxBase = 36
)

var (
	// ErrInvalidBase is returned when the base is outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("baseconv: base must be between 2 and 36")

	// ErrInvalidDigit is returned when a character is not a valid digit for
	// the given base, or the digit string is empty.
	ErrInvalidDigit = errors.New("baseconv: invalid digit for base")
)

// Decode interprets digits as an unsigned integer in the given base,
// accumulating left to right. Letters are case-insensitive: 'a' and 'A'
// both carry the value 10.
//
// Parameters:
//   - digits: the digit string, most significant digit first
//   - base: the numeric base, in [2, 36]
//
// Returns the decoded arbitrary-precision integer.
func Decode(digits string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}

	if len(digits) == 0 {
		return nil, fmt.Errorf("%w: empty digit string", ErrInvalidDigit)
	}

	result := new(big.Int)
	bigBase := big.NewInt(int64(base))
	digit := new(big.Int)

	for _, ch := range digits {
		val := digitValue(ch)
		if val < 0 || val >= base {
			return nil, fmt.Errorf("%w: %q in base %d", ErrInvalidDigit, ch, base)
		}

		result.Mul(result, bigBase)
		result.Add(result, digit.SetInt64(int64(val)))
	}

	return result, nil
}

// digitValue maps a digit character to its numeric value, or -1 if the
// character is not part of the base-36 alphabet.
func digitValue(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10
	}
	return -1
}
