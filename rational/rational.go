package rational

import (
	"errors"
	"math/big"
)

var (
	// ErrZeroDenominator is returned when constructing a fraction with a zero
	// denominator, or when dividing by a zero value.
	ErrZeroDenominator = errors.New("rational: denominator must be non-zero")

	// ErrNotAnInteger is returned by Integer when the value has a denominator
	// other than 1. This is an expected outcome for callers probing whether a
	// result is integral, not a computation failure.
	ErrNotAnInteger = errors.New("rational: value is not an integer")
)

// Rational is an immutable, fully reduced fraction of arbitrary-precision
// integers. The denominator is always positive and gcd(|num|, den) = 1, so
// two equal values always have identical numerator/denominator pairs.
type Rational struct {
	num *big.Int
	den *big.Int
}

// New returns the reduced fraction num/den.
// It fails with ErrZeroDenominator if den is zero.
func New(num, den *big.Int) (*Rational, error) {
	if den.Sign() == 0 {
		return nil, ErrZeroDenominator
	}
	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FromInt returns n as a rational with denominator 1.
func FromInt(n *big.Int) *Rational {
	return &Rational{
		num: new(big.Int).Set(n),
		den: big.NewInt(1),
	}
}

// FromInt64 returns n as a rational with denominator 1.
func FromInt64(n int64) *Rational {
	return &Rational{
		num: big.NewInt(n),
		den: big.NewInt(1),
	}
}

// reduce normalizes the sign onto the numerator and divides out the gcd.
// It takes ownership of num and den.
func reduce(num, den *big.Int) *Rational {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	num.Quo(num, g)
	den.Quo(den, g)

	return &Rational{num: num, den: den}
}

// Add returns r + other.
func (r *Rational) Add(other *Rational) *Rational {
	num := new(big.Int).Mul(r.num, other.den)
	num.Add(num, new(big.Int).Mul(other.num, r.den))
	den := new(big.Int).Mul(r.den, other.den)
	return reduce(num, den)
}

// Sub returns r - other.
func (r *Rational) Sub(other *Rational) *Rational {
	num := new(big.Int).Mul(r.num, other.den)
	num.Sub(num, new(big.Int).Mul(other.num, r.den))
	den := new(big.Int).Mul(r.den, other.den)
	return reduce(num, den)
}

// Mul returns r * other.
func (r *Rational) Mul(other *Rational) *Rational {
	num := new(big.Int).Mul(r.num, other.num)
	den := new(big.Int).Mul(r.den, other.den)
	return reduce(num, den)
}

// Div returns r / other.
// It fails with ErrZeroDenominator if other is zero.
func (r *Rational) Div(other *Rational) (*Rational, error) {
	if other.num.Sign() == 0 {
		return nil, ErrZeroDenominator
	}
	num := new(big.Int).Mul(r.num, other.den)
	den := new(big.Int).Mul(r.den, other.num)
	return reduce(num, den), nil
}

// Cmp compares r and other, returning -1, 0 or +1.
// Denominators are always positive, so cross-multiplication preserves order.
func (r *Rational) Cmp(other *Rational) int {
	left := new(big.Int).Mul(r.num, other.den)
	right := new(big.Int).Mul(other.num, r.den)
	return left.Cmp(right)
}

// Equal reports whether r and other represent the same value.
func (r *Rational) Equal(other *Rational) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.num.Cmp(other.num) == 0 && r.den.Cmp(other.den) == 0
}

// Sign returns -1, 0 or +1 depending on the sign of the value.
func (r *Rational) Sign() int {
	return r.num.Sign()
}

// IsInt reports whether the value is an exact integer (denominator 1).
func (r *Rational) IsInt() bool {
	return r.den.Cmp(big.NewInt(1)) == 0
}

// Integer returns the value as an integer.
// It fails with ErrNotAnInteger if the denominator is not 1.
func (r *Rational) Integer() (*big.Int, error) {
	if !r.IsInt() {
		return nil, ErrNotAnInteger
	}
	return new(big.Int).Set(r.num), nil
}

// Num returns a copy of the numerator.
func (r *Rational) Num() *big.Int {
	return new(big.Int).Set(r.num)
}

// Den returns a copy of the denominator.
func (r *Rational) Den() *big.Int {
	return new(big.Int).Set(r.den)
}

// String renders an integer value as its bare decimal digits, and any other
// value as "numerator/denominator", so the two cases are never ambiguous.
func (r *Rational) String() string {
	if r.IsInt() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}
