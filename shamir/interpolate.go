package shamir

import (
	"errors"
	"math/big"

	"github.com/vitalvas/sharekit/rational"
)

// InterpolateAtZero evaluates, at x = 0, the unique polynomial of degree
// len(points)-1 passing through the given points:
//
//	f(0) = Σ_i y_i · Π_{j≠i} (0 − x_j) / (x_i − x_j)
//
// All arithmetic is over exact rationals, so the result carries no rounding
// and is independent of evaluation order. It fails with ErrDuplicateShares
// if any two points have the same index, since x_i − x_j is then zero.
func InterpolateAtZero(points []*Share) (*rational.Rational, error) {
	if len(points) == 0 {
		return nil, ErrInsufficientShares
	}

	sum := rational.FromInt64(0)

	for i, p := range points {
		term := rational.FromInt(p.Y)

		for j, q := range points {
			if i == j {
				continue
			}

			num := new(big.Int).Neg(q.X)
			den := new(big.Int).Sub(p.X, q.X)

			frac, err := rational.New(num, den)
			if err != nil {
				return nil, errors.Join(ErrDuplicateShares, err)
			}

			term = term.Mul(frac)
		}

		sum = sum.Add(term)
	}

	return sum, nil
}
