package shamir

import "math/big"

// Share represents a single share of a secret: one evaluation point of the
// secret-encoding polynomial. Shares are immutable once created.
type Share struct {
	// X is the share index (the polynomial's evaluation point), must be positive.
	X *big.Int
	// Y is the share value (the polynomial's value at X), already decoded
	// from its source base.
	Y *big.Int
}

// NewShare returns a share with defensive copies of x and y.
// It fails with ErrInvalidShareX unless x is a positive integer.
func NewShare(x, y *big.Int) (*Share, error) {
	if x == nil || x.Sign() <= 0 {
		return nil, ErrInvalidShareX
	}
	return &Share{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
	}, nil
}

// Clone creates a deep copy of the share.
func (s *Share) Clone() *Share {
	return &Share{
		X: new(big.Int).Set(s.X),
		Y: new(big.Int).Set(s.Y),
	}
}

// Equal checks if two shares are equal.
func (s *Share) Equal(other *Share) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.X.Cmp(other.X) == 0 && s.Y.Cmp(other.Y) == 0
}
