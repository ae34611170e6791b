package shamir

import "errors"

var (
	// ErrInvalidThreshold is returned when the threshold is less than 1.
	ErrInvalidThreshold = errors.New("shamir: threshold must be at least 1")

	// ErrInsufficientShares is returned when fewer shares are provided than
	// the threshold requires. No partial result is produced.
	ErrInsufficientShares = errors.New("shamir: insufficient shares for reconstruction")

	// ErrDuplicateShares is returned when two shares carry the same index.
	// Duplicate indices make the Lagrange denominator zero, so they indicate
	// a data error rather than a numeric edge case.
	ErrDuplicateShares = errors.New("shamir: duplicate share indices detected")

	// ErrInvalidShareX is returned when a share index is nil, zero or negative.
	ErrInvalidShareX = errors.New("shamir: share index must be positive")

	// ErrTooManyCombinations is returned by ReconstructParallel when C(n, k)
	// does not fit in memory-addressable bounds.
	ErrTooManyCombinations = errors.New("shamir: combination count too large")
)
