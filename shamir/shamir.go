// Package shamir reconstructs secrets protected by a threshold
// secret-sharing scheme. Given n decoded shares and a threshold k, it
// recovers the constant term of the degree-(k-1) polynomial through the
// shares by Lagrange interpolation at x = 0, over exact rational arithmetic.
//
// Unlike prime-field reconstruction, the exact-rational approach cannot
// alias a large secret to a wrong value, and it allows cross-validating
// every k-subset of the shares: any subset of genuine shares from the same
// polynomial interpolates to the same value, so disagreement is evidence of
// corrupted, mismatched or forged shares.
package shamir

import (
	"github.com/vitalvas/sharekit/combin"
	"github.com/vitalvas/sharekit/rational"
)

// Result holds the outcome of a reconstruction: the distinct secret
// candidates found across all k-subsets, in discovery order.
type Result struct {
	// Candidates contains every distinct interpolated value, ordered by
	// first discovery in the lexicographic enumeration of subsets.
	// Exactly one entry means the shares are consistent.
	Candidates []*rational.Rational
}

// Consistent reports whether every k-subset agreed on a single secret.
func (r *Result) Consistent() bool {
	return len(r.Candidates) == 1
}

// Secret returns the reconstructed secret, or nil if the shares were
// inconsistent. A non-integer secret (denominator > 1) is returned as-is;
// it usually signals a decoding error or corrupted share even when all
// subsets agree.
func (r *Result) Secret() *rational.Rational {
	if !r.Consistent() {
		return nil
	}
	return r.Candidates[0]
}

// insert adds a candidate unless an equal value is already present.
// The candidate count is bounded by C(n, k) but is tiny in practice, so a
// linear scan keeps the first-discovery order without extra bookkeeping.
func (r *Result) insert(candidate *rational.Rational) {
	for _, existing := range r.Candidates {
		if existing.Equal(candidate) {
			return
		}
	}
	r.Candidates = append(r.Candidates, candidate)
}

// Reconstruct recovers the secret from the given shares, cross-validating
// every k-subset. It interpolates each of the C(n, k) subsets at x = 0 and
// collects the distinct results.
//
// Parameters:
//   - shares: the decoded shares, at least threshold of them
//   - threshold: minimum number of shares defining the polynomial (k)
//
// Returns a Result whose Candidates hold either the single agreed secret or
// the full conflict set. Reconstruction is deterministic: the same input
// always produces the identical Result.
func Reconstruct(shares []*Share, threshold int) (*Result, error) {
	if err := validateShares(shares, threshold); err != nil {
		return nil, err
	}

	result := &Result{}
	points := make([]*Share, threshold)

	enum := combin.New(len(shares), threshold)
	for {
		idx, ok := enum.Next()
		if !ok {
			break
		}

		for i, j := range idx {
			points[i] = shares[j]
		}

		candidate, err := InterpolateAtZero(points)
		if err != nil {
			return nil, err
		}

		result.insert(candidate)
	}

	return result, nil
}

// validateShares rejects inputs that cannot produce a meaningful
// reconstruction before any combination is attempted.
func validateShares(shares []*Share, threshold int) error {
	if threshold < 1 {
		return ErrInvalidThreshold
	}

	if len(shares) < threshold {
		return ErrInsufficientShares
	}

	seen := make(map[string]bool, len(shares))
	for _, share := range shares {
		if share.X == nil || share.X.Sign() <= 0 {
			return ErrInvalidShareX
		}
		key := share.X.String()
		if seen[key] {
			return ErrDuplicateShares
		}
		seen[key] = true
	}

	return nil
}
