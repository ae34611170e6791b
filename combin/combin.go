// Package combin enumerates k-element subsets of {0, ..., n-1} in
// lexicographic order.
package combin

import "math/big"

// Enumerator produces every k-element subset of an n-element universe as a
// strictly increasing index slice, in lexicographic order. The sequence is
// finite, lazy and restartable via Reset.
type Enumerator struct {
	n, k    int
	current []int
	started bool
	done    bool
}

// New returns an enumerator over the C(n, k) subsets of {0, ..., n-1}.
// If k > n (or either argument is negative) the sequence is empty.
func New(n, k int) *Enumerator {
	e := &Enumerator{n: n, k: k}
	if k >= 0 {
		e.current = make([]int, k)
	}
	e.Reset()
	return e
}

// Reset restarts the enumeration from the first subset.
func (e *Enumerator) Reset() {
	e.started = false
	e.done = e.n < 0 || e.k < 0 || e.k > e.n
}

// Next returns the next subset in lexicographic order, or false when the
// sequence is exhausted. The returned slice is a fresh copy that the caller
// may keep.
func (e *Enumerator) Next() ([]int, bool) {
	if e.done {
		return nil, false
	}

	if !e.started {
		e.started = true
		for i := range e.current {
			e.current[i] = i
		}
		return e.snapshot(), true
	}

	// Advance the rightmost index that can still increase, then reset all
	// indices to its right to consecutive values.
	i := e.k - 1
	for i >= 0 && e.current[i] == e.n-e.k+i {
		i--
	}

	if i < 0 {
		e.done = true
		return nil, false
	}

	e.current[i]++
	for j := i + 1; j < e.k; j++ {
		e.current[j] = e.current[j-1] + 1
	}

	return e.snapshot(), true
}

func (e *Enumerator) snapshot() []int {
	out := make([]int, e.k)
	copy(out, e.current)
	return out
}

// All returns every subset as a slice, in enumeration order.
// Intended for small n; the result has C(n, k) entries.
func All(n, k int) [][]int {
	var out [][]int

	e := New(n, k)
	for {
		idx, ok := e.Next()
		if !ok {
			return out
		}
		out = append(out, idx)
	}
}

// Count returns the binomial coefficient C(n, k) exactly.
// Out-of-range arguments yield zero.
func Count(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}

	// C(n, k) = C(n, n-k); use the smaller side.
	if k > n-k {
		k = n - k
	}

	result := big.NewInt(1)
	for i := 1; i <= k; i++ {
		result.Mul(result, big.NewInt(int64(n-k+i)))
		result.Quo(result, big.NewInt(int64(i)))
	}

	return result
}
