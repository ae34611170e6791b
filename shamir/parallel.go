package shamir

import (
	"math"
	"runtime"
	"sync"

	"github.com/vitalvas/sharekit/combin"
	"github.com/vitalvas/sharekit/rational"
)

// ReconstructParallel behaves exactly like Reconstruct but interpolates
// combinations on a bounded worker pool. Subsets are independent, so they
// are fanned out to workers and the per-subset results are merged back in
// enumeration order, keeping the output byte-identical to the sequential
// version.
//
// workers <= 0 selects runtime.NumCPU(). It fails with
// ErrTooManyCombinations when C(n, k) exceeds addressable bounds; callers
// with combinatorially large inputs should impose their own ceiling first.
func ReconstructParallel(shares []*Share, threshold, workers int) (*Result, error) {
	if err := validateShares(shares, threshold); err != nil {
		return nil, err
	}

	count := combin.Count(len(shares), threshold)
	if !count.IsInt64() || count.Int64() > math.MaxInt32 {
		return nil, ErrTooManyCombinations
	}
	total := int(count.Int64())

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > total {
		workers = total
	}

	type job struct {
		ord int
		idx []int
	}

	jobs := make(chan job)
	candidates := make([]*rational.Rational, total)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			points := make([]*Share, threshold)
			for jb := range jobs {
				for i, j := range jb.idx {
					points[i] = shares[j]
				}

				candidate, err := InterpolateAtZero(points)
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					continue
				}

				// Ordinals are unique per job, so no lock is needed.
				candidates[jb.ord] = candidate
			}
		}()
	}

	enum := combin.New(len(shares), threshold)
	for ord := 0; ; ord++ {
		idx, ok := enum.Next()
		if !ok {
			break
		}
		jobs <- job{ord: ord, idx: idx}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	result := &Result{}
	for _, candidate := range candidates {
		result.insert(candidate)
	}

	return result, nil
}
