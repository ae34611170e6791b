package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeShare(t *testing.T, x, y int64) *Share {
	t.Helper()

	share, err := NewShare(big.NewInt(x), big.NewInt(y))
	require.NoError(t, err)
	return share
}

func TestInterpolateAtZero(t *testing.T) {
	tests := []struct {
		name   string
		points [][2]int64
		want   string
	}{
		{
			// y = 2x + 1
			name:   "line",
			points: [][2]int64{{1, 3}, {2, 5}},
			want:   "1",
		},
		{
			// y = x^2 + 3
			name:   "parabola",
			points: [][2]int64{{1, 4}, {2, 7}, {3, 12}},
			want:   "3",
		},
		{
			// y = x^3 - 2x + 10 through 4 points
			name:   "cubic",
			points: [][2]int64{{1, 9}, {2, 14}, {3, 31}, {4, 66}},
			want:   "10",
		},
		{
			// line through (1,1) and (3,2) has f(0) = 1/2
			name:   "rational secret",
			points: [][2]int64{{1, 1}, {3, 2}},
			want:   "1/2",
		},
		{
			// constant polynomial, single point
			name:   "single point",
			points: [][2]int64{{7, 42}},
			want:   "42",
		},
		{
			// y = -3x + 4 crosses into negatives
			name:   "negative values",
			points: [][2]int64{{2, -2}, {5, -11}},
			want:   "4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]*Share, len(tt.points))
			for i, p := range tt.points {
				points[i] = makeShare(t, p[0], p[1])
			}

			got, err := InterpolateAtZero(points)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestInterpolateAtZeroLargeValues(t *testing.T) {
	// y = a*x + s with coefficients far beyond 64 bits; exact arithmetic
	// must recover s without truncation.
	a, ok := new(big.Int).SetString("987654321098765432109876543210", 10)
	require.True(t, ok)
	s, ok := new(big.Int).SetString("123456789012345678901234567890123456789", 10)
	require.True(t, ok)

	points := make([]*Share, 2)
	for i, x := range []int64{3, 11} {
		y := new(big.Int).Mul(a, big.NewInt(x))
		y.Add(y, s)

		share, err := NewShare(big.NewInt(x), y)
		require.NoError(t, err)
		points[i] = share
	}

	got, err := InterpolateAtZero(points)
	require.NoError(t, err)

	require.True(t, got.IsInt())
	secret, err := got.Integer()
	require.NoError(t, err)
	assert.Zero(t, secret.Cmp(s))
}

func TestInterpolateAtZeroInputOrderIrrelevant(t *testing.T) {
	forward := []*Share{
		makeShare(t, 1, 4),
		makeShare(t, 2, 7),
		makeShare(t, 3, 12),
	}
	reversed := []*Share{forward[2], forward[1], forward[0]}

	a, err := InterpolateAtZero(forward)
	require.NoError(t, err)

	b, err := InterpolateAtZero(reversed)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestInterpolateAtZeroErrors(t *testing.T) {
	t.Run("duplicate indices", func(t *testing.T) {
		points := []*Share{
			makeShare(t, 2, 5),
			makeShare(t, 2, 9),
		}

		got, err := InterpolateAtZero(points)
		assert.ErrorIs(t, err, ErrDuplicateShares)
		assert.Nil(t, got)
	})

	t.Run("no points", func(t *testing.T) {
		got, err := InterpolateAtZero(nil)
		assert.ErrorIs(t, err, ErrInsufficientShares)
		assert.Nil(t, got)
	})
}
