package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShare(t *testing.T) {
	tests := []struct {
		name    string
		x       *big.Int
		y       *big.Int
		wantErr error
	}{
		{
			name: "valid",
			x:    big.NewInt(1),
			y:    big.NewInt(42),
		},
		{
			name:    "zero index",
			x:       big.NewInt(0),
			y:       big.NewInt(42),
			wantErr: ErrInvalidShareX,
		},
		{
			name:    "negative index",
			x:       big.NewInt(-3),
			y:       big.NewInt(42),
			wantErr: ErrInvalidShareX,
		},
		{
			name:    "nil index",
			x:       nil,
			y:       big.NewInt(42),
			wantErr: ErrInvalidShareX,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share, err := NewShare(tt.x, tt.y)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, share)
				return
			}

			require.NoError(t, err)
			assert.Zero(t, share.X.Cmp(tt.x))
			assert.Zero(t, share.Y.Cmp(tt.y))
		})
	}
}

func TestNewShareCopiesInputs(t *testing.T) {
	x := big.NewInt(3)
	y := big.NewInt(7)

	share, err := NewShare(x, y)
	require.NoError(t, err)

	x.SetInt64(99)
	y.SetInt64(99)

	assert.Equal(t, int64(3), share.X.Int64())
	assert.Equal(t, int64(7), share.Y.Int64())
}

func TestShareClone(t *testing.T) {
	original := makeShare(t, 2, 11)
	clone := original.Clone()

	require.True(t, original.Equal(clone))

	clone.Y.SetInt64(99)
	assert.Equal(t, int64(11), original.Y.Int64())
}

func TestShareEqual(t *testing.T) {
	a := makeShare(t, 1, 5)
	b := makeShare(t, 1, 5)
	c := makeShare(t, 2, 5)
	d := makeShare(t, 1, 6)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))

	var nilShare *Share
	assert.True(t, nilShare.Equal(nil))
}
