// Package sharefile reads JSON share bundles of the form:
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2",  "value": "111"}
//	}
//
// Each numbered key is a share index (the polynomial's evaluation point);
// the entry's value is a digit string in the entry's base.
package sharefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sort"
	"strconv"

	"github.com/vitalvas/sharekit/baseconv"
	"github.com/vitalvas/sharekit/shamir"
)

var (
	// ErrInvalidFormat is returned when the bundle is not the expected JSON shape.
	ErrInvalidFormat = errors.New("sharefile: invalid share bundle format")

	// ErrMissingKeys is returned when the bundle has no "keys" object.
	ErrMissingKeys = errors.New("sharefile: missing keys object")

	// ErrInvalidKeys is returned when the declared n and k are not positive
	// integers with n >= k.
	ErrInvalidKeys = errors.New("sharefile: keys object must declare positive n and k with n >= k")

	// ErrInvalidIndex is returned when a share key is not a positive decimal integer.
	ErrInvalidIndex = errors.New("sharefile: share index must be a positive integer")

	// ErrDuplicateIndex is returned when two entries resolve to the same index.
	ErrDuplicateIndex = errors.New("sharefile: duplicate share index")
)

// Bundle is a decoded share file: the declared parameters plus the shares,
// sorted by index ascending.
type Bundle struct {
	// N is the declared total number of shares.
	N int
	// K is the threshold: the minimum number of shares that define the polynomial.
	K int
	// Shares holds the decoded shares in ascending index order.
	Shares []*shamir.Share
}

type keysInfo struct {
	N int `json:"n"`
	K int `json:"k"`
}

type shareEntry struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

// Read loads and parses a share bundle from the given file.
func Read(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a share bundle from JSON. Share values are decoded from
// their stated base into arbitrary-precision integers.
func Parse(data []byte) (*Bundle, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidFormat, err)
	}

	keysRaw, ok := raw["keys"]
	if !ok {
		return nil, ErrMissingKeys
	}

	var keys keysInfo
	if err := json.Unmarshal(keysRaw, &keys); err != nil {
		return nil, errors.Join(ErrInvalidFormat, err)
	}

	if keys.N < 1 || keys.K < 1 || keys.K > keys.N {
		return nil, fmt.Errorf("%w: n=%d k=%d", ErrInvalidKeys, keys.N, keys.K)
	}

	shares := make([]*shamir.Share, 0, len(raw)-1)
	for key, entryRaw := range raw {
		if key == "keys" {
			continue
		}

		x, ok := new(big.Int).SetString(key, 10)
		if !ok || x.Sign() <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIndex, key)
		}

		var entry shareEntry
		if err := json.Unmarshal(entryRaw, &entry); err != nil {
			return nil, errors.Join(ErrInvalidFormat, err)
		}

		base, err := strconv.Atoi(entry.Base)
		if err != nil {
			return nil, fmt.Errorf("sharefile: share %s: %w: %q", key, baseconv.ErrInvalidBase, entry.Base)
		}

		y, err := baseconv.Decode(entry.Value, base)
		if err != nil {
			return nil, fmt.Errorf("sharefile: share %s: %w", key, err)
		}

		share, err := shamir.NewShare(x, y)
		if err != nil {
			return nil, fmt.Errorf("sharefile: share %s: %w", key, err)
		}

		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		return shares[i].X.Cmp(shares[j].X) < 0
	})

	// JSON keys are unique as strings, but "1" and "01" are the same index.
	for i := 1; i < len(shares); i++ {
		if shares[i].X.Cmp(shares[i-1].X) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIndex, shares[i].X)
		}
	}

	return &Bundle{
		N:      keys.N,
		K:      keys.K,
		Shares: shares,
	}, nil
}
