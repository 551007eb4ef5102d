// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import (
	"encoding"
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Balance is an unsigned 256-bit amount of tokens.
// The zero value is a zero balance.
type Balance uint256.Int

var (
	_ encoding.TextMarshaler   = Balance{}
	_ encoding.TextUnmarshaler = (*Balance)(nil)
)

// MaxBalance is the largest representable balance.
var MaxBalance = Balance(*new(uint256.Int).SetAllOne())

// NewBalance creates a balance from uint64.
func NewBalance(v uint64) Balance {
	return Balance(*uint256.NewInt(v))
}

// ParseBalance parses a decimal string into balance.
func ParseBalance(s string) (Balance, error) {
	if s == "" {
		return Balance{}, errors.New("empty balance")
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Balance{}, fmt.Errorf("invalid balance %q: %w", s, err)
	}
	return Balance(*v), nil
}

// MustParseBalance parses the balance and panics on error.
func MustParseBalance(s string) Balance {
	b, err := ParseBalance(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Balance) u256() *uint256.Int {
	return (*uint256.Int)(b)
}

// CheckedAdd returns b + x. ok is false if the sum exceeds MaxBalance.
func (b Balance) CheckedAdd(x Balance) (Balance, bool) {
	var sum uint256.Int
	if _, overflow := sum.AddOverflow(b.u256(), x.u256()); overflow {
		return Balance{}, false
	}
	return Balance(sum), true
}

// CheckedSub returns b - x. ok is false if x is greater than b.
func (b Balance) CheckedSub(x Balance) (Balance, bool) {
	var diff uint256.Int
	if _, underflow := diff.SubOverflow(b.u256(), x.u256()); underflow {
		return Balance{}, false
	}
	return Balance(diff), true
}

// Cmp compares b and x and returns -1, 0 or +1.
func (b Balance) Cmp(x Balance) int {
	return b.u256().Cmp(x.u256())
}

// IsZero returns if the balance is zero.
func (b Balance) IsZero() bool {
	return b.u256().IsZero()
}

// Uint256 returns a copy of the balance as *uint256.Int.
func (b Balance) Uint256() *uint256.Int {
	return b.u256().Clone()
}

// ToBig returns the balance as *big.Int.
func (b Balance) ToBig() *big.Int {
	return b.u256().ToBig()
}

// String returns the decimal form.
func (b Balance) String() string {
	return b.u256().Dec()
}

// MarshalText implements encoding.TextMarshaler.
func (b Balance) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Balance) UnmarshalText(text []byte) error {
	parsed, err := ParseBalance(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
