// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

// Checked is implemented by amounts that detect arithmetic overflow instead of wrapping.
// The zero value of T must be the additive identity.
type Checked[T any] interface {
	comparable
	// CheckedAdd returns the sum, or false if it is not representable.
	CheckedAdd(T) (T, bool)
	// CheckedSub returns the difference, or false if it would be negative.
	CheckedSub(T) (T, bool)
}

// Counter is implemented by monotonic counters such as block numbers and nonces.
type Counter interface {
	~uint32 | ~uint64
}

type (
	// BlockNumber is the height of the chain.
	BlockNumber = uint32
	// Nonce counts the transactions sent by an account.
	Nonce = uint64
)
