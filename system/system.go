// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package system keeps the low level chain state: the block number and the nonce of every account.
package system

import (
	"cmp"
	"errors"
	"maps"
	"slices"

	"github.com/vechain/minithor/thor"
)

// ErrCounterOverflow is the panic value raised when a counter is incremented past its maximum.
var ErrCounterOverflow = errors.New("counter overflow")

// Pallet tracks the block number and per-account nonces.
// It is not safe for concurrent use.
type Pallet[A cmp.Ordered, BN thor.Counter, N thor.Counter] struct {
	blockNumber BN
	nonces      map[A]N
}

// New creates a system pallet at block zero.
func New[A cmp.Ordered, BN thor.Counter, N thor.Counter]() *Pallet[A, BN, N] {
	return &Pallet[A, BN, N]{nonces: make(map[A]N)}
}

// BlockNumber returns the current block number.
func (p *Pallet[A, BN, N]) BlockNumber() BN {
	return p.blockNumber
}

// IncBlockNumber increases the block number by one.
func (p *Pallet[A, BN, N]) IncBlockNumber() {
	p.blockNumber = inc(p.blockNumber)
	metricBlockNumber().Set(int64(p.blockNumber))
}

// Nonce returns the nonce of who, or zero if who has none.
func (p *Pallet[A, BN, N]) Nonce(who A) N {
	return p.nonces[who]
}

// IncNonce increases the nonce of who by one.
func (p *Pallet[A, BN, N]) IncNonce(who A) {
	p.nonces[who] = inc(p.nonces[who])
	metricNonceIncrements().Add(1)
}

// Accounts returns the accounts having a nonce, in ascending order.
func (p *Pallet[A, BN, N]) Accounts() []A {
	return slices.Sorted(maps.Keys(p.nonces))
}

func inc[T thor.Counter](v T) T {
	next := v + 1
	if next < v {
		panic(ErrCounterOverflow)
	}
	return next
}
