// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package balances keeps track of how much each account owns and moves value between accounts.
package balances

import (
	"cmp"
	"errors"
	"maps"
	"slices"

	"github.com/vechain/minithor/thor"
)

var (
	// ErrInsufficientFunds is returned when the sender owns less than the transferred amount.
	ErrInsufficientFunds = errors.New("not enough funds")
	// ErrOverflow is returned when the recipient balance would exceed the largest representable amount.
	ErrOverflow = errors.New("balance overflow")
)

// Pallet maps accounts to balances. An account without entry has a zero balance.
// It is not safe for concurrent use.
type Pallet[A cmp.Ordered, B thor.Checked[B]] struct {
	balances map[A]B
}

// New creates an empty balances pallet.
func New[A cmp.Ordered, B thor.Checked[B]]() *Pallet[A, B] {
	return &Pallet[A, B]{balances: make(map[A]B)}
}

// Balance returns the balance of who, or zero if who has none.
func (p *Pallet[A, B]) Balance(who A) B {
	return p.balances[who]
}

// SetBalance overwrites the balance of who.
func (p *Pallet[A, B]) SetBalance(who A, amount B) {
	p.balances[who] = amount
}

// Transfer moves amount from caller to to.
// Both balances are read before anything is written, and nothing is written on error.
// A transfer to self only requires caller to own amount and leaves its balance unchanged.
func (p *Pallet[A, B]) Transfer(caller, to A, amount B) error {
	callerBalance := p.Balance(caller)
	toBalance := p.Balance(to)

	newCallerBalance, ok := callerBalance.CheckedSub(amount)
	if !ok {
		metricTransferCount().AddWithLabel(1, map[string]string{"result": "insufficient_funds"})
		return ErrInsufficientFunds
	}
	if caller == to {
		metricTransferCount().AddWithLabel(1, map[string]string{"result": "ok"})
		return nil
	}
	newToBalance, ok := toBalance.CheckedAdd(amount)
	if !ok {
		metricTransferCount().AddWithLabel(1, map[string]string{"result": "overflow"})
		return ErrOverflow
	}

	p.SetBalance(caller, newCallerBalance)
	p.SetBalance(to, newToBalance)
	metricTransferCount().AddWithLabel(1, map[string]string{"result": "ok"})
	return nil
}

// Accounts returns the accounts having an entry, in ascending order.
func (p *Pallet[A, B]) Accounts() []A {
	return slices.Sorted(maps.Keys(p.balances))
}

// Len returns the number of accounts having an entry.
func (p *Pallet[A, B]) Len() int {
	return len(p.balances)
}

// TotalIssuance sums all balances. ok is false if the sum is not representable.
func (p *Pallet[A, B]) TotalIssuance() (total B, ok bool) {
	for _, b := range p.balances {
		if total, ok = total.CheckedAdd(b); !ok {
			var zero B
			return zero, false
		}
	}
	return total, true
}
