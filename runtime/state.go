// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"slices"

	"github.com/davecgh/go-spew/spew"

	"github.com/vechain/minithor/thor"
)

// AccountState is the state of one account across all pallets.
type AccountState struct {
	Account thor.AccountID
	Balance thor.Balance
	Nonce   thor.Nonce
}

// State is a copy of the runtime state, detached from the pallets.
type State struct {
	BlockNumber thor.BlockNumber
	Accounts    []AccountState
}

var dumpConfig = spew.ConfigState{Indent: "  ", SortKeys: true}

// Dump renders the state for human inspection. The format is not stable.
func (s *State) Dump() string {
	return dumpConfig.Sdump(s)
}

// Snapshot copies the current state. Accounts known to any pallet are listed in ascending order.
func (rt *Runtime) Snapshot() *State {
	ids := append(rt.balances.Accounts(), rt.system.Accounts()...)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	s := &State{
		BlockNumber: rt.system.BlockNumber(),
		Accounts:    make([]AccountState, 0, len(ids)),
	}
	for _, id := range ids {
		s.Accounts = append(s.Accounts, AccountState{
			Account: id,
			Balance: rt.balances.Balance(id),
			Nonce:   rt.system.Nonce(id),
		})
	}
	return s
}
