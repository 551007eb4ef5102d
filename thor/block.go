// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import "fmt"

// Call is a balance transfer signed by Caller.
type Call struct {
	Caller AccountID `json:"caller" yaml:"caller"`
	To     AccountID `json:"to" yaml:"to"`
	Amount Balance   `json:"amount" yaml:"amount"`
}

// String implements the stringer interface.
func (c Call) String() string {
	return fmt.Sprintf("%v -> %v: %v", c.Caller, c.To, c.Amount)
}

// Block is an ordered batch of calls.
// A zero Number means the block takes the next height.
type Block struct {
	Number BlockNumber `json:"number,omitempty" yaml:"number,omitempty"`
	Calls  []Call      `json:"calls" yaml:"calls"`
}
