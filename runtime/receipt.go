// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import "github.com/vechain/minithor/thor"

// Receipt is the outcome of a call.
type Receipt struct {
	Call thor.Call
	// Nonce is the caller nonce after the call.
	Nonce thor.Nonce
	// Err is nil if the transfer was applied.
	Err error
}

// Reverted returns whether the transfer was rejected.
func (r *Receipt) Reverted() bool {
	return r.Err != nil
}
