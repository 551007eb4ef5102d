// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// AddressLength length of a hex address in bytes.
const AddressLength = common.AddressLength

// AccountID identifies an account in every pallet of the runtime.
// It is ordered by its string form.
type AccountID string

var (
	_ json.Marshaler   = AccountID("")
	_ json.Unmarshaler = (*AccountID)(nil)
)

// String implements the stringer interface.
func (a AccountID) String() string {
	return string(a)
}

// ParseAccountID converts a string into an AccountID.
// A 0x prefixed 20-byte hex address is lower-cased, so that differently cased spellings
// of one address map to one account.
func ParseAccountID(s string) (AccountID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty account id")
	}
	if len(s) == AddressLength*2+2 && strings.ToLower(s[:2]) == "0x" {
		if !common.IsHexAddress(s) {
			return "", errors.New("invalid hex address")
		}
		return AccountID(strings.ToLower(common.HexToAddress(s).Hex())), nil
	}
	return AccountID(s), nil
}

// MustParseAccountID parses the account id and panics on error.
func MustParseAccountID(s string) AccountID {
	id, err := ParseAccountID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// MarshalJSON implements json.Marshaler.
func (a AccountID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AccountID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAccountID(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
