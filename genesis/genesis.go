// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis loads the initial balances of a chain and the blocks to replay on top of it.
package genesis

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vechain/minithor/thor"
)

// Allocation is the balance an account starts with.
type Allocation struct {
	Account thor.AccountID
	Balance thor.Balance
}

// Genesis describes the initial state and the blocks to execute.
type Genesis struct {
	Allocations []Allocation
	Blocks      []thor.Block
}

type accountEntry struct {
	ID      string       `yaml:"id"`
	Balance thor.Balance `yaml:"balance"`
}

type callEntry struct {
	Caller string       `yaml:"caller"`
	To     string       `yaml:"to"`
	Amount thor.Balance `yaml:"amount"`
}

type blockEntry struct {
	Number thor.BlockNumber `yaml:"number"`
	Calls  []callEntry      `yaml:"calls"`
}

type document struct {
	Accounts []accountEntry `yaml:"accounts"`
	Blocks   []blockEntry   `yaml:"blocks"`
}

// Load reads and parses the genesis file at path.
func Load(path string) (*Genesis, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "read genesis")
	}
	gen, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "genesis file %s", path)
	}
	return gen, nil
}

// Parse decodes a YAML genesis document.
// Account ids are canonicalized and must be unique; unknown fields are rejected.
func Parse(data []byte) (*Genesis, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode")
	}

	gen := &Genesis{}
	seen := make(map[thor.AccountID]bool, len(doc.Accounts))
	for i, entry := range doc.Accounts {
		id, err := thor.ParseAccountID(entry.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "accounts[%d]", i)
		}
		if seen[id] {
			return nil, errors.Errorf("accounts[%d]: duplicated account %v", i, id)
		}
		seen[id] = true
		gen.Allocations = append(gen.Allocations, Allocation{Account: id, Balance: entry.Balance})
	}

	for i, b := range doc.Blocks {
		blk := thor.Block{Number: b.Number}
		for j, c := range b.Calls {
			caller, err := thor.ParseAccountID(c.Caller)
			if err != nil {
				return nil, errors.Wrapf(err, "blocks[%d].calls[%d].caller", i, j)
			}
			to, err := thor.ParseAccountID(c.To)
			if err != nil {
				return nil, errors.Wrapf(err, "blocks[%d].calls[%d].to", i, j)
			}
			blk.Calls = append(blk.Calls, thor.Call{Caller: caller, To: to, Amount: c.Amount})
		}
		gen.Blocks = append(gen.Blocks, blk)
	}
	return gen, nil
}

// Demo returns a single block chain: alice starts with 100 and sends 30 to bob, then 30 to charlie.
func Demo() *Genesis {
	return &Genesis{
		Allocations: []Allocation{
			{Account: "alice", Balance: thor.NewBalance(100)},
		},
		Blocks: []thor.Block{
			{
				Number: 1,
				Calls: []thor.Call{
					{Caller: "alice", To: "bob", Amount: thor.NewBalance(30)},
					{Caller: "alice", To: "charlie", Amount: thor.NewBalance(30)},
				},
			},
		},
	}
}
