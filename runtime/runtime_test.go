// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/minithor/balances"
	"github.com/vechain/minithor/genesis"
	"github.com/vechain/minithor/log"
	"github.com/vechain/minithor/runtime"
	"github.com/vechain/minithor/thor"
)

func TestRunDemo(t *testing.T) {
	rt := runtime.New()

	receipts, err := rt.Run(genesis.Demo())
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	for _, r := range receipts {
		assert.False(t, r.Reverted())
	}
	assert.Equal(t, thor.Nonce(1), receipts[0].Nonce)
	assert.Equal(t, thor.Nonce(2), receipts[1].Nonce)

	assert.Equal(t, thor.BlockNumber(1), rt.System().BlockNumber())
	assert.Equal(t, thor.Nonce(2), rt.System().Nonce("alice"))
	assert.Equal(t, thor.NewBalance(40), rt.Balances().Balance("alice"))
	assert.Equal(t, thor.NewBalance(30), rt.Balances().Balance("bob"))
	assert.Equal(t, thor.NewBalance(30), rt.Balances().Balance("charlie"))
}

func TestFreshRuntime(t *testing.T) {
	rt := runtime.New()
	assert.Zero(t, rt.System().BlockNumber())
	assert.Zero(t, rt.System().Nonce("alice"))
	assert.True(t, rt.Balances().Balance("alice").IsZero())
	assert.Equal(t, &runtime.State{Accounts: []runtime.AccountState{}}, rt.Snapshot())
}

func TestExecuteBlockKeepsGoingOnFailure(t *testing.T) {
	var out bytes.Buffer
	rt := runtime.New(runtime.WithLogger(log.NewLogger(log.JSONHandler(&out))))
	rt.Balances().SetBalance("alice", thor.NewBalance(10))

	receipts, err := rt.ExecuteBlock(thor.Block{Calls: []thor.Call{
		{Caller: "alice", To: "bob", Amount: thor.NewBalance(20)},
		{Caller: "alice", To: "bob", Amount: thor.NewBalance(10)},
		{Caller: "carol", To: "bob", Amount: thor.NewBalance(1)},
	}})
	require.NoError(t, err)
	require.Len(t, receipts, 3)

	assert.ErrorIs(t, receipts[0].Err, balances.ErrInsufficientFunds)
	assert.NoError(t, receipts[1].Err)
	assert.ErrorIs(t, receipts[2].Err, balances.ErrInsufficientFunds)

	// nonces count attempts, not successes
	assert.Equal(t, thor.Nonce(2), rt.System().Nonce("alice"))
	assert.Equal(t, thor.Nonce(1), rt.System().Nonce("carol"))
	assert.Zero(t, rt.System().Nonce("bob"))

	assert.True(t, rt.Balances().Balance("alice").IsZero())
	assert.Equal(t, thor.NewBalance(10), rt.Balances().Balance("bob"))

	assert.Contains(t, out.String(), `"msg":"call reverted"`)
	assert.Contains(t, out.String(), `"msg":"block executed"`)
	assert.Contains(t, out.String(), `"reverted":2`)
}

func TestExecuteBlockOverflow(t *testing.T) {
	rt := runtime.New()
	rt.Balances().SetBalance("alice", thor.MaxBalance)
	rt.Balances().SetBalance("bob", thor.NewBalance(1))

	receipts, err := rt.ExecuteBlock(thor.Block{Calls: []thor.Call{
		{Caller: "bob", To: "alice", Amount: thor.NewBalance(1)},
	}})
	require.NoError(t, err)
	assert.ErrorIs(t, receipts[0].Err, balances.ErrOverflow)
	assert.Equal(t, thor.MaxBalance, rt.Balances().Balance("alice"))
	assert.Equal(t, thor.NewBalance(1), rt.Balances().Balance("bob"))
}

func TestExecuteBlockNumber(t *testing.T) {
	rt := runtime.New()

	_, err := rt.ExecuteBlock(thor.Block{Number: 2})
	assert.ErrorIs(t, err, runtime.ErrBlockNumber)
	assert.Zero(t, rt.System().BlockNumber())

	_, err = rt.ExecuteBlock(thor.Block{Number: 1})
	require.NoError(t, err)
	_, err = rt.ExecuteBlock(thor.Block{})
	require.NoError(t, err)
	assert.Equal(t, thor.BlockNumber(2), rt.System().BlockNumber())
}

func TestApplyGenesisAfterFirstBlock(t *testing.T) {
	rt := runtime.New()
	_, err := rt.ExecuteBlock(thor.Block{})
	require.NoError(t, err)

	assert.Error(t, rt.ApplyGenesis(genesis.Demo()))
	assert.True(t, rt.Balances().Balance("alice").IsZero())
}

func TestRunStopsAtBadBlock(t *testing.T) {
	gen := genesis.Demo()
	gen.Blocks = append(gen.Blocks, thor.Block{Number: 5})

	rt := runtime.New()
	receipts, err := rt.Run(gen)
	assert.ErrorIs(t, err, runtime.ErrBlockNumber)
	assert.Contains(t, err.Error(), "execute block 2")
	assert.Len(t, receipts, 2)
	assert.Equal(t, thor.BlockNumber(1), rt.System().BlockNumber())
}

func TestSnapshot(t *testing.T) {
	rt := runtime.New()
	_, err := rt.Run(genesis.Demo())
	require.NoError(t, err)

	// nonce only account
	rt.System().IncNonce("0xdave")

	s := rt.Snapshot()
	assert.Equal(t, &runtime.State{
		BlockNumber: 1,
		Accounts: []runtime.AccountState{
			{Account: "0xdave", Nonce: 1},
			{Account: "alice", Balance: thor.NewBalance(40), Nonce: 2},
			{Account: "bob", Balance: thor.NewBalance(30)},
			{Account: "charlie", Balance: thor.NewBalance(30)},
		},
	}, s)

	// detached from the pallets
	rt.Balances().SetBalance("alice", thor.Balance{})
	assert.Equal(t, thor.NewBalance(40), s.Accounts[1].Balance)

	dump := s.Dump()
	assert.Contains(t, dump, "BlockNumber: (uint32) 1")
	assert.Contains(t, dump, "charlie")
}
