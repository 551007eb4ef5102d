// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package balances_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/minithor/balances"
	"github.com/vechain/minithor/thor"
)

// u8 is a tiny checked amount, handy to hit the numeric ceiling.
type u8 uint8

func (x u8) CheckedAdd(y u8) (u8, bool) {
	s := x + y
	return s, s >= x
}

func (x u8) CheckedSub(y u8) (u8, bool) {
	if y > x {
		return 0, false
	}
	return x - y, true
}

var (
	alice   = thor.AccountID("alice")
	bob     = thor.AccountID("bob")
	charlie = thor.AccountID("charlie")
)

func newPallet() *balances.Pallet[thor.AccountID, thor.Balance] {
	return balances.New[thor.AccountID, thor.Balance]()
}

func TestInitBalance(t *testing.T) {
	p := newPallet()

	assert.Equal(t, thor.Balance{}, p.Balance(alice))
	p.SetBalance(alice, thor.NewBalance(100))
	assert.Equal(t, thor.NewBalance(100), p.Balance(alice))
	assert.Equal(t, thor.Balance{}, p.Balance(bob))
}

func TestSetBalanceOverwrites(t *testing.T) {
	p := newPallet()

	p.SetBalance(alice, thor.NewBalance(100))
	p.SetBalance(alice, thor.NewBalance(7))
	assert.Equal(t, thor.NewBalance(7), p.Balance(alice))

	p.SetBalance(alice, thor.Balance{})
	assert.True(t, p.Balance(alice).IsZero())
	assert.Equal(t, 1, p.Len())
}

func TestTransferBalance(t *testing.T) {
	p := newPallet()

	// empty ledger
	assert.ErrorIs(t, p.Transfer(alice, bob, thor.NewBalance(10)), balances.ErrInsufficientFunds)
	assert.Zero(t, p.Len())

	p.SetBalance(alice, thor.NewBalance(100))
	require.NoError(t, p.Transfer(alice, bob, thor.NewBalance(10)))
	assert.Equal(t, thor.NewBalance(90), p.Balance(alice))
	assert.Equal(t, thor.NewBalance(10), p.Balance(bob))
}

func TestTransferOverflow(t *testing.T) {
	p := newPallet()

	p.SetBalance(alice, thor.MaxBalance)
	p.SetBalance(bob, thor.NewBalance(1))
	assert.ErrorIs(t, p.Transfer(bob, alice, thor.NewBalance(1)), balances.ErrOverflow)
	assert.Equal(t, thor.MaxBalance, p.Balance(alice))
	assert.Equal(t, thor.NewBalance(1), p.Balance(bob))
}

func TestSequentialTransfers(t *testing.T) {
	p := newPallet()

	p.SetBalance(alice, thor.NewBalance(100))
	require.NoError(t, p.Transfer(alice, bob, thor.NewBalance(30)))
	require.NoError(t, p.Transfer(alice, charlie, thor.NewBalance(30)))

	assert.Equal(t, thor.NewBalance(40), p.Balance(alice))
	assert.Equal(t, thor.NewBalance(30), p.Balance(bob))
	assert.Equal(t, thor.NewBalance(30), p.Balance(charlie))
	assert.Equal(t, []thor.AccountID{alice, bob, charlie}, p.Accounts())
}

func TestSelfTransfer(t *testing.T) {
	p := newPallet()
	p.SetBalance(alice, thor.NewBalance(50))

	require.NoError(t, p.Transfer(alice, alice, thor.NewBalance(50)))
	assert.Equal(t, thor.NewBalance(50), p.Balance(alice))

	require.NoError(t, p.Transfer(alice, alice, thor.NewBalance(1)))
	assert.Equal(t, thor.NewBalance(50), p.Balance(alice))

	assert.ErrorIs(t, p.Transfer(alice, alice, thor.NewBalance(51)), balances.ErrInsufficientFunds)
	assert.Equal(t, thor.NewBalance(50), p.Balance(alice))

	p.SetBalance(bob, thor.MaxBalance)
	require.NoError(t, p.Transfer(bob, bob, thor.MaxBalance))
	assert.Equal(t, thor.MaxBalance, p.Balance(bob))
}

func TestTransferZeroAmount(t *testing.T) {
	p := newPallet()
	require.NoError(t, p.Transfer(alice, bob, thor.Balance{}))
	assert.True(t, p.Balance(alice).IsZero())
	assert.True(t, p.Balance(bob).IsZero())
}

func TestTransferGenericAmount(t *testing.T) {
	p := balances.New[string, u8]()

	p.SetBalance("alice", 250)
	p.SetBalance("bob", 10)

	assert.ErrorIs(t, p.Transfer("alice", "bob", 6), balances.ErrOverflow)
	assert.Equal(t, u8(250), p.Balance("alice"))
	assert.Equal(t, u8(10), p.Balance("bob"))

	assert.ErrorIs(t, p.Transfer("bob", "alice", 11), balances.ErrInsufficientFunds)

	require.NoError(t, p.Transfer("alice", "bob", 245))
	assert.Equal(t, u8(5), p.Balance("alice"))
	assert.Equal(t, u8(255), p.Balance("bob"))

	_, ok := p.TotalIssuance()
	assert.False(t, ok)
}

func TestTransferProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2)) // #nosec G404
	accounts := []string{"a", "b", "c", "d"}

	p := balances.New[string, u8]()
	for _, a := range accounts {
		p.SetBalance(a, u8(r.IntN(64)))
	}
	total, ok := p.TotalIssuance()
	require.True(t, ok)

	for range 1000 {
		from, to := accounts[r.IntN(len(accounts))], accounts[r.IntN(len(accounts))]
		amount := u8(r.IntN(80))
		fromBefore, toBefore := p.Balance(from), p.Balance(to)

		err := p.Transfer(from, to, amount)
		switch {
		case err != nil:
			// failed transfers leave no trace
			assert.Equal(t, fromBefore, p.Balance(from))
			assert.Equal(t, toBefore, p.Balance(to))
			if amount > fromBefore {
				assert.ErrorIs(t, err, balances.ErrInsufficientFunds)
			} else {
				assert.ErrorIs(t, err, balances.ErrOverflow)
			}
		case from == to:
			assert.Equal(t, fromBefore, p.Balance(from))
		default:
			assert.Equal(t, int(fromBefore)+int(toBefore), int(p.Balance(from))+int(p.Balance(to)))
			assert.Equal(t, fromBefore-amount, p.Balance(from))
		}

		after, ok := p.TotalIssuance()
		require.True(t, ok)
		assert.Equal(t, total, after)
	}
}

func TestTotalIssuance(t *testing.T) {
	p := newPallet()
	total, ok := p.TotalIssuance()
	assert.True(t, ok)
	assert.True(t, total.IsZero())

	p.SetBalance(alice, thor.NewBalance(100))
	p.SetBalance(bob, thor.NewBalance(20))
	total, ok = p.TotalIssuance()
	assert.True(t, ok)
	assert.Equal(t, thor.NewBalance(120), total)

	p.SetBalance(charlie, thor.MaxBalance)
	_, ok = p.TotalIssuance()
	assert.False(t, ok)
}
