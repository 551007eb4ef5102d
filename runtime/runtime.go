// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package runtime composes the pallets into a state machine that executes blocks of calls.
package runtime

import (
	"github.com/pkg/errors"

	"github.com/vechain/minithor/balances"
	"github.com/vechain/minithor/genesis"
	"github.com/vechain/minithor/log"
	"github.com/vechain/minithor/system"
	"github.com/vechain/minithor/thor"
)

var logger = log.WithContext("pkg", "runtime")

// ErrBlockNumber is returned when a block does not extend the current height by one.
var ErrBlockNumber = errors.New("unexpected block number")

type (
	// Balances is the balances pallet of the runtime.
	Balances = balances.Pallet[thor.AccountID, thor.Balance]
	// System is the system pallet of the runtime.
	System = system.Pallet[thor.AccountID, thor.BlockNumber, thor.Nonce]
)

// Runtime accumulates the pallets of the chain.
// It is not safe for concurrent use.
type Runtime struct {
	system   *System
	balances *Balances
	logger   log.Logger
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger replaces the package logger.
func WithLogger(l log.Logger) Option {
	return func(rt *Runtime) {
		rt.logger = l
	}
}

// New creates a runtime at block zero with empty pallets.
func New(opts ...Option) *Runtime {
	rt := &Runtime{
		system:   system.New[thor.AccountID, thor.BlockNumber, thor.Nonce](),
		balances: balances.New[thor.AccountID, thor.Balance](),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

func (rt *Runtime) System() *System     { return rt.system }
func (rt *Runtime) Balances() *Balances { return rt.balances }

// ApplyGenesis sets the initial balances. It must run before the first block.
func (rt *Runtime) ApplyGenesis(gen *genesis.Genesis) error {
	if n := rt.system.BlockNumber(); n != 0 {
		return errors.Errorf("apply genesis at block %d", n)
	}
	for _, alloc := range gen.Allocations {
		rt.balances.SetBalance(alloc.Account, alloc.Balance)
	}
	rt.logger.Debug("genesis applied", "accounts", len(gen.Allocations))
	return nil
}

// ExecuteBlock bumps the block number, then for every call bumps the caller nonce and
// attempts the transfer. A failed transfer is recorded in its receipt and does not stop the block.
func (rt *Runtime) ExecuteBlock(blk thor.Block) ([]*Receipt, error) {
	next := rt.system.BlockNumber() + 1
	if blk.Number != 0 && blk.Number != next {
		return nil, errors.Wrapf(ErrBlockNumber, "want %d, got %d", next, blk.Number)
	}
	rt.system.IncBlockNumber()

	var (
		receipts = make([]*Receipt, 0, len(blk.Calls))
		reverted int
	)
	for i, call := range blk.Calls {
		rt.system.IncNonce(call.Caller)
		receipt := &Receipt{
			Call:  call,
			Nonce: rt.system.Nonce(call.Caller),
		}
		if err := rt.balances.Transfer(call.Caller, call.To, call.Amount); err != nil {
			receipt.Err = err
			reverted++
			rt.logger.Warn("call reverted", "block", next, "index", i, "caller", call.Caller, "to", call.To, "amount", call.Amount, "err", err)
		} else {
			rt.logger.Trace("call applied", "block", next, "index", i, "caller", call.Caller, "to", call.To, "amount", call.Amount)
		}
		receipts = append(receipts, receipt)
	}

	metricBlockCalls().Observe(int64(len(blk.Calls)))
	metricRevertedCalls().Add(int64(reverted))
	rt.logger.Info("block executed", "number", next, "calls", len(blk.Calls), "reverted", reverted)
	return receipts, nil
}

// Run applies the genesis and executes its blocks in order.
func (rt *Runtime) Run(gen *genesis.Genesis) ([]*Receipt, error) {
	if err := rt.ApplyGenesis(gen); err != nil {
		return nil, err
	}
	var all []*Receipt
	for _, blk := range gen.Blocks {
		receipts, err := rt.ExecuteBlock(blk)
		if err != nil {
			return all, errors.Wrapf(err, "execute block %d", rt.system.BlockNumber()+1)
		}
		all = append(all, receipts...)
	}
	return all, nil
}
