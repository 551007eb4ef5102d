// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/minithor/log"
	"github.com/vechain/minithor/runtime"
)

func initLogger(ctx *cli.Context, w io.Writer) error {
	var level slog.LevelVar
	level.Set(log.FromLegacyLevel(ctx.Int(verbosityFlag.Name)))

	handler, err := log.NewHandler(ctx.String(logFormatFlag.Name), w, &level)
	if err != nil {
		return errors.Wrap(err, "--"+logFormatFlag.Name)
	}
	log.SetDefault(log.NewLogger(handler))
	return nil
}

func printReceipts(w io.Writer, receipts []*runtime.Receipt) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Caller", "Nonce", "To", "Amount", "Result"})
	for i, r := range receipts {
		result := "ok"
		if r.Reverted() {
			result = r.Err.Error()
		}
		table.Append([]string{
			strconv.Itoa(i),
			r.Call.Caller.String(),
			strconv.FormatUint(r.Nonce, 10),
			r.Call.To.String(),
			r.Call.Amount.String(),
			result,
		})
	}
	table.Render()
}

func printState(w io.Writer, state *runtime.State) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Account", "Balance", "Nonce"})
	table.SetFooter([]string{"Block", strconv.FormatUint(uint64(state.BlockNumber), 10), ""})
	for _, acc := range state.Accounts {
		table.Append([]string{
			acc.Account.String(),
			acc.Balance.String(),
			strconv.FormatUint(acc.Nonce, 10),
		})
	}
	table.Render()
}
