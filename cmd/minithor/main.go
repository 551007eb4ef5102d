// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/minithor/genesis"
	"github.com/vechain/minithor/log"
	"github.com/vechain/minithor/metrics"
	"github.com/vechain/minithor/runtime"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "minithor",
		Usage:     "Executes blocks of transfers against an in-memory ledger",
		Copyright: "2025 VeChain Foundation <https://vechain.org/>",
		Flags: []cli.Flag{
			genesisFlag,
			verbosityFlag,
			logFormatFlag,
			metricsFlag,
			dumpFlag,
		},
		Action: defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	if err := initLogger(ctx, os.Stderr); err != nil {
		return err
	}
	if ctx.Bool(metricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}

	gen := genesis.Demo()
	if path := ctx.String(genesisFlag.Name); path != "" {
		var err error
		if gen, err = genesis.Load(path); err != nil {
			return err
		}
		log.Info("genesis loaded", "path", path, "accounts", len(gen.Allocations), "blocks", len(gen.Blocks))
	} else {
		log.Info("no genesis given, running the demo chain")
	}

	rt := runtime.New()
	receipts, err := rt.Run(gen)
	if err != nil {
		return errors.Wrap(err, "run")
	}

	out := os.Stdout
	printReceipts(out, receipts)
	state := rt.Snapshot()
	printState(out, state)
	if ctx.Bool(dumpFlag.Name) {
		fmt.Fprint(out, state.Dump())
	}
	if ctx.Bool(metricsFlag.Name) {
		if err := metrics.Gather(out); err != nil {
			return errors.Wrap(err, "gather metrics")
		}
	}
	return nil
}
