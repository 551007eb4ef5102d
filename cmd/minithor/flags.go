// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/minithor/log"
)

var (
	genesisFlag = cli.StringFlag{
		Name:  "genesis",
		Usage: "path to a YAML genesis file; the demo chain runs when omitted",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: log.LegacyLevelInfo,
		Usage: "log verbosity (0-5)",
	}
	logFormatFlag = cli.StringFlag{
		Name:  "log-format",
		Value: log.FormatTerminal,
		Usage: "log output format (terminal|json|logfmt)",
	}
	metricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "collect metrics and print them on exit",
	}
	dumpFlag = cli.BoolFlag{
		Name:  "dump",
		Usage: "print a full dump of the final state",
	}
)
