// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package system

import "github.com/vechain/minithor/metrics"

var (
	metricBlockNumber     = metrics.LazyLoadGauge("system_block_number")
	metricNonceIncrements = metrics.LazyLoadCounter("system_nonce_increments_count")
)
