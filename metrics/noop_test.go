// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	m := defaultNoopMetrics()

	m.GetOrCreateCountMeter("count1").Add(1)
	m.GetOrCreateCountVecMeter("countVec1", []string{"zeroOrOne"}).
		AddWithLabel(1, map[string]string{"thisIsNonsense": "butDoesntBreak"})
	m.GetOrCreateHistogramMeter("hist1", nil).Observe(1)
	m.GetOrCreateGaugeMeter("gauge1").Set(1)

	var buf bytes.Buffer
	require.NoError(t, m.Gather(&buf))
	require.Zero(t, buf.Len())
}
