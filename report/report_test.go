package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/riskcalc/risk"
)

func TestWriteTrade_WithTarget(t *testing.T) {
	p := risk.TradeParams{AccountBalance: 10000, RiskPercentage: 2, EntryPrice: 100, StopLoss: 95, TakeProfit: 110}

	var buf bytes.Buffer
	require.NoError(t, WriteTrade(&buf, p, risk.ComputeTradeRisk(p)))
	out := buf.String()

	assert.Contains(t, out, "Risk Level:          Medium")
	assert.Contains(t, out, "Risk Amount:         $200.00")
	assert.Contains(t, out, "Position Size:       40.00 shares")
	assert.Contains(t, out, "Potential Profit:    $400.00")
	assert.Contains(t, out, "Risk/Reward Ratio:   1:2.00")
	assert.Contains(t, out, "Take Profit Distance: $10.00")
	assert.Contains(t, out, "Good risk/reward ratio")
	assert.Contains(t, out, "Breakeven win rate: 33.3%")
}

func TestWriteTrade_HidesNonPositive(t *testing.T) {
	p := risk.TradeParams{AccountBalance: 10000, RiskPercentage: 5, EntryPrice: 100, StopLoss: 104, Position: risk.Long}

	var buf bytes.Buffer
	require.NoError(t, WriteTrade(&buf, p, risk.ComputeTradeRisk(p)))
	out := buf.String()

	assert.Contains(t, out, "Risk Level:          High")
	assert.Contains(t, out, "Stop Loss Distance:  $4.00")
	assert.NotContains(t, out, "Potential Profit")
	assert.NotContains(t, out, "Risk/Reward")
	assert.NotContains(t, out, "Take Profit Distance")
	assert.NotContains(t, out, "Risk Assessment")
}

func TestWriteAllocation(t *testing.T) {
	r, err := risk.ComputeCapitalAllocationRisk(risk.AllocationParams{
		StartingCapital: 10000, RiskTolerance: 2, DailyMaxLoss: 5, WeeklyMaxLoss: 10,
		SharePrice: 50, NumShares: 100, ProfitTargetPerShare: 2,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteAllocation(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "$5000.00")
	assert.Contains(t, out, "1:1.00")
	assert.Contains(t, out, "Risk % of Capital:")
	assert.Contains(t, out, "2.00%")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 10)
}

func TestWriteViolations(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteViolations(&buf, nil))
	assert.Empty(t, buf.String())

	require.NoError(t, WriteViolations(&buf, []risk.Violation{{Code: "RR_TOO_LOW", Msg: "RR 1.00 below minimum 1.50"}}))
	assert.Equal(t, "! RR_TOO_LOW: RR 1.00 below minimum 1.50\n", buf.String())
}

func TestChartCSVRoundTrip(t *testing.T) {
	pts := risk.GenerateChartDataSeries(risk.AllocationParams{
		StartingCapital: 10000, RiskTolerance: 2, SharePrice: 50, ProfitTargetPerShare: 2,
	})

	var buf bytes.Buffer
	require.NoError(t, WriteChartCSV(&buf, pts))

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Equal(t, "shares,share_size,potential_profit,potential_loss,risk_percent", strings.TrimSpace(header))

	got, err := ReadChartCSV(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(pts))
	for i := range pts {
		assert.InDelta(t, pts[i].ShareSize, got[i].ShareSize, 1e-9)
		assert.InDelta(t, pts[i].RiskPercent, got[i].RiskPercent, 1e-9)
	}
}

func TestWriteChartTable(t *testing.T) {
	pts := risk.GenerateChartDataSeries(risk.AllocationParams{
		StartingCapital: 10000, RiskTolerance: 2, SharePrice: 50, ProfitTargetPerShare: 2,
	})

	var buf bytes.Buffer
	require.NoError(t, WriteChartTable(&buf, pts))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 22)
	assert.Contains(t, lines[21], "10000.00")
}

func TestWriteBreakevenTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBreakevenTable(&buf, risk.BreakevenCurve()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 27)
	assert.Contains(t, lines[26], "25.00")
}
