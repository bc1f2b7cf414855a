package risk

import (
	"iter"
	"math"
	"slices"
)

const (
	chartMaxShares = 200
	chartStep      = 10
)

// ChartPoint is one sample of the share-count sweep.
type ChartPoint struct {
	Shares          float64 `json:"shares" csv:"shares"`
	ShareSize       float64 `json:"share_size" csv:"share_size"`
	PotentialProfit float64 `json:"potential_profit" csv:"potential_profit"`
	PotentialLoss   float64 `json:"potential_loss" csv:"potential_loss"`
	RiskPercent     float64 `json:"risk_percent" csv:"risk_percent"`
}

// ChartSeries yields points for 0, 10, ... 200 shares. Only StartingCapital,
// RiskTolerance, SharePrice and ProfitTargetPerShare are read; NumShares is
// ignored. Each range over the sequence recomputes from p.
func ChartSeries(p AllocationParams) iter.Seq[ChartPoint] {
	return func(yield func(ChartPoint) bool) {
		riskCap := p.StartingCapital * p.RiskTolerance / 100
		for shares := 0; shares <= chartMaxShares; shares += chartStep {
			n := float64(shares)
			size := p.SharePrice * n
			loss := math.Min(size, riskCap)
			pt := ChartPoint{
				Shares:          n,
				ShareSize:       size,
				PotentialProfit: n * p.ProfitTargetPerShare,
				PotentialLoss:   loss,
				RiskPercent:     RiskPct(loss, p.StartingCapital),
			}
			if !yield(pt) {
				return
			}
		}
	}
}

// GenerateChartDataSeries returns the 21 points of ChartSeries as a new slice.
func GenerateChartDataSeries(p AllocationParams) []ChartPoint {
	return slices.Collect(ChartSeries(p))
}

// BreakevenPoint pairs a reward/risk ratio with the win rate needed to
// break even at that ratio.
type BreakevenPoint struct {
	RR      float64 `json:"rr" csv:"rr"`
	WinRate float64 `json:"win_rate" csv:"win_rate"`
}

// BreakevenWinRate is the percentage of trades that must win for a
// strategy with the given ratio to break even.
func BreakevenWinRate(ratio float64) float64 {
	if !(ratio > 0) {
		return 100
	}
	return 100 / (1 + ratio)
}

// BreakevenCurve samples ratios 0.5 to 3.0 in steps of 0.1.
func BreakevenCurve() []BreakevenPoint {
	out := make([]BreakevenPoint, 0, 26)
	for i := 0; i < 26; i++ {
		rr := 0.5 + float64(i)*0.1
		out = append(out, BreakevenPoint{RR: rr, WinRate: 100 / (1 + rr)})
	}
	return out
}
