package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTradeRisk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   TradeParams
		want TradeResult
	}{
		{
			name: "long with target",
			in: TradeParams{
				AccountBalance: 10000, RiskPercentage: 2,
				EntryPrice: 100, StopLoss: 95, TakeProfit: 110, Position: Long,
			},
			want: TradeResult{
				RiskAmount: 200, StopLossDistance: 5, PositionSize: 40,
				TakeProfitDistance: 10, PotentialProfit: 400, RiskRewardRatio: 2,
			},
		},
		{
			name: "short with target",
			in: TradeParams{
				AccountBalance: 5000, RiskPercentage: 1,
				EntryPrice: 50, StopLoss: 52, TakeProfit: 47, Position: Short,
			},
			want: TradeResult{
				RiskAmount: 50, StopLossDistance: 2, PositionSize: 25,
				TakeProfitDistance: 3, PotentialProfit: 75, RiskRewardRatio: 1.5,
			},
		},
		{
			name: "long without target",
			in: TradeParams{
				AccountBalance: 10000, RiskPercentage: 2,
				EntryPrice: 100, StopLoss: 90,
			},
			want: TradeResult{RiskAmount: 200, StopLossDistance: 10, PositionSize: 20},
		},
		{
			name: "long stop above entry",
			in: TradeParams{
				AccountBalance: 10000, RiskPercentage: 2,
				EntryPrice: 100, StopLoss: 105, TakeProfit: 120,
			},
			want: TradeResult{RiskAmount: 200, StopLossDistance: -5, TakeProfitDistance: 20},
		},
		{
			name: "short stop below entry",
			in: TradeParams{
				AccountBalance: 10000, RiskPercentage: 2,
				EntryPrice: 100, StopLoss: 95, TakeProfit: 90, Position: Short,
			},
			want: TradeResult{RiskAmount: 200, StopLossDistance: -5, TakeProfitDistance: 10},
		},
		{
			name: "stop equals entry",
			in: TradeParams{
				AccountBalance: 10000, RiskPercentage: 2,
				EntryPrice: 100, StopLoss: 100, TakeProfit: 110,
			},
			want: TradeResult{RiskAmount: 200, TakeProfitDistance: 10},
		},
		{
			name: "target on losing side",
			in: TradeParams{
				AccountBalance: 10000, RiskPercentage: 2,
				EntryPrice: 100, StopLoss: 95, TakeProfit: 98,
			},
			want: TradeResult{RiskAmount: 200, StopLossDistance: 5, PositionSize: 40, TakeProfitDistance: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeTradeRisk(tt.in)
			assert.InDelta(t, tt.want.RiskAmount, got.RiskAmount, 1e-9)
			assert.InDelta(t, tt.want.StopLossDistance, got.StopLossDistance, 1e-9)
			assert.InDelta(t, tt.want.PositionSize, got.PositionSize, 1e-9)
			assert.InDelta(t, tt.want.TakeProfitDistance, got.TakeProfitDistance, 1e-9)
			assert.InDelta(t, tt.want.PotentialProfit, got.PotentialProfit, 1e-9)
			assert.InDelta(t, tt.want.RiskRewardRatio, got.RiskRewardRatio, 1e-9)
		})
	}
}

func TestComputeTradeRisk_UnsetFieldsZeroEverything(t *testing.T) {
	t.Parallel()

	base := TradeParams{
		AccountBalance: 10000, RiskPercentage: 2,
		EntryPrice: 100, StopLoss: 95, TakeProfit: 110,
	}

	tests := []struct {
		name   string
		mutate func(p *TradeParams)
	}{
		{"no balance", func(p *TradeParams) { p.AccountBalance = 0 }},
		{"no risk", func(p *TradeParams) { p.RiskPercentage = 0 }},
		{"no entry", func(p *TradeParams) { p.EntryPrice = 0 }},
		{"no stop", func(p *TradeParams) { p.StopLoss = 0 }},
		{"NaN balance", func(p *TradeParams) { p.AccountBalance = math.NaN() }},
		{"NaN stop", func(p *TradeParams) { p.StopLoss = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := base
			tt.mutate(&p)
			assert.Equal(t, TradeResult{}, ComputeTradeRisk(p))
		})
	}
}

func TestComputeTradeRisk_StopDistanceSign(t *testing.T) {
	t.Parallel()

	prices := [][2]float64{{100, 95}, {100, 105}, {1.2, 1.19}, {50, 50.5}}
	for _, pr := range prices {
		entry, stop := pr[0], pr[1]
		long := ComputeTradeRisk(TradeParams{AccountBalance: 1000, RiskPercentage: 1, EntryPrice: entry, StopLoss: stop, Position: Long})
		short := ComputeTradeRisk(TradeParams{AccountBalance: 1000, RiskPercentage: 1, EntryPrice: entry, StopLoss: stop, Position: Short})
		assert.InDelta(t, entry-stop, long.StopLossDistance, 1e-12)
		assert.InDelta(t, stop-entry, short.StopLossDistance, 1e-12)
	}
}

func TestComputeTradeRisk_RatioNeverNegative(t *testing.T) {
	t.Parallel()

	for _, p := range []TradeParams{
		{AccountBalance: -1000, RiskPercentage: 2, EntryPrice: 100, StopLoss: 95, TakeProfit: 110},
		{AccountBalance: 1000, RiskPercentage: -2, EntryPrice: 100, StopLoss: 95, TakeProfit: 110},
		{AccountBalance: 1000, RiskPercentage: 2, EntryPrice: 100, StopLoss: 95, TakeProfit: 90},
		{AccountBalance: math.Inf(1), RiskPercentage: 2, EntryPrice: 100, StopLoss: 95, TakeProfit: 110},
		{AccountBalance: 1000, RiskPercentage: 2, EntryPrice: -100, StopLoss: -110, TakeProfit: -50},
	} {
		got := ComputeTradeRisk(p)
		assert.GreaterOrEqual(t, got.RiskRewardRatio, 0.0)
		assert.False(t, math.IsNaN(got.RiskRewardRatio))
		assert.False(t, math.IsInf(got.PositionSize, 0))
		if got.PotentialProfit <= 0 || got.RiskAmount <= 0 {
			assert.Zero(t, got.RiskRewardRatio)
		}
	}
}

func TestComputeTradeRisk_Idempotent(t *testing.T) {
	t.Parallel()

	p := TradeParams{AccountBalance: 25000, RiskPercentage: 0.5, EntryPrice: 42.1, StopLoss: 40.3, TakeProfit: 47, Position: Long}
	assert.Equal(t, ComputeTradeRisk(p), ComputeTradeRisk(p))
}

func TestParsePositionType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    PositionType
		wantErr bool
	}{
		{"long", Long, false},
		{"LONG", Long, false},
		{" short ", Short, false},
		{"", Long, false},
		{"sideways", Long, true},
	}
	for _, tt := range tests {
		got, err := ParsePositionType(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestPositionTypeText(t *testing.T) {
	t.Parallel()

	b, err := Short.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "short", string(b))

	var p PositionType
	assert.NoError(t, p.UnmarshalText([]byte("short")))
	assert.Equal(t, Short, p)
	assert.Error(t, p.UnmarshalText([]byte("flat")))
}
