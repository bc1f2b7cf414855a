package risk

import (
	"fmt"
	"strings"
)

// PositionType is the direction of a trade. The zero value is Long.
type PositionType int

const (
	Long PositionType = iota
	Short
)

func (p PositionType) String() string {
	if p == Short {
		return "short"
	}
	return "long"
}

// ParsePositionType accepts "long" or "short" in any case.
func ParsePositionType(s string) (PositionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long", "":
		return Long, nil
	case "short":
		return Short, nil
	}
	return Long, fmt.Errorf("unknown position type %q", s)
}

func (p PositionType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PositionType) UnmarshalText(b []byte) error {
	v, err := ParsePositionType(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// TradeParams describes a single trade from the position sizing side.
// Percentages are whole numbers: 2 means 2%.
type TradeParams struct {
	AccountBalance float64      `json:"account_balance" yaml:"account_balance"`
	RiskPercentage float64      `json:"risk_percentage" yaml:"risk_percentage"`
	EntryPrice     float64      `json:"entry_price" yaml:"entry_price"`
	StopLoss       float64      `json:"stop_loss" yaml:"stop_loss"`
	TakeProfit     float64      `json:"take_profit,omitempty" yaml:"take_profit,omitempty"` // 0 = no target
	Position       PositionType `json:"position" yaml:"position"`
}

// AllocationParams describes how capital is spread across trades under
// daily and weekly loss caps.
type AllocationParams struct {
	StartingCapital      float64 `json:"starting_capital" yaml:"starting_capital"`
	RiskTolerance        float64 `json:"risk_tolerance" yaml:"risk_tolerance"`   // % per trade
	DailyMaxLoss         float64 `json:"daily_max_loss" yaml:"daily_max_loss"`   // % of capital
	WeeklyMaxLoss        float64 `json:"weekly_max_loss" yaml:"weekly_max_loss"` // % of capital
	SharePrice           float64 `json:"share_price" yaml:"share_price"`
	NumShares            float64 `json:"num_shares" yaml:"num_shares"`
	ProfitTargetPerShare float64 `json:"profit_target_per_share" yaml:"profit_target_per_share"`
}

// Policy holds the limits a calculated trade is checked against.
type Policy struct {
	MaxRiskPct      float64 `json:"max_risk_percent" yaml:"max_risk_percent"` // 2
	MinRR           float64 `json:"min_rr" yaml:"min_rr"`                     // 1.5
	MinTradesPerDay int     `json:"min_trades_per_day" yaml:"min_trades_per_day"`
}
