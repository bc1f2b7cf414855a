package risk

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned by ComputeCapitalAllocationRisk for input
// that is out of range or not a finite number.
var ErrInvalidParams = errors.New("invalid calculation parameters")

type AllocationResult struct {
	ShareSize            float64 `json:"share_size"`
	RiskPerTrade         float64 `json:"risk_per_trade"`
	DailyMaxLossAmount   float64 `json:"daily_max_loss_amount"`
	WeeklyMaxLossAmount  float64 `json:"weekly_max_loss_amount"`
	TotalPotentialProfit float64 `json:"total_potential_profit"`
	TotalPotentialLoss   float64 `json:"total_potential_loss"`
	RiskRewardRatio      float64 `json:"risk_reward_ratio"`
	TradesPerDay         int     `json:"trades_per_day"`
	TradesPerWeek        int     `json:"trades_per_week"`
	RiskPercentOfCapital float64 `json:"risk_percent_of_capital"`
}

// ComputeCapitalAllocationRisk works out how much a trade of NumShares at
// SharePrice puts at risk and how many such losses fit under the daily and
// weekly caps. Percentages may be 0; see ValidateParams for the stricter
// field-level check.
func ComputeCapitalAllocationRisk(p AllocationParams) (AllocationResult, error) {
	if err := checkAllocation(p); err != nil {
		return AllocationResult{}, err
	}

	var r AllocationResult
	r.ShareSize = p.SharePrice * p.NumShares
	r.RiskPerTrade = p.StartingCapital * p.RiskTolerance / 100
	r.DailyMaxLossAmount = p.StartingCapital * p.DailyMaxLoss / 100
	r.WeeklyMaxLossAmount = p.StartingCapital * p.WeeklyMaxLoss / 100
	r.TotalPotentialProfit = p.NumShares * p.ProfitTargetPerShare
	r.TotalPotentialLoss = math.Min(r.ShareSize, r.RiskPerTrade)

	if r.TotalPotentialLoss > 0 {
		r.RiskRewardRatio = r.TotalPotentialProfit / r.TotalPotentialLoss
		r.TradesPerDay = tradeCount(r.DailyMaxLossAmount / r.TotalPotentialLoss)
		r.TradesPerWeek = tradeCount(r.WeeklyMaxLossAmount / r.TotalPotentialLoss)
	}
	r.RiskPercentOfCapital = RiskPct(r.TotalPotentialLoss, p.StartingCapital)

	if err := checkDerived(r); err != nil {
		return AllocationResult{}, err
	}
	return r, nil
}

// tradeCount floors q to a whole number of trades, saturating at
// math.MaxInt instead of wrapping.
func tradeCount(q float64) int {
	q = math.Floor(q)
	switch {
	case math.IsNaN(q) || q <= 0:
		return 0
	case q >= math.MaxInt:
		return math.MaxInt
	}
	return int(q)
}

// checkDerived rejects finite inputs whose products overflow float64.
func checkDerived(r AllocationResult) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"share_size", r.ShareSize},
		{"risk_per_trade", r.RiskPerTrade},
		{"daily_max_loss_amount", r.DailyMaxLossAmount},
		{"weekly_max_loss_amount", r.WeeklyMaxLossAmount},
		{"total_potential_profit", r.TotalPotentialProfit},
		{"risk_reward_ratio", r.RiskRewardRatio},
	}
	for _, f := range fields {
		if !finite(f.v) {
			return fmt.Errorf("%w: %s overflows", ErrInvalidParams, f.name)
		}
	}
	return nil
}

func checkAllocation(p AllocationParams) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"starting_capital", p.StartingCapital},
		{"risk_tolerance", p.RiskTolerance},
		{"daily_max_loss", p.DailyMaxLoss},
		{"weekly_max_loss", p.WeeklyMaxLoss},
		{"share_price", p.SharePrice},
		{"num_shares", p.NumShares},
		{"profit_target_per_share", p.ProfitTargetPerShare},
	}
	for _, f := range fields {
		if !finite(f.v) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidParams, f.name)
		}
	}

	switch {
	case p.StartingCapital <= 0:
		return fmt.Errorf("%w: starting_capital must be positive", ErrInvalidParams)
	case p.SharePrice <= 0:
		return fmt.Errorf("%w: share_price must be positive", ErrInvalidParams)
	case p.NumShares <= 0:
		return fmt.Errorf("%w: num_shares must be positive", ErrInvalidParams)
	case p.ProfitTargetPerShare <= 0:
		return fmt.Errorf("%w: profit_target_per_share must be positive", ErrInvalidParams)
	case !inPercentRange(p.RiskTolerance):
		return fmt.Errorf("%w: risk_tolerance must be within 0-100", ErrInvalidParams)
	case !inPercentRange(p.DailyMaxLoss):
		return fmt.Errorf("%w: daily_max_loss must be within 0-100", ErrInvalidParams)
	case !inPercentRange(p.WeeklyMaxLoss):
		return fmt.Errorf("%w: weekly_max_loss must be within 0-100", ErrInvalidParams)
	}
	return nil
}

func inPercentRange(v float64) bool {
	return v >= 0 && v <= 100
}
