package risk

// TradeResult holds the metrics derived from TradeParams. Every field is
// always set; degenerate input shows up as zeros.
type TradeResult struct {
	RiskAmount         float64 `json:"risk_amount"`
	PositionSize       float64 `json:"position_size"`
	PotentialProfit    float64 `json:"potential_profit"`
	RiskRewardRatio    float64 `json:"risk_reward_ratio"`
	StopLossDistance   float64 `json:"stop_loss_distance"`
	TakeProfitDistance float64 `json:"take_profit_distance"`
}

// ComputeTradeRisk sizes a position so that hitting the stop loses exactly
// RiskPercentage of the account. It never fails: a missing balance, risk,
// entry or stop yields an all-zero result, and a stop on the wrong side of
// entry yields a zero position size.
func ComputeTradeRisk(p TradeParams) TradeResult {
	if unset(p.AccountBalance) || unset(p.RiskPercentage) || unset(p.EntryPrice) || unset(p.StopLoss) {
		return TradeResult{}
	}

	var r TradeResult
	r.RiskAmount = RiskAmount(p.AccountBalance, p.RiskPercentage)
	r.StopLossDistance = StopLossDistance(p.EntryPrice, p.StopLoss, p.Position)
	r.PositionSize = PositionSize(r.RiskAmount, r.StopLossDistance)
	r.TakeProfitDistance = TakeProfitDistance(p.EntryPrice, p.TakeProfit, p.Position)
	r.PotentialProfit = PotentialProfit(r.PositionSize, r.TakeProfitDistance)
	r.RiskRewardRatio = RR(r.PotentialProfit, r.RiskAmount)

	return r.sanitize()
}

// sanitize keeps the fail-soft contract for inputs like +Inf balances,
// where the arithmetic above would otherwise leak NaN or Inf.
func (r TradeResult) sanitize() TradeResult {
	for _, v := range []*float64{
		&r.RiskAmount, &r.PositionSize, &r.PotentialProfit,
		&r.RiskRewardRatio, &r.StopLossDistance, &r.TakeProfitDistance,
	} {
		if !finite(*v) {
			*v = 0
		}
	}
	return r
}
