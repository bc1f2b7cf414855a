package risk

import "fmt"

// Decision is the outcome of checking a calculation against a Policy.
type Decision struct {
	Allowed    bool        `json:"allowed"`
	Violations []Violation `json:"violations,omitempty"`
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate checks a computed trade against p. A zero limit in p disables
// that check.
func Evaluate(p Policy, params TradeParams, res TradeResult) Decision {
	d := Decision{Allowed: true}

	// Basic sanity
	if unset(params.EntryPrice) || unset(params.StopLoss) {
		d.add("NO_STOP_OR_ENTRY", "entry/stop must be set")
		return d
	}
	if res.StopLossDistance <= 0 {
		d.add("STOP_WRONG_SIDE",
			fmt.Sprintf("stop %.2f is on the wrong side of entry %.2f for a %s position",
				params.StopLoss, params.EntryPrice, params.Position))
	}

	if p.MaxRiskPct > 0 && params.RiskPercentage > p.MaxRiskPct {
		d.add("RISK_TOO_HIGH",
			fmt.Sprintf("risk %.2f%% exceeds max %.2f%%", params.RiskPercentage, p.MaxRiskPct))
	}
	// Only judged when there is a target to judge.
	if p.MinRR > 0 && res.RiskRewardRatio > 0 && res.RiskRewardRatio < p.MinRR {
		d.add("RR_TOO_LOW",
			fmt.Sprintf("RR %.2f below minimum %.2f", res.RiskRewardRatio, p.MinRR))
	}

	return d
}

// EvaluateAllocation checks an allocation result against p.
func EvaluateAllocation(p Policy, params AllocationParams, res AllocationResult) Decision {
	d := Decision{Allowed: true}

	if p.MaxRiskPct > 0 && res.RiskPercentOfCapital > p.MaxRiskPct {
		d.add("RISK_TOO_HIGH",
			fmt.Sprintf("risk %.2f%% of capital exceeds max %.2f%%", res.RiskPercentOfCapital, p.MaxRiskPct))
	}
	if p.MinRR > 0 && res.RiskRewardRatio < p.MinRR {
		d.add("RR_TOO_LOW",
			fmt.Sprintf("RR %.2f below minimum %.2f", res.RiskRewardRatio, p.MinRR))
	}
	if p.MinTradesPerDay > 0 && res.TradesPerDay < p.MinTradesPerDay {
		d.add("TRADES_PER_DAY_TOO_LOW",
			fmt.Sprintf("daily cap of %.2f%% allows %d trades, want at least %d",
				params.DailyMaxLoss, res.TradesPerDay, p.MinTradesPerDay))
	}

	return d
}

// RiskLevel buckets a per-trade risk percentage.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

func RiskLevelFor(riskPct float64) RiskLevel {
	switch {
	case riskPct <= 1:
		return RiskLow
	case riskPct <= 2:
		return RiskMedium
	}
	return RiskHigh
}

// Assessment grades a risk/reward ratio.
type Assessment string

const (
	AssessNone       Assessment = ""
	AssessGood       Assessment = "Good"
	AssessAcceptable Assessment = "Acceptable"
	AssessPoor       Assessment = "Poor"
)

// Assess returns AssessNone when there is no ratio to grade.
func Assess(ratio float64) Assessment {
	switch {
	case ratio >= 2:
		return AssessGood
	case ratio >= 1:
		return AssessAcceptable
	case ratio > 0:
		return AssessPoor
	}
	return AssessNone
}

func (a Assessment) Message() string {
	switch a {
	case AssessGood:
		return "Good risk/reward ratio. This trade has favorable potential."
	case AssessAcceptable:
		return "Acceptable risk/reward ratio. Consider if this fits your strategy."
	case AssessPoor:
		return "Poor risk/reward ratio. Consider adjusting your targets."
	}
	return ""
}

// FormatRatio renders a ratio as "1:X.XX".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("1:%.2f", ratio)
}
