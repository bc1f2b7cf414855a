package risk

// Violation is a single broken rule. Code is stable for programs, Msg is
// for people.
type Violation struct {
	Code string `json:"code"`
	Msg  string `json:"message"`
}

// Violations checks every allocation field and returns one entry per
// broken rule, in field order. Percentages must be in (0, 100].
func Violations(p AllocationParams) []Violation {
	var out []Violation
	add := func(bad bool, code, msg string) {
		if bad {
			out = append(out, Violation{Code: code, Msg: msg})
		}
	}

	// Written as !(x > 0) so NaN fails too.
	add(!(p.StartingCapital > 0), "STARTING_CAPITAL", "Starting capital must be greater than 0")
	add(!openPercent(p.RiskTolerance), "RISK_TOLERANCE", "Risk tolerance must be between 0 and 100%")
	add(!openPercent(p.DailyMaxLoss), "DAILY_MAX_LOSS", "Daily max loss must be between 0 and 100%")
	add(!openPercent(p.WeeklyMaxLoss), "WEEKLY_MAX_LOSS", "Weekly max loss must be between 0 and 100%")
	add(!(p.SharePrice > 0), "SHARE_PRICE", "Share price must be greater than 0")
	add(!(p.NumShares > 0), "NUM_SHARES", "Number of shares must be greater than 0")
	add(!(p.ProfitTargetPerShare > 0), "PROFIT_TARGET", "Profit target per share must be greater than 0")

	return out
}

// ValidateParams is the message-only form of Violations. An empty slice
// means the parameters are valid.
func ValidateParams(p AllocationParams) []string {
	vs := Violations(p)
	msgs := make([]string, 0, len(vs))
	for _, v := range vs {
		msgs = append(msgs, v.Msg)
	}
	return msgs
}

func openPercent(v float64) bool {
	return v > 0 && v <= 100
}
