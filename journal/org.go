package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/riskcalc/risk"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block. Inputs and
// results live in a PROPERTIES drawer so they stay searchable; the Notes
// heading is left for the trader.
func FormatTradeOrg(t TradeRecord) string {
	p, r := t.Params, t.Result

	var b strings.Builder
	fmt.Fprintf(&b, "** Trade calc: %s %.2f -> %.2f (%s)\n", p.Position, p.EntryPrice, p.StopLoss, shortID(t.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", t.ID)
	fmt.Fprintf(&b, ":CREATED_AT: %s\n", t.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":POSITION: %s\n", p.Position)
	fmt.Fprintf(&b, ":ACCOUNT_BALANCE: %.2f\n", p.AccountBalance)
	fmt.Fprintf(&b, ":RISK_PERCENTAGE: %.2f\n", p.RiskPercentage)
	fmt.Fprintf(&b, ":ENTRY_PRICE: %.5f\n", p.EntryPrice)
	fmt.Fprintf(&b, ":STOP_LOSS: %.5f\n", p.StopLoss)
	fmt.Fprintf(&b, ":TAKE_PROFIT: %.5f\n", p.TakeProfit)
	fmt.Fprintf(&b, ":RISK_AMOUNT: %.2f\n", r.RiskAmount)
	fmt.Fprintf(&b, ":POSITION_SIZE: %.2f\n", r.PositionSize)
	fmt.Fprintf(&b, ":POTENTIAL_PROFIT: %.2f\n", r.PotentialProfit)
	fmt.Fprintf(&b, ":RISK_REWARD: %s\n", risk.FormatRatio(r.RiskRewardRatio))
	fmt.Fprintf(&b, ":RISK_LEVEL: %s\n", risk.RiskLevelFor(p.RiskPercentage))
	b.WriteString(":END:\n\n")
	b.WriteString("*** Notes\n- \n")
	return b.String()
}

// FormatTradesOrg renders multiple records as a single Org section.
func FormatTradesOrg(recs []TradeRecord) string {
	if len(recs) == 0 {
		return "* Trade calculations\n(none)\n"
	}
	var b strings.Builder
	b.WriteString("* Trade calculations\n")
	for _, r := range recs {
		b.WriteString(FormatTradeOrg(r))
		b.WriteString("\n")
	}
	return b.String()
}

func FormatAllocationOrg(a AllocationRecord) string {
	p, r := a.Params, a.Result

	var b strings.Builder
	fmt.Fprintf(&b, "** Allocation calc: %.0f shares @ %.2f (%s)\n", p.NumShares, p.SharePrice, shortID(a.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", a.ID)
	fmt.Fprintf(&b, ":CREATED_AT: %s\n", a.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":STARTING_CAPITAL: %.2f\n", p.StartingCapital)
	fmt.Fprintf(&b, ":RISK_TOLERANCE: %.2f\n", p.RiskTolerance)
	fmt.Fprintf(&b, ":SHARE_SIZE: %.2f\n", r.ShareSize)
	fmt.Fprintf(&b, ":TOTAL_POTENTIAL_LOSS: %.2f\n", r.TotalPotentialLoss)
	fmt.Fprintf(&b, ":TOTAL_POTENTIAL_PROFIT: %.2f\n", r.TotalPotentialProfit)
	fmt.Fprintf(&b, ":RISK_REWARD: %s\n", risk.FormatRatio(r.RiskRewardRatio))
	fmt.Fprintf(&b, ":TRADES_PER_DAY: %d\n", r.TradesPerDay)
	fmt.Fprintf(&b, ":TRADES_PER_WEEK: %d\n", r.TradesPerWeek)
	b.WriteString(":END:\n")
	return b.String()
}

func shortID(s string) string {
	if len(s) <= 8 {
		return s
	}
	return s[len(s)-8:]
}
