// Package report renders calculation results for terminals and files.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/gocarina/gocsv"

	"github.com/rustyeddy/riskcalc/risk"
)

// WriteTrade prints a trade result using the calculator's display rules:
// profit, ratio and take-profit distance appear only when positive, and the
// stop distance is shown unsigned.
func WriteTrade(w io.Writer, p risk.TradeParams, r risk.TradeResult) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Risk Level:          %s\n", risk.RiskLevelFor(p.RiskPercentage))
	fmt.Fprintf(&b, "Risk Amount:         $%.2f\n", r.RiskAmount)
	fmt.Fprintf(&b, "Position Size:       %.2f shares\n", r.PositionSize)
	if r.PotentialProfit > 0 {
		fmt.Fprintf(&b, "Potential Profit:    $%.2f\n", r.PotentialProfit)
	}
	if r.RiskRewardRatio > 0 {
		fmt.Fprintf(&b, "Risk/Reward Ratio:   %s\n", risk.FormatRatio(r.RiskRewardRatio))
	}
	fmt.Fprintf(&b, "Stop Loss Distance:  $%.2f\n", math.Abs(r.StopLossDistance))
	if r.TakeProfitDistance > 0 {
		fmt.Fprintf(&b, "Take Profit Distance: $%.2f\n", r.TakeProfitDistance)
	}
	if a := risk.Assess(r.RiskRewardRatio); a != risk.AssessNone {
		fmt.Fprintf(&b, "\nRisk Assessment: %s\n", a.Message())
		fmt.Fprintf(&b, "Breakeven win rate: %.1f%%\n", risk.BreakevenWinRate(r.RiskRewardRatio))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func WriteAllocation(w io.Writer, r risk.AllocationResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"Share Size", fmt.Sprintf("$%.2f", r.ShareSize)},
		{"Risk Per Trade", fmt.Sprintf("$%.2f", r.RiskPerTrade)},
		{"Daily Max Loss", fmt.Sprintf("$%.2f", r.DailyMaxLossAmount)},
		{"Weekly Max Loss", fmt.Sprintf("$%.2f", r.WeeklyMaxLossAmount)},
		{"Total Potential Profit", fmt.Sprintf("$%.2f", r.TotalPotentialProfit)},
		{"Total Potential Loss", fmt.Sprintf("$%.2f", r.TotalPotentialLoss)},
		{"Risk/Reward Ratio", risk.FormatRatio(r.RiskRewardRatio)},
		{"Trades Per Day", fmt.Sprintf("%d", r.TradesPerDay)},
		{"Trades Per Week", fmt.Sprintf("%d", r.TradesPerWeek)},
		{"Risk % of Capital", fmt.Sprintf("%.2f%%", r.RiskPercentOfCapital)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", row.label, row.value)
	}
	return tw.Flush()
}

// WriteViolations lists policy violations, one per line. Nothing is
// written for an empty list.
func WriteViolations(w io.Writer, vs []risk.Violation) error {
	for _, v := range vs {
		if _, err := fmt.Fprintf(w, "! %s: %s\n", v.Code, v.Msg); err != nil {
			return err
		}
	}
	return nil
}

func WriteChartTable(w io.Writer, pts []risk.ChartPoint) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Shares\tShare Size\tProfit\tLoss\tRisk %\t")
	for _, p := range pts {
		fmt.Fprintf(tw, "%.0f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			p.Shares, p.ShareSize, p.PotentialProfit, p.PotentialLoss, p.RiskPercent)
	}
	return tw.Flush()
}

func WriteBreakevenTable(w io.Writer, pts []risk.BreakevenPoint) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Reward/Risk\tBreakeven Win %\t")
	for _, p := range pts {
		fmt.Fprintf(tw, "%.1f\t%.2f\t\n", p.RR, p.WinRate)
	}
	return tw.Flush()
}

// WriteChartCSV writes the chart series with a header row.
func WriteChartCSV(w io.Writer, pts []risk.ChartPoint) error {
	if err := gocsv.Marshal(pts, w); err != nil {
		return fmt.Errorf("marshal chart csv: %w", err)
	}
	return nil
}

// ReadChartCSV parses a file produced by WriteChartCSV.
func ReadChartCSV(r io.Reader) ([]risk.ChartPoint, error) {
	var pts []risk.ChartPoint
	if err := gocsv.Unmarshal(r, &pts); err != nil {
		return nil, fmt.Errorf("unmarshal chart csv: %w", err)
	}
	return pts, nil
}
