package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/riskcalc/journal"
	"github.com/rustyeddy/riskcalc/report"
	"github.com/rustyeddy/riskcalc/risk"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Size a position from entry, stop and account risk",
	Long: `Calculate position size, potential profit and risk/reward for one trade.

Balance and risk default to the account section of the config. A missing
entry or stop, or a stop on the wrong side of entry, yields zeros rather
than an error.

Examples:
  riskcalc trade --entry 100 --stop 95 --take-profit 110
  riskcalc trade --balance 25000 --risk 1 --entry 50 --stop 52 --position short`,
	Args: cobra.NoArgs,
	RunE: runTrade,
}

var (
	tradeBalance    float64
	tradeRisk       float64
	tradeEntry      float64
	tradeStop       float64
	tradeTakeProfit float64
	tradePosition   string
	tradeSave       bool
)

func init() {
	rootCmd.AddCommand(tradeCmd)

	f := tradeCmd.Flags()
	f.Float64VarP(&tradeBalance, "balance", "b", 0, "account balance (default from config)")
	f.Float64VarP(&tradeRisk, "risk", "r", 0, "risk percentage per trade (default from config)")
	f.Float64VarP(&tradeEntry, "entry", "e", 0, "entry price")
	f.Float64VarP(&tradeStop, "stop", "s", 0, "stop loss price")
	f.Float64VarP(&tradeTakeProfit, "take-profit", "t", 0, "take profit price (optional)")
	f.StringVarP(&tradePosition, "position", "p", "long", "position type: long or short")
	f.BoolVar(&tradeSave, "save", false, "record the calculation in the journal")
}

func runTrade(cmd *cobra.Command, args []string) error {
	pos, err := risk.ParsePositionType(tradePosition)
	if err != nil {
		return err
	}

	p := risk.TradeParams{
		AccountBalance: tradeBalance,
		RiskPercentage: tradeRisk,
		EntryPrice:     tradeEntry,
		StopLoss:       tradeStop,
		TakeProfit:     tradeTakeProfit,
		Position:       pos,
	}
	if !cmd.Flags().Changed("balance") {
		p.AccountBalance = cfg.Account.Balance
	}
	if !cmd.Flags().Changed("risk") {
		p.RiskPercentage = cfg.Account.RiskPercent
	}

	res := risk.ComputeTradeRisk(p)
	log.Debug().
		Str("position", p.Position.String()).
		Float64("entry", p.EntryPrice).
		Float64("stop", p.StopLoss).
		Float64("position_size", res.PositionSize).
		Msg("trade risk computed")

	out := cmd.OutOrStdout()
	if err := report.WriteTrade(out, p, res); err != nil {
		return err
	}
	d := risk.Evaluate(cfg.Policy, p, res)
	if !d.Allowed {
		fmt.Fprintln(out)
		if err := report.WriteViolations(out, d.Violations); err != nil {
			return err
		}
	}

	if tradeSave {
		return saveRecord(cmd, func(j journal.Journal) (string, error) {
			rec := journal.NewTradeRecord(p, res)
			return rec.ID, j.RecordTrade(rec)
		})
	}
	return nil
}

// saveRecord opens the configured journal, writes one record and reports its ID.
func saveRecord(cmd *cobra.Command, write func(journal.Journal) (string, error)) error {
	j, err := journal.Open(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	recID, err := write(j)
	if err != nil {
		return fmt.Errorf("record calculation: %w", err)
	}
	log.Info().Str("id", recID).Str("journal", cfg.Journal.Type).Msg("calculation saved")
	fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Saved as %s\n", recID)
	return nil
}
