package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rustyeddy/riskcalc/journal"
	"github.com/rustyeddy/riskcalc/report"
	"github.com/rustyeddy/riskcalc/risk"
)

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Compute capital allocation against daily and weekly loss caps",
	Long: `Calculate share size, risk per trade and how many losing trades fit
within the daily and weekly loss limits.

Unset flags fall back to the allocation section of the config. Invalid
parameters are rejected with one message per problem.

Example:
  riskcalc allocate --capital 10000 --risk 2 --daily 5 --weekly 10 --price 50 --shares 100 --target 2`,
	Args: cobra.NoArgs,
	RunE: runAllocate,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check capital allocation parameters",
	Long: `List every problem with a set of capital allocation parameters.

Example:
  riskcalc validate --capital 0 --risk 150`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var (
	allocSave bool
	allocFlag = map[string]*float64{}
)

// allocationFlags registers the seven allocation inputs on fs.
func allocationFlags(fs *pflag.FlagSet, vals map[string]*float64) {
	for _, def := range []struct{ name, usage string }{
		{"capital", "starting capital"},
		{"risk", "risk tolerance per trade, percent"},
		{"daily", "daily max loss, percent of capital"},
		{"weekly", "weekly max loss, percent of capital"},
		{"price", "share price"},
		{"shares", "number of shares"},
		{"target", "profit target per share"},
	} {
		v := new(float64)
		vals[def.name] = v
		fs.Float64Var(v, def.name, 0, def.usage+" (default from config)")
	}
}

// allocationParams merges explicitly set flags over the configured defaults.
func allocationParams(fs *pflag.FlagSet, vals map[string]*float64) risk.AllocationParams {
	p := cfg.Allocation
	set := func(name string, dst *float64) {
		if fs.Changed(name) {
			*dst = *vals[name]
		}
	}
	set("capital", &p.StartingCapital)
	set("risk", &p.RiskTolerance)
	set("daily", &p.DailyMaxLoss)
	set("weekly", &p.WeeklyMaxLoss)
	set("price", &p.SharePrice)
	set("shares", &p.NumShares)
	set("target", &p.ProfitTargetPerShare)
	return p
}

var validateFlag = map[string]*float64{}

func init() {
	rootCmd.AddCommand(allocateCmd)
	rootCmd.AddCommand(validateCmd)

	allocationFlags(allocateCmd.Flags(), allocFlag)
	allocateCmd.Flags().BoolVar(&allocSave, "save", false, "record the calculation in the journal")
	allocationFlags(validateCmd.Flags(), validateFlag)
}

func runAllocate(cmd *cobra.Command, args []string) error {
	p := allocationParams(cmd.Flags(), allocFlag)
	out := cmd.OutOrStdout()

	res, err := risk.ComputeCapitalAllocationRisk(p)
	if errors.Is(err, risk.ErrInvalidParams) {
		log.Warn().Err(err).Msg("allocation rejected")
		for _, msg := range risk.ValidateParams(p) {
			fmt.Fprintf(out, "✗ %s\n", msg)
		}
		return err
	}
	if err != nil {
		return err
	}

	if err := report.WriteAllocation(out, res); err != nil {
		return err
	}
	d := risk.EvaluateAllocation(cfg.Policy, p, res)
	if !d.Allowed {
		fmt.Fprintln(out)
		if err := report.WriteViolations(out, d.Violations); err != nil {
			return err
		}
	}

	if allocSave {
		return saveRecord(cmd, func(j journal.Journal) (string, error) {
			rec := journal.NewAllocationRecord(p, res)
			return rec.ID, j.RecordAllocation(rec)
		})
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	p := allocationParams(cmd.Flags(), validateFlag)
	out := cmd.OutOrStdout()

	msgs := risk.ValidateParams(p)
	if len(msgs) == 0 {
		fmt.Fprintln(out, "✓ parameters valid")
		return nil
	}
	for _, msg := range msgs {
		fmt.Fprintf(out, "✗ %s\n", msg)
	}
	return fmt.Errorf("%d invalid parameter(s)", len(msgs))
}
