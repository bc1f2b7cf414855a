package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/riskcalc/report"
	"github.com/rustyeddy/riskcalc/risk"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Tabulate risk across share counts from 0 to 200",
	Long: `Print share size, profit, loss and risk percentage for 0, 10, ... 200 shares.

Only capital, risk, price and target are used; --shares is ignored.

Examples:
  riskcalc chart --capital 10000 --risk 2 --price 50 --target 2
  riskcalc chart --csv chart.csv`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Show the win rate needed to break even at each reward/risk ratio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report.WriteBreakevenTable(cmd.OutOrStdout(), risk.BreakevenCurve())
	},
}

var (
	chartCSV  string
	chartFlag = map[string]*float64{}
)

func init() {
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(breakevenCmd)

	allocationFlags(chartCmd.Flags(), chartFlag)
	chartCmd.Flags().StringVar(&chartCSV, "csv", "", "write the series to this CSV file instead of a table")
}

func runChart(cmd *cobra.Command, args []string) error {
	p := allocationParams(cmd.Flags(), chartFlag)
	pts := risk.GenerateChartDataSeries(p)

	if chartCSV == "" {
		return report.WriteChartTable(cmd.OutOrStdout(), pts)
	}

	f, err := os.Create(chartCSV)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := report.WriteChartCSV(f, pts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info().Str("file", chartCSV).Int("points", len(pts)).Msg("chart written")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d points to %s\n", len(pts), chartCSV)
	return nil
}
