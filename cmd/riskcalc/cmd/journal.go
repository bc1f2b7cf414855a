package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/riskcalc/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query saved calculations",
	Long: `Query and display saved calculations from the SQLite journal.

Subcommands:
  show   - Show a saved trade or allocation by ID
  recent - List the most recent trade calculations
  day    - List trade calculations made on a specific day

Examples:
  riskcalc journal show <id>
  riskcalc journal recent -n 5
  riskcalc journal day 2024-01-15`,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved calculation",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recent trade calculations",
	Args:  cobra.NoArgs,
	RunE:  runJournalRecent,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trade calculations made on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var (
	journalDBPath string
	journalLimit  int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalRecentCmd)
	journalCmd.AddCommand(journalDayCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB (default from config)")
	journalRecentCmd.Flags().IntVarP(&journalLimit, "limit", "n", 10, "number of records")
}

func openJournalDB() (*journal.SQLite, error) {
	path := journalDBPath
	if path == "" {
		path = cfg.Journal.DBPath
	}
	if path == "" {
		return nil, fmt.Errorf("no SQLite journal configured; pass --db")
	}
	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	recID := args[0]
	if rec, err := j.GetTrade(recID); err == nil {
		fmt.Fprint(cmd.OutOrStdout(), journal.FormatTradeOrg(rec))
		return nil
	} else if !errors.Is(err, journal.ErrNotFound) {
		return fmt.Errorf("get trade: %w", err)
	}

	rec, err := j.GetAllocation(recID)
	if err != nil {
		return fmt.Errorf("get allocation: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), journal.FormatAllocationOrg(rec))
	return nil
}

func runJournalRecent(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.RecentTrades(journalLimit)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), journal.FormatTradesOrg(recs))
	return nil
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	start, end, err := dayBounds(time.Local, args[0])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListTradesBetween(start, end)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), journal.FormatTradesOrg(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1), nil
}
