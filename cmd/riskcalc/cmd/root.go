package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/riskcalc/config"
	"github.com/rustyeddy/riskcalc/logging"
)

var (
	cfgFile  string
	logLevel string

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "riskcalc",
	Short: "Position sizing and risk/reward calculator for traders",
	Long: `riskcalc sizes trades from account risk and sets capital allocation
limits from daily and weekly loss caps.

It provides tools for:
  - Position sizing from entry, stop loss and take profit
  - Capital allocation against daily/weekly loss limits
  - Parameter validation with per-field messages
  - Share-count risk charts and breakeven win rates
  - A calculation journal (CSV or SQLite)
  - A JSON API for UI front ends`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON; defaults are used when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

func setup(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		loaded, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log = logging.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
	log.Debug().Str("config", cfgFile).Str("journal", cfg.Journal.Type).Msg("configuration loaded")
	return nil
}
