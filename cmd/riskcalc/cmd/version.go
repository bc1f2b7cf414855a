package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the riskcalc CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "riskcalc version %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), "Position sizing and risk/reward calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
