// Package main provides the entry point for the gofreq CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gofreq/cmd/gofreq/commands"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := newRootCommand()

	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	global := &commands.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "gofreq",
		Short: "Grouped-frequency descriptive statistics",
		Long: `gofreq bins a numeric sample into class intervals and reports the
frequency distribution, cumulative frequencies, mean, median, variance,
standard deviation, coefficient of variation and variation ratio.

Commands:
  table     Frequency table with optional footer statistics
  summary   Every statistic at once`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	global.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(commands.NewTableCommand(global))
	rootCmd.AddCommand(commands.NewSummaryCommand(global))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gofreq %s\n", version)
		},
	}
}
