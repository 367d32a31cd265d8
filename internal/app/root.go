// Package app contains the Cobra command tree for crechestat.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
	flagLookup  string
)

var rootCmd = &cobra.Command{
	Use:   "crechestat",
	Short: "Satisfaction statistics for childcare facility surveys",
	Long: `crechestat analyzes satisfaction survey spreadsheets for a set of
childcare facilities. It identifies the survey columns, aggregates responses
per establishment and per question, classifies questions as open, closed, or
multi-option, and computes satisfaction percentages.

Input is an XLSX or CSV survey export, or a JSON snapshot previously written
by 'crechestat export'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("crechestat", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  analyze   Full per-facility report from a survey export")
		fmt.Println("  global    Cross-facility statistics, grouped by manager")
		fmt.Println("  rank      Facility ranking by satisfaction score")
		fmt.Println("  export    Write the analysis as a reloadable JSON snapshot")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/crechestat/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLookup, "lookup", "", "Facility/manager mapping CSV")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
