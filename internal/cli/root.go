// Package cli wires the riskcalc command tree: one subcommand per
// calculator plus batch evaluation of case files.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/riskcalc/internal/config"
	"github.com/dotcommander/riskcalc/internal/output"
)

var (
	outputFormat string
	outputFile   string
	quiet        bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "riskcalc",
	Short: "Clinical risk score calculators",
	Long: `riskcalc computes published clinical risk scores from patient risk
factors: the Revised Cardiac Risk Index (rcri), the STOP-BANG sleep-apnea
screen (stopbang), the Apfel postoperative nausea predictor (apfel), and the
MELD liver-severity score (meld).

Each subcommand takes the calculator's inputs as flags; the batch command
evaluates YAML or JSON case files matched by glob patterns.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for json/markdown reports")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show per-field validation details")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// renderReport formats the report according to the loaded configuration.
func renderReport(report *output.Report) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if noColor, _ := rootCmd.PersistentFlags().GetBool("no-color"); noColor {
		cfg.Color = false
	}
	formatter, err := output.NewFormatter(cfg)
	if err != nil {
		return err
	}
	return formatter.Format(report)
}

// Flag helpers: a flag left unset maps to nil so the calculators can apply
// their missing-field semantics.

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func floatFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
