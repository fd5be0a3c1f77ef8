package cli

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/riskcalc/internal/output"
	"github.com/dotcommander/riskcalc/internal/scoring"
)

var meldCmd = &cobra.Command{
	Use:   "meld",
	Short: "MELD liver-severity score",
	Long: `Computes the MELD score from bilirubin, creatinine, and INR.

Labs are clamped to [1.0, 4.0] for scoring; --dialysis forces creatinine to
4.0 regardless of the measured value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := &scoring.MELDInput{
			Bilirubin:  floatFlag(cmd, "bilirubin"),
			Creatinine: floatFlag(cmd, "creatinine"),
			INR:        floatFlag(cmd, "inr"),
			Dialysis:   boolFlag(cmd, "dialysis"),
		}

		report := output.NewReport()
		res, err := scoring.CalculateMELD(in)
		if err != nil {
			report.AddError("meld", "", "", err)
			if renderErr := renderReport(report); renderErr != nil {
				return renderErr
			}
			return err
		}
		report.Add(output.FromMELD(res))
		return renderReport(report)
	},
}

func init() {
	meldCmd.Flags().Float64("bilirubin", 0, "Total bilirubin in mg/dL")
	meldCmd.Flags().Float64("creatinine", 0, "Serum creatinine in mg/dL")
	meldCmd.Flags().Float64("inr", 0, "International normalized ratio")
	meldCmd.Flags().Bool("dialysis", false, "Two or more dialysis sessions in the past week")
	rootCmd.AddCommand(meldCmd)
}
