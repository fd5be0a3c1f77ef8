package cli

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/riskcalc/internal/output"
	"github.com/dotcommander/riskcalc/internal/scoring"
)

var stopbangCmd = &cobra.Command{
	Use:   "stopbang",
	Short: "STOP-BANG sleep-apnea screen",
	Long: `Computes the STOP-BANG obstructive sleep apnea screen from the four
questionnaire answers plus age, gender, neck circumference, and BMI.

BMI may be given directly or derived from --weight and --height.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := &scoring.STOPBANGInput{
			Snoring:             boolFlag(cmd, "snoring"),
			DaytimeTiredness:    boolFlag(cmd, "tiredness"),
			ObservedApnea:       boolFlag(cmd, "observed-apnea"),
			Hypertension:        boolFlag(cmd, "hypertension"),
			Age:                 floatFlag(cmd, "age"),
			Gender:              stringFlag(cmd, "gender"),
			NeckCircumferenceCm: floatFlag(cmd, "neck"),
			BMI:                 floatFlag(cmd, "bmi"),
			WeightKg:            floatFlag(cmd, "weight"),
			HeightCm:            floatFlag(cmd, "height"),
		}

		report := output.NewReport()
		res, err := scoring.CalculateSTOPBANG(in, nil)
		if err != nil {
			report.AddError("stopbang", "", "", err)
			if renderErr := renderReport(report); renderErr != nil {
				return renderErr
			}
			return err
		}
		report.Add(output.FromSTOPBANG(res))
		return renderReport(report)
	},
}

func init() {
	stopbangCmd.Flags().Bool("snoring", false, "Loud snoring")
	stopbangCmd.Flags().Bool("tiredness", false, "Daytime tiredness or fatigue")
	stopbangCmd.Flags().Bool("observed-apnea", false, "Observed breathing pauses during sleep")
	stopbangCmd.Flags().Bool("hypertension", false, "Treated or untreated high blood pressure")
	stopbangCmd.Flags().Float64("age", 0, "Age in years")
	stopbangCmd.Flags().String("gender", "", "Gender (male or female)")
	stopbangCmd.Flags().Float64("neck", 0, "Neck circumference in centimeters")
	stopbangCmd.Flags().Float64("bmi", 0, "Body-mass index")
	stopbangCmd.Flags().Float64("weight", 0, "Weight in kilograms (used to derive BMI)")
	stopbangCmd.Flags().Float64("height", 0, "Height in centimeters (used to derive BMI)")
	rootCmd.AddCommand(stopbangCmd)
}
