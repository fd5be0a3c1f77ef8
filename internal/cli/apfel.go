package cli

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/riskcalc/internal/output"
	"github.com/dotcommander/riskcalc/internal/scoring"
)

var apfelCmd = &cobra.Command{
	Use:   "apfel",
	Short: "Apfel postoperative nausea predictor",
	Long:  `Computes the Apfel score for postoperative nausea and vomiting from its four risk factors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := &scoring.ApfelInput{
			FemaleGender:         boolFlag(cmd, "female"),
			Nonsmoker:            boolFlag(cmd, "nonsmoker"),
			HistoryOfPONV:        boolFlag(cmd, "history-ponv"),
			PostoperativeOpioids: boolFlag(cmd, "opioids"),
		}

		report := output.NewReport()
		res, err := scoring.CalculateApfel(in)
		if err != nil {
			report.AddError("apfel", "", "", err)
			if renderErr := renderReport(report); renderErr != nil {
				return renderErr
			}
			return err
		}
		report.Add(output.FromApfel(res))
		return renderReport(report)
	},
}

func init() {
	apfelCmd.Flags().Bool("female", false, "Female gender")
	apfelCmd.Flags().Bool("nonsmoker", false, "Non-smoking status")
	apfelCmd.Flags().Bool("history-ponv", false, "History of PONV or motion sickness")
	apfelCmd.Flags().Bool("opioids", false, "Anticipated postoperative opioid use")
	rootCmd.AddCommand(apfelCmd)
}
