package cli

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/riskcalc/internal/output"
	"github.com/dotcommander/riskcalc/internal/scoring"
)

var rcriCmd = &cobra.Command{
	Use:   "rcri",
	Short: "Revised Cardiac Risk Index",
	Long: `Computes the Revised Cardiac Risk Index from six risk factors.

All six factors must be given explicitly; --high-risk-surgery may instead be
derived from a free-text --procedure description.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := &scoring.RCRIInput{
			HighRiskSurgery:        boolFlag(cmd, "high-risk-surgery"),
			IschemicHeartDisease:   boolFlag(cmd, "ischemic-heart-disease"),
			CongestiveHeartFailure: boolFlag(cmd, "congestive-heart-failure"),
			CerebrovascularDisease: boolFlag(cmd, "cerebrovascular-disease"),
			InsulinTherapy:         boolFlag(cmd, "insulin-therapy"),
			CreatinineAbove2:       boolFlag(cmd, "creatinine-above-2"),
		}
		if p := stringFlag(cmd, "procedure"); p != nil {
			in.Procedure = *p
		}

		report := output.NewReport()
		res, err := scoring.CalculateRCRI(in)
		if err != nil {
			report.AddError("rcri", "", "", err)
			if renderErr := renderReport(report); renderErr != nil {
				return renderErr
			}
			return err
		}
		report.Add(output.FromRCRI(res))
		return renderReport(report)
	},
}

func init() {
	rcriCmd.Flags().Bool("high-risk-surgery", false, "Intraperitoneal, intrathoracic, or suprainguinal vascular surgery")
	rcriCmd.Flags().String("procedure", "", "Free-text procedure description used to derive --high-risk-surgery")
	rcriCmd.Flags().Bool("ischemic-heart-disease", false, "History of ischemic heart disease")
	rcriCmd.Flags().Bool("congestive-heart-failure", false, "History of congestive heart failure")
	rcriCmd.Flags().Bool("cerebrovascular-disease", false, "History of stroke or TIA")
	rcriCmd.Flags().Bool("insulin-therapy", false, "Preoperative insulin therapy")
	rcriCmd.Flags().Bool("creatinine-above-2", false, "Preoperative creatinine above 2.0 mg/dL")
	rootCmd.AddCommand(rcriCmd)
}
