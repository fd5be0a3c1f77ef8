package scoring

import (
	"fmt"

	"github.com/dotcommander/riskcalc/internal/validation"
)

// RCRIInput holds the six Revised Cardiac Risk Index factors. Every factor is
// required; HighRiskSurgery may alternatively be derived from the Procedure
// description when not supplied directly.
type RCRIInput struct {
	HighRiskSurgery        *bool
	Procedure              string // free-text procedure, used to derive HighRiskSurgery
	IschemicHeartDisease   *bool
	CongestiveHeartFailure *bool
	CerebrovascularDisease *bool
	InsulinTherapy         *bool
	CreatinineAbove2       *bool // preoperative creatinine > 2.0 mg/dL
}

// RCRIFactors echoes the resolved factors actually used in scoring.
type RCRIFactors struct {
	HighRiskSurgery        bool `json:"highRiskSurgery"`
	IschemicHeartDisease   bool `json:"ischemicHeartDisease"`
	CongestiveHeartFailure bool `json:"congestiveHeartFailure"`
	CerebrovascularDisease bool `json:"cerebrovascularDisease"`
	InsulinTherapy         bool `json:"insulinTherapy"`
	CreatinineAbove2       bool `json:"creatinineAbove2"`
}

// RCRIResult is the outcome of a cardiac risk index calculation.
type RCRIResult struct {
	Score           int         `json:"score"`
	Class           string      `json:"class"` // I, II, III, IV
	Rate            float64     `json:"rate"`  // complication rate as a number
	RateLabel       string      `json:"rateLabel"`
	Interpretation  string      `json:"interpretation"`
	Factors         RCRIFactors `json:"factors"`
	Recommendations []string    `json:"recommendations"`
}

// rcriBands maps the factor count to the published risk class and rate of
// major cardiac complications. Class IV covers every score of 3 or more.
var rcriBands = []Band{
	{Max: 0, Tier: ClassI, Rate: 0.4, Label: "0.4%"},
	{Max: 1, Tier: ClassII, Rate: 0.9, Label: "0.9%"},
	{Max: 2, Tier: ClassIII, Rate: 6.6, Label: "6.6%"},
	{Max: 6, Tier: ClassIV, Rate: 11, Label: "≥11%"},
}

// CalculateRCRI computes the Revised Cardiac Risk Index. Validation fails
// fast: the returned error names the first missing field only.
func CalculateRCRI(in *RCRIInput) (*RCRIResult, error) {
	if in == nil {
		var r validation.Result
		r.Add(validation.CodeInvalidShape, "", "input is required")
		return nil, validation.FirstError(r)
	}

	highRiskSurgery, err := resolveHighRiskSurgery(in)
	if err != nil {
		return nil, err
	}

	required := []struct {
		value *bool
		field string
	}{
		{in.IschemicHeartDisease, "ischemicHeartDisease"},
		{in.CongestiveHeartFailure, "congestiveHeartFailure"},
		{in.CerebrovascularDisease, "cerebrovascularDisease"},
		{in.InsulinTherapy, "insulinTherapy"},
		{in.CreatinineAbove2, "creatinineAbove2"},
	}
	for _, f := range required {
		if r := validation.RequireBool(f.value, f.field); !r.IsValid() {
			return nil, validation.FirstError(r)
		}
	}

	factors := RCRIFactors{
		HighRiskSurgery:        highRiskSurgery,
		IschemicHeartDisease:   *in.IschemicHeartDisease,
		CongestiveHeartFailure: *in.CongestiveHeartFailure,
		CerebrovascularDisease: *in.CerebrovascularDisease,
		InsulinTherapy:         *in.InsulinTherapy,
		CreatinineAbove2:       *in.CreatinineAbove2,
	}

	score := countTrue(
		factors.HighRiskSurgery,
		factors.IschemicHeartDisease,
		factors.CongestiveHeartFailure,
		factors.CerebrovascularDisease,
		factors.InsulinTherapy,
		factors.CreatinineAbove2,
	)
	band := classify(rcriBands, score)

	return &RCRIResult{
		Score:     score,
		Class:     band.Tier,
		Rate:      band.Rate,
		RateLabel: band.Label,
		Interpretation: fmt.Sprintf(
			"Revised Cardiac Risk Index of %d places the patient in class %s, corresponding to a %s risk of major cardiac complications.",
			score, band.Tier, band.Label),
		Factors:         factors,
		Recommendations: rcriRecommendations(band.Tier, factors),
	}, nil
}

// resolveHighRiskSurgery returns the surgery factor either directly or
// derived from the procedure description.
func resolveHighRiskSurgery(in *RCRIInput) (bool, error) {
	if in.HighRiskSurgery != nil {
		return *in.HighRiskSurgery, nil
	}
	if in.Procedure != "" {
		return IsHighRiskSurgery(in.Procedure), nil
	}
	var r validation.Result
	r.Add(validation.CodeMissingRequired, "highRiskSurgery",
		"highRiskSurgery is required when no procedure description is supplied")
	return false, validation.FirstError(r)
}

func rcriRecommendations(class string, f RCRIFactors) []string {
	var recs []string

	switch class {
	case ClassI, ClassII:
		recs = append(recs, "Proceed with standard perioperative monitoring.")
	case ClassIII:
		recs = append(recs,
			"Consider preoperative cardiology consultation.",
			"Obtain a baseline ECG and consider postoperative troponin surveillance.")
	case ClassIV:
		recs = append(recs,
			"Obtain preoperative cardiology consultation before scheduling surgery.",
			"Plan postoperative troponin surveillance and continuous ECG monitoring for 48-72 hours.")
	}

	if f.IschemicHeartDisease {
		recs = append(recs, "Continue beta-blocker and statin therapy through the perioperative period.")
	}
	if f.CongestiveHeartFailure {
		recs = append(recs, "Optimize volume status and heart failure therapy before surgery.")
	}
	if f.CerebrovascularDisease {
		recs = append(recs, "Maintain intraoperative blood pressure within 20% of baseline.")
	}
	if f.InsulinTherapy {
		recs = append(recs, "Schedule as an early case and monitor perioperative glucose closely.")
	}
	if f.CreatinineAbove2 {
		recs = append(recs, "Avoid nephrotoxic agents and maintain adequate perioperative hydration.")
	}

	recs = append(recs, "Reassess cardiac risk if the surgical plan changes.")
	return recs
}
