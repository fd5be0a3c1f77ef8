package scoring

import (
	"fmt"
	"math"

	"github.com/dotcommander/riskcalc/internal/validation"
)

// MELD formula constants and clamps, from the published model.
const (
	meldBilirubinCoef  = 3.78
	meldINRCoef        = 11.2
	meldCreatinineCoef = 9.57
	meldConstant       = 6.43

	meldLabFloor   = 1.0
	meldLabCeiling = 4.0
	meldScoreFloor = 6
	meldScoreCeil  = 40

	// dialysisCreatinine replaces the measured creatinine whenever the
	// patient received dialysis, before any clamping.
	dialysisCreatinine = 4.0
)

// Recommendation triggers on the raw lab values, distinct from the scoring
// clamps.
const (
	bilirubinAlertThreshold  = 3.0
	inrAlertThreshold        = 2.5
	creatinineAlertThreshold = 2.0
)

// MELDInput holds the liver-severity inputs. The three labs are required;
// values far outside the accepted domain (e.g. bilirubin over 50) are
// treated as probable unit errors and rejected rather than clamped.
// Dialysis is optional and defaults to false.
type MELDInput struct {
	Bilirubin  *float64 // mg/dL, accepted domain [0.1, 50]
	Creatinine *float64 // mg/dL, accepted domain [0.1, 15]
	INR        *float64 // accepted domain [0.5, 20]
	Dialysis   *bool    // at least two sessions in the past week
}

// MELDFactors echoes the lab values actually used: raw inputs after the
// dialysis override, before clamping.
type MELDFactors struct {
	Bilirubin  float64 `json:"bilirubin"`
	Creatinine float64 `json:"creatinine"`
	INR        float64 `json:"inr"`
	Dialysis   bool    `json:"dialysis"`
}

// MELDResult is the outcome of a liver-severity calculation.
type MELDResult struct {
	Score           int         `json:"score"` // integer in [6, 40]
	Risk            string      `json:"risk"`  // low, moderate, high, very-high
	Mortality       float64     `json:"mortality"`
	MortalityLabel  string      `json:"mortalityLabel"`
	Interpretation  string      `json:"interpretation"`
	Factors         MELDFactors `json:"factors"`
	Recommendations []string    `json:"recommendations"`
}

// meldBands maps the score to the published three-month mortality.
var meldBands = []Band{
	{Max: 9, Tier: RiskLow, Rate: 1.9, Label: "1.9%"},
	{Max: 19, Tier: RiskModerate, Rate: 6.0, Label: "6.0%"},
	{Max: 29, Tier: RiskHigh, Rate: 19.6, Label: "19.6%"},
	{Max: 40, Tier: RiskVeryHigh, Rate: 52.6, Label: "52.6%"},
}

// CalculateMELD computes the MELD liver-severity score. Validation
// aggregates: every failing lab is reported in a single error.
func CalculateMELD(in *MELDInput) (*MELDResult, error) {
	if in == nil {
		var r validation.Result
		r.Add(validation.CodeInvalidShape, "", "input is required")
		return nil, validation.CombinedError(r)
	}

	var r validation.Result
	r.Merge(validation.RequireNumber(in.Bilirubin, 0.1, 50, "bilirubin"))
	r.Merge(validation.RequireNumber(in.Creatinine, 0.1, 15, "creatinine"))
	r.Merge(validation.RequireNumber(in.INR, 0.5, 20, "inr"))
	if !r.IsValid() {
		return nil, validation.CombinedError(r)
	}

	dialysis := in.Dialysis != nil && *in.Dialysis
	creatinine := *in.Creatinine
	if dialysis {
		creatinine = dialysisCreatinine
	}

	factors := MELDFactors{
		Bilirubin:  *in.Bilirubin,
		Creatinine: creatinine,
		INR:        *in.INR,
		Dialysis:   dialysis,
	}

	bili := clamp(factors.Bilirubin, meldLabFloor, meldLabCeiling)
	inr := clamp(factors.INR, meldLabFloor, meldLabCeiling)
	creat := clamp(factors.Creatinine, meldLabFloor, meldLabCeiling)

	raw := meldBilirubinCoef*math.Log(bili) +
		meldINRCoef*math.Log(inr) +
		meldCreatinineCoef*math.Log(creat) +
		meldConstant
	score := int(math.Round(raw))
	if score < meldScoreFloor {
		score = meldScoreFloor
	}
	if score > meldScoreCeil {
		score = meldScoreCeil
	}

	band := classify(meldBands, score)

	return &MELDResult{
		Score:          score,
		Risk:           band.Tier,
		Mortality:      band.Rate,
		MortalityLabel: band.Label,
		Interpretation: fmt.Sprintf(
			"MELD score of %d indicates %s severity, with an estimated %s three-month mortality.",
			score, band.Tier, band.Label),
		Factors:         factors,
		Recommendations: meldRecommendations(band.Tier, in, dialysis),
	}, nil
}

func meldRecommendations(risk string, in *MELDInput, dialysis bool) []string {
	var recs []string

	switch risk {
	case RiskLow:
		recs = append(recs, "Routine hepatology follow-up at three to six month intervals.")
	case RiskModerate:
		recs = append(recs, "Hepatology follow-up within one month with repeat laboratory studies.")
	case RiskHigh:
		recs = append(recs, "Expedite hepatology referral and begin transplant evaluation.")
	case RiskVeryHigh:
		recs = append(recs,
			"Urgent inpatient hepatology evaluation.",
			"Prioritize for transplant listing review.")
	}

	if *in.Bilirubin > bilirubinAlertThreshold {
		recs = append(recs, "Evaluate for biliary obstruction given the elevated bilirubin.")
	}
	if *in.INR > inrAlertThreshold {
		recs = append(recs, "Assess bleeding risk before any invasive procedure.")
	}
	if *in.Creatinine > creatinineAlertThreshold && !dialysis {
		recs = append(recs, "Obtain nephrology consultation for renal dysfunction.")
	}
	if dialysis {
		recs = append(recs, "Coordinate dialysis scheduling with hepatology care.")
	}

	recs = append(recs, "Avoid hepatotoxic medications and alcohol.")
	return recs
}
