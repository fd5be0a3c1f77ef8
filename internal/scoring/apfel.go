package scoring

import (
	"fmt"

	"github.com/dotcommander/riskcalc/internal/validation"
)

// ApfelInput holds the four Apfel risk factors for postoperative nausea and
// vomiting. All four are required.
type ApfelInput struct {
	FemaleGender         *bool
	Nonsmoker            *bool
	HistoryOfPONV        *bool // prior PONV or motion sickness
	PostoperativeOpioids *bool
}

// ApfelFactors echoes the resolved factors used in scoring.
type ApfelFactors struct {
	FemaleGender         bool `json:"femaleGender"`
	Nonsmoker            bool `json:"nonsmoker"`
	HistoryOfPONV        bool `json:"historyOfPONV"`
	PostoperativeOpioids bool `json:"postoperativeOpioids"`
}

// ApfelResult is the outcome of a nausea/vomiting prediction.
type ApfelResult struct {
	Score           int          `json:"score"`
	Risk            string       `json:"risk"`           // low, moderate, high, very-high
	RiskPercentage  int          `json:"riskPercentage"` // published PONV incidence for the score
	Interpretation  string       `json:"interpretation"`
	Factors         ApfelFactors `json:"factors"`
	Recommendations []string     `json:"recommendations"`
}

// apfelIncidence maps each score to its published PONV incidence percentage.
var apfelIncidence = map[int]int{0: 10, 1: 21, 2: 39, 3: 61, 4: 79}

var apfelBands = []Band{
	{Max: 0, Tier: RiskLow},
	{Max: 1, Tier: RiskModerate},
	{Max: 2, Tier: RiskHigh},
	{Max: 4, Tier: RiskVeryHigh},
}

// CalculateApfel computes the Apfel score. Validation fails fast on the
// first missing factor.
func CalculateApfel(in *ApfelInput) (*ApfelResult, error) {
	if in == nil {
		var r validation.Result
		r.Add(validation.CodeInvalidShape, "", "input is required")
		return nil, validation.FirstError(r)
	}

	required := []struct {
		value *bool
		field string
	}{
		{in.FemaleGender, "femaleGender"},
		{in.Nonsmoker, "nonsmoker"},
		{in.HistoryOfPONV, "historyOfPONV"},
		{in.PostoperativeOpioids, "postoperativeOpioids"},
	}
	for _, f := range required {
		if r := validation.RequireBool(f.value, f.field); !r.IsValid() {
			return nil, validation.FirstError(r)
		}
	}

	factors := ApfelFactors{
		FemaleGender:         *in.FemaleGender,
		Nonsmoker:            *in.Nonsmoker,
		HistoryOfPONV:        *in.HistoryOfPONV,
		PostoperativeOpioids: *in.PostoperativeOpioids,
	}

	score := countTrue(
		factors.FemaleGender,
		factors.Nonsmoker,
		factors.HistoryOfPONV,
		factors.PostoperativeOpioids,
	)
	band := classify(apfelBands, score)
	incidence := apfelIncidence[score]

	return &ApfelResult{
		Score:          score,
		Risk:           band.Tier,
		RiskPercentage: incidence,
		Interpretation: fmt.Sprintf(
			"Apfel score of %d predicts a %d%% incidence of postoperative nausea and vomiting (%s risk).",
			score, incidence, band.Tier),
		Factors:         factors,
		Recommendations: apfelRecommendations(band.Tier, factors),
	}, nil
}

func apfelRecommendations(risk string, f ApfelFactors) []string {
	var recs []string

	switch risk {
	case RiskLow:
		recs = append(recs, "No routine antiemetic prophylaxis required.")
	case RiskModerate:
		recs = append(recs, "Administer a single prophylactic antiemetic agent.")
	case RiskHigh:
		recs = append(recs, "Use combination prophylaxis with two antiemetic agents from different classes.")
	case RiskVeryHigh:
		recs = append(recs,
			"Use multimodal prophylaxis with two or more antiemetic agents.",
			"Consider total intravenous anesthesia with propofol.")
	}

	if f.PostoperativeOpioids {
		recs = append(recs, "Minimize postoperative opioids; prefer regional or non-opioid analgesia.")
	}
	if f.HistoryOfPONV {
		recs = append(recs, "Note the prior episode in the anesthetic plan and extend antiemetic cover into recovery.")
	}

	recs = append(recs, "Ensure adequate hydration before induction.")
	return recs
}
