package scoring

import (
	"fmt"
	"strings"

	"github.com/dotcommander/riskcalc/internal/validation"
)

// Demographics is an optional secondary record. Any field left unset on the
// primary input is filled from here before validation runs.
type Demographics struct {
	Age      *float64
	Gender   *string
	WeightKg *float64
	HeightCm *float64
}

// STOPBANGInput holds the STOP-BANG screen inputs. The four questionnaire
// answers are required booleans. Age, gender, and neck circumference are
// required but may come from the demographics record; BMI may be supplied
// directly or computed from weight and height.
type STOPBANGInput struct {
	Snoring          *bool
	DaytimeTiredness *bool
	ObservedApnea    *bool
	Hypertension     *bool

	Age                 *float64 // years, accepted domain [1, 120]
	Gender              *string  // "male" or "female", case-insensitive
	NeckCircumferenceCm *float64 // accepted domain [20, 60]
	BMI                 *float64 // accepted domain [10, 100]
	WeightKg            *float64 // used with HeightCm to derive BMI
	HeightCm            *float64
}

// STOPBANGFactors echoes the eight resolved factors that were scored.
type STOPBANGFactors struct {
	Snoring          bool `json:"snoring"`
	DaytimeTiredness bool `json:"daytimeTiredness"`
	ObservedApnea    bool `json:"observedApnea"`
	Hypertension     bool `json:"hypertension"`
	BMIOver35        bool `json:"bmiOver35"`
	AgeOver50        bool `json:"ageOver50"`
	NeckOver40       bool `json:"neckOver40"`
	MaleGender       bool `json:"maleGender"`
}

// STOPBANGResult is the outcome of a sleep-apnea screen.
type STOPBANGResult struct {
	Score           int             `json:"score"`
	Risk            string          `json:"risk"` // low, intermediate, high
	Interpretation  string          `json:"interpretation"`
	Factors         STOPBANGFactors `json:"factors"`
	Recommendations []string        `json:"recommendations"`
}

var stopbangBands = []Band{
	{Max: 2, Tier: RiskLow},
	{Max: 4, Tier: RiskIntermediate},
	{Max: 8, Tier: RiskHigh},
}

// CalculateSTOPBANG computes the STOP-BANG obstructive sleep apnea screen.
// Validation aggregates: every field failure is collected and reported in a
// single error listing all failing fields.
func CalculateSTOPBANG(in *STOPBANGInput, demo *Demographics) (*STOPBANGResult, error) {
	if in == nil {
		var r validation.Result
		r.Add(validation.CodeInvalidShape, "", "input is required")
		return nil, validation.CombinedError(r)
	}

	resolved := resolveSTOPBANG(in, demo)

	var r validation.Result
	r.Merge(validation.RequireBool(in.Snoring, "snoring"))
	r.Merge(validation.RequireBool(in.DaytimeTiredness, "daytimeTiredness"))
	r.Merge(validation.RequireBool(in.ObservedApnea, "observedApnea"))
	r.Merge(validation.RequireBool(in.Hypertension, "hypertension"))
	r.Merge(validation.RequireNumber(resolved.bmi, 10, 100, "bmi"))
	r.Merge(validation.RequireNumber(resolved.age, 1, 120, "age"))
	r.Merge(validation.RequireNumber(resolved.neck, 20, 60, "neckCircumferenceCm"))
	male, genderResult := resolveGender(resolved.gender)
	r.Merge(genderResult)
	if !r.IsValid() {
		return nil, validation.CombinedError(r)
	}

	// Scoring thresholds are strict: a value exactly at the boundary does
	// not count as a factor.
	factors := STOPBANGFactors{
		Snoring:          *in.Snoring,
		DaytimeTiredness: *in.DaytimeTiredness,
		ObservedApnea:    *in.ObservedApnea,
		Hypertension:     *in.Hypertension,
		BMIOver35:        *resolved.bmi > 35,
		AgeOver50:        *resolved.age > 50,
		NeckOver40:       *resolved.neck > 40,
		MaleGender:       male,
	}

	score := countTrue(
		factors.Snoring,
		factors.DaytimeTiredness,
		factors.ObservedApnea,
		factors.Hypertension,
		factors.BMIOver35,
		factors.AgeOver50,
		factors.NeckOver40,
		factors.MaleGender,
	)
	band := classify(stopbangBands, score)

	return &STOPBANGResult{
		Score: score,
		Risk:  band.Tier,
		Interpretation: fmt.Sprintf(
			"STOP-BANG score of %d indicates %s risk of obstructive sleep apnea.",
			score, band.Tier),
		Factors:         factors,
		Recommendations: stopbangRecommendations(band.Tier, factors),
	}, nil
}

type resolvedSTOPBANG struct {
	age    *float64
	gender *string
	neck   *float64
	bmi    *float64
}

// resolveSTOPBANG fills each derivable field from its sources in order:
// direct value, then demographics, then (for BMI) computation from weight
// and height. Range validation runs after resolution.
func resolveSTOPBANG(in *STOPBANGInput, demo *Demographics) resolvedSTOPBANG {
	var demoAge, demoWeight, demoHeight *float64
	var demoGender *string
	if demo != nil {
		demoAge, demoGender = demo.Age, demo.Gender
		demoWeight, demoHeight = demo.WeightKg, demo.HeightCm
	}

	res := resolvedSTOPBANG{
		age:    validation.FirstOf(in.Age, demoAge),
		gender: validation.FirstOf(in.Gender, demoGender),
		neck:   in.NeckCircumferenceCm,
		bmi:    in.BMI,
	}

	weight := validation.FirstOf(in.WeightKg, demoWeight)
	height := validation.FirstOf(in.HeightCm, demoHeight)
	if res.bmi == nil && weight != nil && height != nil && *height > 0 {
		bmi := validation.BMI(*weight, *height)
		res.bmi = &bmi
	}
	return res
}

// resolveGender normalizes the gender string and reports whether the patient
// is male. Only "male" and "female" are accepted.
func resolveGender(gender *string) (bool, validation.Result) {
	var r validation.Result
	if gender == nil {
		r.Add(validation.CodeMissingRequired, "gender", "gender is required")
		return false, r
	}
	switch strings.ToLower(*gender) {
	case "male":
		return true, r
	case "female":
		return false, r
	default:
		r.Add(validation.CodeOutOfRange, "gender",
			fmt.Sprintf("gender must be male or female, got %q", *gender))
		return false, r
	}
}

func stopbangRecommendations(risk string, f STOPBANGFactors) []string {
	var recs []string

	switch risk {
	case RiskLow:
		recs = append(recs, "No routine sleep study indicated; reassess if symptoms progress.")
	case RiskIntermediate:
		recs = append(recs,
			"Consider referral for sleep medicine evaluation.",
			"Screen again after any significant weight change.")
	case RiskHigh:
		recs = append(recs,
			"Refer for polysomnography to confirm obstructive sleep apnea.",
			"Anticipate a difficult airway and plan postoperative continuous pulse oximetry.")
	}

	if f.BMIOver35 {
		recs = append(recs, "Offer structured weight management counseling.")
	}
	if f.Hypertension {
		recs = append(recs, "Review blood pressure control; untreated apnea can worsen hypertension.")
	}
	if f.ObservedApnea {
		recs = append(recs, "Document witnessed apneas and consider positional therapy pending evaluation.")
	}

	recs = append(recs, "Advise against sedatives and evening alcohol pending sleep evaluation.")
	return recs
}
