package cases

import (
	"fmt"

	"github.com/dotcommander/riskcalc/internal/scoring"
	"github.com/dotcommander/riskcalc/internal/validation"
)

// boolField extracts an optional boolean, recording WRONG_KIND when the
// field is present with another kind. Absent fields return nil; the
// calculators decide whether absence is an error.
func boolField(m map[string]any, field string, r *validation.Result) *bool {
	v, ok := m[field]
	if !ok || v == nil {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		r.Add(validation.CodeWrongKind, field, fmt.Sprintf("%s must be a boolean, got %T", field, v))
		return nil
	}
	return &b
}

// numberField extracts an optional numeric field. YAML decodes whole numbers
// as int, so both int and float64 are accepted.
func numberField(m map[string]any, field string, r *validation.Result) *float64 {
	v, ok := m[field]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	default:
		r.Add(validation.CodeWrongKind, field, fmt.Sprintf("%s must be a number, got %T", field, v))
		return nil
	}
}

// stringField extracts an optional string field.
func stringField(m map[string]any, field string, r *validation.Result) *string {
	v, ok := m[field]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		r.Add(validation.CodeWrongKind, field, fmt.Sprintf("%s must be a string, got %T", field, v))
		return nil
	}
	return &s
}

func shapeError() *validation.InputError {
	var r validation.Result
	r.Add(validation.CodeInvalidShape, "", "input must be a record")
	return validation.CombinedError(r)
}

// DecodeRCRI converts a generic input map into a typed RCRI input.
func DecodeRCRI(m map[string]any) (*scoring.RCRIInput, error) {
	if m == nil {
		return nil, shapeError()
	}
	var r validation.Result
	in := &scoring.RCRIInput{
		HighRiskSurgery:        boolField(m, "highRiskSurgery", &r),
		IschemicHeartDisease:   boolField(m, "ischemicHeartDisease", &r),
		CongestiveHeartFailure: boolField(m, "congestiveHeartFailure", &r),
		CerebrovascularDisease: boolField(m, "cerebrovascularDisease", &r),
		InsulinTherapy:         boolField(m, "insulinTherapy", &r),
		CreatinineAbove2:       boolField(m, "creatinineAbove2", &r),
	}
	if p := stringField(m, "procedure", &r); p != nil {
		in.Procedure = *p
	}
	if !r.IsValid() {
		return nil, validation.CombinedError(r)
	}
	return in, nil
}

// DecodeSTOPBANG converts generic input and demographics maps into typed
// STOP-BANG inputs. A nil demographics map is allowed.
func DecodeSTOPBANG(m, demo map[string]any) (*scoring.STOPBANGInput, *scoring.Demographics, error) {
	if m == nil {
		return nil, nil, shapeError()
	}
	var r validation.Result
	in := &scoring.STOPBANGInput{
		Snoring:             boolField(m, "snoring", &r),
		DaytimeTiredness:    boolField(m, "daytimeTiredness", &r),
		ObservedApnea:       boolField(m, "observedApnea", &r),
		Hypertension:        boolField(m, "hypertension", &r),
		Age:                 numberField(m, "age", &r),
		Gender:              stringField(m, "gender", &r),
		NeckCircumferenceCm: numberField(m, "neckCircumferenceCm", &r),
		BMI:                 numberField(m, "bmi", &r),
		WeightKg:            numberField(m, "weightKg", &r),
		HeightCm:            numberField(m, "heightCm", &r),
	}
	var d *scoring.Demographics
	if demo != nil {
		d = &scoring.Demographics{
			Age:      numberField(demo, "age", &r),
			Gender:   stringField(demo, "gender", &r),
			WeightKg: numberField(demo, "weightKg", &r),
			HeightCm: numberField(demo, "heightCm", &r),
		}
	}
	if !r.IsValid() {
		return nil, nil, validation.CombinedError(r)
	}
	return in, d, nil
}

// DecodeApfel converts a generic input map into a typed Apfel input.
func DecodeApfel(m map[string]any) (*scoring.ApfelInput, error) {
	if m == nil {
		return nil, shapeError()
	}
	var r validation.Result
	in := &scoring.ApfelInput{
		FemaleGender:         boolField(m, "femaleGender", &r),
		Nonsmoker:            boolField(m, "nonsmoker", &r),
		HistoryOfPONV:        boolField(m, "historyOfPONV", &r),
		PostoperativeOpioids: boolField(m, "postoperativeOpioids", &r),
	}
	if !r.IsValid() {
		return nil, validation.CombinedError(r)
	}
	return in, nil
}

// DecodeMELD converts a generic input map into a typed MELD input.
func DecodeMELD(m map[string]any) (*scoring.MELDInput, error) {
	if m == nil {
		return nil, shapeError()
	}
	var r validation.Result
	in := &scoring.MELDInput{
		Bilirubin:  numberField(m, "bilirubin", &r),
		Creatinine: numberField(m, "creatinine", &r),
		INR:        numberField(m, "inr", &r),
		Dialysis:   boolField(m, "dialysis", &r),
	}
	if !r.IsValid() {
		return nil, validation.CombinedError(r)
	}
	return in, nil
}
