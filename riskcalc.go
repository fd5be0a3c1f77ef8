// Package riskcalc exposes four independent clinical risk calculators: the
// Revised Cardiac Risk Index, the STOP-BANG sleep-apnea screen, the Apfel
// postoperative nausea predictor, and the MELD liver-severity score.
//
// Every calculator is a pure function: it validates its input, resolves any
// derivable fields, and returns either a complete result record or an
// *InputError describing exactly what was wrong. Nothing is cached or shared
// between calls, so all functions are safe for concurrent use.
package riskcalc

import (
	"github.com/dotcommander/riskcalc/internal/scoring"
	"github.com/dotcommander/riskcalc/internal/validation"
)

// Validation issue codes carried on InputError.
const (
	CodeInvalidShape    = validation.CodeInvalidShape
	CodeMissingRequired = validation.CodeMissingRequired
	CodeWrongKind       = validation.CodeWrongKind
	CodeOutOfRange      = validation.CodeOutOfRange
)

// Error and validation shapes.
type (
	Issue      = validation.Issue
	InputError = validation.InputError
)

// Calculator inputs and results.
type (
	RCRIInput       = scoring.RCRIInput
	RCRIFactors     = scoring.RCRIFactors
	RCRIResult      = scoring.RCRIResult
	Demographics    = scoring.Demographics
	STOPBANGInput   = scoring.STOPBANGInput
	STOPBANGFactors = scoring.STOPBANGFactors
	STOPBANGResult  = scoring.STOPBANGResult
	ApfelInput      = scoring.ApfelInput
	ApfelFactors    = scoring.ApfelFactors
	ApfelResult     = scoring.ApfelResult
	MELDInput       = scoring.MELDInput
	MELDFactors     = scoring.MELDFactors
	MELDResult      = scoring.MELDResult
)

// CalculateRCRI computes the Revised Cardiac Risk Index.
func CalculateRCRI(in *RCRIInput) (*RCRIResult, error) {
	return scoring.CalculateRCRI(in)
}

// CalculateSTOPBANG computes the STOP-BANG sleep-apnea screen. The
// demographics record is optional and fills any unset derivable field.
func CalculateSTOPBANG(in *STOPBANGInput, demo *Demographics) (*STOPBANGResult, error) {
	return scoring.CalculateSTOPBANG(in, demo)
}

// CalculateApfel computes the Apfel postoperative nausea and vomiting score.
func CalculateApfel(in *ApfelInput) (*ApfelResult, error) {
	return scoring.CalculateApfel(in)
}

// CalculateMELD computes the MELD liver-severity score.
func CalculateMELD(in *MELDInput) (*MELDResult, error) {
	return scoring.CalculateMELD(in)
}

// IsHighRiskSurgery reports whether a free-text procedure description
// matches the high-risk surgery keyword list.
func IsHighRiskSurgery(description string) bool {
	return scoring.IsHighRiskSurgery(description)
}

// BMI computes body-mass index from weight (kg) and height (cm), rounded to
// one decimal place.
func BMI(weightKg, heightCm float64) float64 {
	return validation.BMI(weightKg, heightCm)
}
