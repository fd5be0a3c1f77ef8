// Package validation provides the shared input-validation vocabulary used by
// every calculator: machine-readable issue codes, the Issue/Result shapes that
// field checks return, and the InputError all calculators fail with.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package validation

import (
	"fmt"
	"math"
	"strings"
)

// Issue codes. Callers branch on these, so they are part of the public
// contract and must stay stable.
const (
	CodeInvalidShape    = "INVALID_SHAPE"    // input absent or not a record
	CodeMissingRequired = "MISSING_REQUIRED" // mandatory field absent and not derivable
	CodeWrongKind       = "WRONG_KIND"       // field present but not the expected kind
	CodeOutOfRange      = "OUT_OF_RANGE"     // numeric field outside the documented domain
)

// Issue is a single validation failure.
type Issue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Result aggregates the issues found while validating one input record.
// Helpers never panic and never return early; callers collect Results and
// decide whether to fail fast or report everything at once.
type Result struct {
	Issues []Issue `json:"issues,omitempty"`
}

// IsValid reports whether no issues were recorded.
func (r Result) IsValid() bool {
	return len(r.Issues) == 0
}

// Add records an issue.
func (r *Result) Add(code, field, message string) {
	r.Issues = append(r.Issues, Issue{Code: code, Message: message, Field: field})
}

// Merge appends all issues from other.
func (r *Result) Merge(other Result) {
	r.Issues = append(r.Issues, other.Issues...)
}

// InputError is the single error shape every calculator returns. Code and
// Field come from the first issue; Issues carries the full list for
// aggregate-style calculators.
type InputError struct {
	Code   string  `json:"code"`
	Field  string  `json:"field,omitempty"`
	Issues []Issue `json:"issues"`
	msg    string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return e.msg
}

// FirstError builds an InputError from the first issue only, for calculators
// that fail fast with a message naming a single field.
func FirstError(r Result) *InputError {
	if r.IsValid() {
		return nil
	}
	first := r.Issues[0]
	return &InputError{
		Code:   first.Code,
		Field:  first.Field,
		Issues: []Issue{first},
		msg:    first.Message,
	}
}

// CombinedError builds an InputError whose message lists every failing
// field, for calculators that aggregate all failures before reporting.
func CombinedError(r Result) *InputError {
	if r.IsValid() {
		return nil
	}
	msgs := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		msgs = append(msgs, issue.Message)
	}
	first := r.Issues[0]
	return &InputError{
		Code:   first.Code,
		Field:  first.Field,
		Issues: r.Issues,
		msg:    "invalid input: " + strings.Join(msgs, "; "),
	}
}

// RequireNumber checks a required numeric field. A nil value yields
// MISSING_REQUIRED; a value strictly outside [min, max] yields OUT_OF_RANGE.
// Values exactly at either bound are accepted.
func RequireNumber(v *float64, min, max float64, field string) Result {
	var r Result
	if v == nil {
		r.Add(CodeMissingRequired, field, fmt.Sprintf("%s is required", field))
		return r
	}
	if *v < min || *v > max {
		r.Add(CodeOutOfRange, field, fmt.Sprintf("%s must be between %g and %g, got %g", field, min, max, *v))
	}
	return r
}

// RequireBool checks a required boolean field.
func RequireBool(v *bool, field string) Result {
	var r Result
	if v == nil {
		r.Add(CodeMissingRequired, field, fmt.Sprintf("%s is required", field))
	}
	return r
}

// FirstOf returns the first non-nil source, or nil when every source is
// nil. It is the resolution step for fields that may be supplied directly or
// filled from a secondary record.
func FirstOf[T any](sources ...*T) *T {
	for _, s := range sources {
		if s != nil {
			return s
		}
	}
	return nil
}

// BMI computes body-mass index from weight in kilograms and height in
// centimeters, rounded to one decimal place.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}
