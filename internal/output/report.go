// Package output renders calculator results as console, JSON, or markdown
// reports.
package output

import (
	"strconv"
	"time"

	"github.com/dotcommander/riskcalc/internal/scoring"
	"github.com/dotcommander/riskcalc/internal/validation"
)

// CaseResult is one rendered calculation, successful or failed.
type CaseResult struct {
	Name            string             `json:"name,omitempty"`
	Calculator      string             `json:"calculator"`
	Path            string             `json:"path,omitempty"`
	Success         bool               `json:"success"`
	Score           int                `json:"score,omitempty"`
	Tier            string             `json:"tier,omitempty"`
	Percentage      string             `json:"percentage,omitempty"`
	Interpretation  string             `json:"interpretation,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
	Error           string             `json:"error,omitempty"`
	Issues          []validation.Issue `json:"issues,omitempty"`
}

// Report aggregates the results of a run.
type Report struct {
	Results   []CaseResult `json:"results"`
	Total     int          `json:"total"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	StartTime time.Time    `json:"-"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{StartTime: time.Now()}
}

// Add appends a result and updates the counters.
func (r *Report) Add(cr CaseResult) {
	r.Results = append(r.Results, cr)
	r.Total++
	if cr.Success {
		r.Succeeded++
	} else {
		r.Failed++
	}
}

// AddError appends a failed result built from a calculation error.
func (r *Report) AddError(calculator, name, path string, err error) {
	cr := CaseResult{
		Name:       name,
		Calculator: calculator,
		Path:       path,
		Error:      err.Error(),
	}
	if inputErr, ok := err.(*validation.InputError); ok {
		cr.Issues = inputErr.Issues
	}
	r.Add(cr)
}

// FromRCRI converts a cardiac index result.
func FromRCRI(res *scoring.RCRIResult) CaseResult {
	return CaseResult{
		Calculator:      "rcri",
		Success:         true,
		Score:           res.Score,
		Tier:            res.Class,
		Percentage:      res.RateLabel,
		Interpretation:  res.Interpretation,
		Recommendations: res.Recommendations,
	}
}

// FromSTOPBANG converts a sleep-apnea screen result. STOP-BANG publishes no
// percentage, so Percentage stays empty.
func FromSTOPBANG(res *scoring.STOPBANGResult) CaseResult {
	return CaseResult{
		Calculator:      "stopbang",
		Success:         true,
		Score:           res.Score,
		Tier:            res.Risk,
		Interpretation:  res.Interpretation,
		Recommendations: res.Recommendations,
	}
}

// FromApfel converts a nausea predictor result.
func FromApfel(res *scoring.ApfelResult) CaseResult {
	return CaseResult{
		Calculator:      "apfel",
		Success:         true,
		Score:           res.Score,
		Tier:            res.Risk,
		Percentage:      formatPercent(res.RiskPercentage),
		Interpretation:  res.Interpretation,
		Recommendations: res.Recommendations,
	}
}

func formatPercent(p int) string {
	return strconv.Itoa(p) + "%"
}

// FromMELD converts a liver-severity result.
func FromMELD(res *scoring.MELDResult) CaseResult {
	return CaseResult{
		Calculator:      "meld",
		Success:         true,
		Score:           res.Score,
		Tier:            res.Risk,
		Percentage:      res.MortalityLabel,
		Interpretation:  res.Interpretation,
		Recommendations: res.Recommendations,
	}
}
