package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dotcommander/riskcalc/internal/cases"
	"github.com/dotcommander/riskcalc/internal/output"
	"github.com/dotcommander/riskcalc/internal/schema"
)

func writeCase(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCalculateRoutesByCalculator(t *testing.T) {
	tests := []struct {
		name     string
		c        *cases.Case
		wantTier string
	}{
		{
			"rcri",
			&cases.Case{
				Calculator: "rcri",
				Input: map[string]any{
					"highRiskSurgery":        true,
					"ischemicHeartDisease":   true,
					"congestiveHeartFailure": false,
					"cerebrovascularDisease": false,
					"insulinTherapy":         false,
					"creatinineAbove2":       false,
				},
			},
			"III",
		},
		{
			"meld",
			&cases.Case{
				Calculator: "meld",
				Input:      map[string]any{"bilirubin": 2.5, "creatinine": 1.8, "inr": 1.6},
			},
			"high",
		},
		{
			"stopbang with demographics",
			&cases.Case{
				Calculator: "stopbang",
				Input: map[string]any{
					"snoring":             true,
					"daytimeTiredness":    true,
					"observedApnea":       true,
					"hypertension":        false,
					"neckCircumferenceCm": 38,
					"bmi":                 28,
				},
				Demographics: map[string]any{"age": 45, "gender": "female"},
			},
			"intermediate",
		},
		{
			"apfel",
			&cases.Case{
				Calculator: "apfel",
				Input: map[string]any{
					"femaleGender":         true,
					"nonsmoker":            true,
					"historyOfPONV":        true,
					"postoperativeOpioids": true,
				},
			},
			"very-high",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calculate(tt.c)
			if err != nil {
				t.Fatalf("calculate() error = %v", err)
			}
			if got.Tier != tt.wantTier {
				t.Errorf("tier = %q, want %q", got.Tier, tt.wantTier)
			}
		})
	}
}

func TestEvaluateCase(t *testing.T) {
	validator, err := schema.NewValidator()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	t.Run("good case succeeds", func(t *testing.T) {
		path := writeCase(t, dir, "good.yaml", `
name: liver panel
calculator: meld
input:
  bilirubin: 2.5
  creatinine: 1.8
  inr: 1.6
`)
		report := output.NewReport()
		evaluateCase(report, validator, path)
		if report.Succeeded != 1 {
			t.Fatalf("report = %+v", report)
		}
		if report.Results[0].Name != "liver panel" || report.Results[0].Path != path {
			t.Errorf("case metadata not carried: %+v", report.Results[0])
		}
	})

	t.Run("schema rejects wrong kind before decode", func(t *testing.T) {
		path := writeCase(t, dir, "badkind.yaml", `
calculator: meld
input:
  bilirubin: high
`)
		report := output.NewReport()
		evaluateCase(report, validator, path)
		if report.Failed != 1 {
			t.Fatalf("report = %+v", report)
		}
	})

	t.Run("missing field reaches calculator validation", func(t *testing.T) {
		path := writeCase(t, dir, "missing.yaml", `
calculator: apfel
input:
  femaleGender: true
`)
		report := output.NewReport()
		evaluateCase(report, validator, path)
		if report.Failed != 1 {
			t.Fatalf("report = %+v", report)
		}
		if len(report.Results[0].Issues) == 0 {
			t.Error("validation issues should be carried into the report")
		}
	})

	t.Run("unparseable file fails", func(t *testing.T) {
		path := writeCase(t, dir, "broken.yaml", "calculator: [")
		report := output.NewReport()
		evaluateCase(report, validator, path)
		if report.Failed != 1 {
			t.Fatalf("report = %+v", report)
		}
	})
}
