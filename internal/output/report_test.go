package output

import (
	"testing"

	"github.com/dotcommander/riskcalc/internal/scoring"
	"github.com/dotcommander/riskcalc/internal/validation"
)

func TestReportCounters(t *testing.T) {
	r := NewReport()
	r.Add(CaseResult{Calculator: "rcri", Success: true})
	r.Add(CaseResult{Calculator: "meld", Success: true})

	var issues validation.Result
	issues.Add(validation.CodeMissingRequired, "age", "age is required")
	r.AddError("stopbang", "", "case.yaml", validation.CombinedError(issues))

	if r.Total != 3 || r.Succeeded != 2 || r.Failed != 1 {
		t.Errorf("counters = %d/%d/%d, want 3/2/1", r.Total, r.Succeeded, r.Failed)
	}
	last := r.Results[2]
	if last.Success {
		t.Error("error result should not be marked successful")
	}
	if len(last.Issues) != 1 || last.Issues[0].Field != "age" {
		t.Errorf("issues not carried over: %+v", last.Issues)
	}
}

func TestFromConverters(t *testing.T) {
	rcri := FromRCRI(&scoring.RCRIResult{Score: 2, Class: "III", RateLabel: "6.6%"})
	if rcri.Calculator != "rcri" || rcri.Tier != "III" || rcri.Percentage != "6.6%" || !rcri.Success {
		t.Errorf("FromRCRI = %+v", rcri)
	}

	sb := FromSTOPBANG(&scoring.STOPBANGResult{Score: 5, Risk: "high"})
	if sb.Percentage != "" {
		t.Error("STOP-BANG carries no percentage")
	}

	apfel := FromApfel(&scoring.ApfelResult{Score: 4, Risk: "very-high", RiskPercentage: 79})
	if apfel.Percentage != "79%" {
		t.Errorf("apfel percentage = %q, want 79%%", apfel.Percentage)
	}

	meld := FromMELD(&scoring.MELDResult{Score: 21, Risk: "high", MortalityLabel: "19.6%"})
	if meld.Tier != "high" || meld.Percentage != "19.6%" {
		t.Errorf("FromMELD = %+v", meld)
	}
}
