package validation

import (
	"testing"
)

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

func TestRequireNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		min, max float64
		wantCode string // "" means valid
	}{
		{"nil value", nil, 0, 100, CodeMissingRequired},
		{"below min", fptr(-1), 0, 100, CodeOutOfRange},
		{"above max", fptr(101), 0, 100, CodeOutOfRange},
		{"exactly min", fptr(0), 0, 100, ""},
		{"exactly max", fptr(100), 0, 100, ""},
		{"mid range", fptr(50), 0, 100, ""},
		{"just below min", fptr(0.99), 1, 120, CodeOutOfRange},
		{"just above max", fptr(120.01), 1, 120, CodeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RequireNumber(tt.value, tt.min, tt.max, "age")
			if tt.wantCode == "" {
				if !r.IsValid() {
					t.Fatalf("RequireNumber() = %+v, want valid", r.Issues)
				}
				return
			}
			if r.IsValid() {
				t.Fatal("RequireNumber() valid, want issue")
			}
			if r.Issues[0].Code != tt.wantCode {
				t.Errorf("code = %q, want %q", r.Issues[0].Code, tt.wantCode)
			}
			if r.Issues[0].Field != "age" {
				t.Errorf("field = %q, want %q", r.Issues[0].Field, "age")
			}
		})
	}
}

func TestRequireBool(t *testing.T) {
	if r := RequireBool(nil, "snoring"); r.IsValid() {
		t.Error("nil bool should be invalid")
	} else if r.Issues[0].Code != CodeMissingRequired {
		t.Errorf("code = %q, want %q", r.Issues[0].Code, CodeMissingRequired)
	}
	if r := RequireBool(bptr(false), "snoring"); !r.IsValid() {
		t.Errorf("explicit false should be valid, got %+v", r.Issues)
	}
}

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{"average adult", 70, 175, 22.9},
		{"obese threshold case", 110, 170, 38.1},
		{"rounds to one decimal", 80, 180, 24.7},
		{"short stature", 50, 150, 22.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BMI(tt.weightKg, tt.heightCm)
			if got != tt.want {
				t.Errorf("BMI(%g, %g) = %g, want %g", tt.weightKg, tt.heightCm, got, tt.want)
			}
		})
	}
}

func TestFirstError(t *testing.T) {
	var r Result
	r.Add(CodeMissingRequired, "age", "age is required")
	r.Add(CodeOutOfRange, "bmi", "bmi out of range")

	err := FirstError(r)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Code != CodeMissingRequired {
		t.Errorf("code = %q, want %q", err.Code, CodeMissingRequired)
	}
	if err.Field != "age" {
		t.Errorf("field = %q, want %q", err.Field, "age")
	}
	if len(err.Issues) != 1 {
		t.Errorf("fail-fast error should carry one issue, got %d", len(err.Issues))
	}
	if err.Error() != "age is required" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestCombinedError(t *testing.T) {
	var r Result
	r.Add(CodeMissingRequired, "bilirubin", "bilirubin is required")
	r.Add(CodeOutOfRange, "inr", "inr must be between 0.5 and 20, got 55")

	err := CombinedError(r)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(err.Issues) != 2 {
		t.Fatalf("issues = %d, want 2", len(err.Issues))
	}
	want := "invalid input: bilirubin is required; inr must be between 0.5 and 20, got 55"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestFirstOf(t *testing.T) {
	direct := fptr(40)
	fallback := fptr(90)

	if got := FirstOf(direct, fallback); got != direct {
		t.Error("direct value should win")
	}
	if got := FirstOf(nil, fallback); got != fallback {
		t.Error("fallback should fill a nil primary")
	}
	if got := FirstOf[float64](nil, nil); got != nil {
		t.Error("all-nil sources should resolve to nil")
	}
}

func TestErrorsNilWhenValid(t *testing.T) {
	var r Result
	if FirstError(r) != nil {
		t.Error("FirstError on valid result should be nil")
	}
	if CombinedError(r) != nil {
		t.Error("CombinedError on valid result should be nil")
	}
}
