package cases

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotcommander/riskcalc/internal/validation"
)

func TestParse(t *testing.T) {
	t.Run("yaml case", func(t *testing.T) {
		content := []byte(`
name: post-op cardiac workup
calculator: rcri
input:
  highRiskSurgery: true
  ischemicHeartDisease: false
  congestiveHeartFailure: false
  cerebrovascularDisease: false
  insulinTherapy: false
  creatinineAbove2: false
`)
		c, err := Parse(content, "case.yaml")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if c.Calculator != CalculatorRCRI {
			t.Errorf("calculator = %q, want %q", c.Calculator, CalculatorRCRI)
		}
		if c.Input["highRiskSurgery"] != true {
			t.Errorf("input not decoded: %+v", c.Input)
		}
	})

	t.Run("json case", func(t *testing.T) {
		content := []byte(`{"calculator": "meld", "input": {"bilirubin": 2.5, "creatinine": 1.8, "inr": 1.6}}`)
		c, err := Parse(content, "case.json")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if c.Calculator != CalculatorMELD {
			t.Errorf("calculator = %q, want %q", c.Calculator, CalculatorMELD)
		}
	})

	t.Run("unknown calculator", func(t *testing.T) {
		_, err := Parse([]byte(`calculator: chads`), "case.yaml")
		if err == nil || !strings.Contains(err.Error(), "unknown calculator") {
			t.Errorf("err = %v, want unknown calculator", err)
		}
	})

	t.Run("missing calculator", func(t *testing.T) {
		_, err := Parse([]byte(`name: no calc`), "case.yaml")
		if err == nil || !strings.Contains(err.Error(), "missing calculator") {
			t.Errorf("err = %v, want missing calculator", err)
		}
	})
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yaml", "nested/c.yaml", "d.txt"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("calculator: rcri\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := Discover([]string{filepath.Join(dir, "**/*.yaml")})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(paths) != 3 {
		t.Errorf("discovered %d files, want 3: %v", len(paths), paths)
	}

	// Overlapping patterns do not duplicate matches.
	paths, err = Discover([]string{
		filepath.Join(dir, "**/*.yaml"),
		filepath.Join(dir, "*.yaml"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Errorf("deduplicated discovery = %d files, want 3: %v", len(paths), paths)
	}
}

func TestDecodeRCRI(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in, err := DecodeRCRI(map[string]any{
			"highRiskSurgery":      true,
			"ischemicHeartDisease": false,
			"procedure":            "laparotomy",
		})
		if err != nil {
			t.Fatalf("DecodeRCRI() error = %v", err)
		}
		if in.HighRiskSurgery == nil || !*in.HighRiskSurgery {
			t.Error("highRiskSurgery not decoded")
		}
		if in.Procedure != "laparotomy" {
			t.Errorf("procedure = %q", in.Procedure)
		}
		if in.InsulinTherapy != nil {
			t.Error("absent field should decode to nil")
		}
	})

	t.Run("wrong kind", func(t *testing.T) {
		_, err := DecodeRCRI(map[string]any{"highRiskSurgery": "yes"})
		inputErr, ok := err.(*validation.InputError)
		if !ok {
			t.Fatalf("error type = %T, want *validation.InputError", err)
		}
		if inputErr.Code != validation.CodeWrongKind {
			t.Errorf("code = %q, want %q", inputErr.Code, validation.CodeWrongKind)
		}
		if inputErr.Field != "highRiskSurgery" {
			t.Errorf("field = %q, want highRiskSurgery", inputErr.Field)
		}
	})

	t.Run("nil map", func(t *testing.T) {
		_, err := DecodeRCRI(nil)
		inputErr, ok := err.(*validation.InputError)
		if !ok {
			t.Fatalf("error type = %T, want *validation.InputError", err)
		}
		if inputErr.Code != validation.CodeInvalidShape {
			t.Errorf("code = %q, want %q", inputErr.Code, validation.CodeInvalidShape)
		}
	})
}

func TestDecodeSTOPBANG(t *testing.T) {
	in, demo, err := DecodeSTOPBANG(
		map[string]any{
			"snoring":             true,
			"daytimeTiredness":    false,
			"observedApnea":       false,
			"hypertension":        true,
			"neckCircumferenceCm": 42,   // whole numbers decode as int
			"bmi":                 31.5, // fractions decode as float64
		},
		map[string]any{"age": 55, "gender": "male"},
	)
	if err != nil {
		t.Fatalf("DecodeSTOPBANG() error = %v", err)
	}
	if in.NeckCircumferenceCm == nil || *in.NeckCircumferenceCm != 42 {
		t.Error("int-valued neck circumference not decoded")
	}
	if in.BMI == nil || *in.BMI != 31.5 {
		t.Error("float-valued bmi not decoded")
	}
	if demo == nil || demo.Age == nil || *demo.Age != 55 || demo.Gender == nil {
		t.Errorf("demographics not decoded: %+v", demo)
	}
}

func TestDecodeMELD(t *testing.T) {
	t.Run("aggregates kind failures", func(t *testing.T) {
		_, err := DecodeMELD(map[string]any{
			"bilirubin":  "2.5",
			"creatinine": 1.8,
			"inr":        true,
		})
		inputErr, ok := err.(*validation.InputError)
		if !ok {
			t.Fatalf("error type = %T, want *validation.InputError", err)
		}
		if len(inputErr.Issues) != 2 {
			t.Fatalf("issues = %d, want 2: %+v", len(inputErr.Issues), inputErr.Issues)
		}
	})

	t.Run("dialysis optional", func(t *testing.T) {
		in, err := DecodeMELD(map[string]any{"bilirubin": 1.0, "creatinine": 1.0, "inr": 1.0})
		if err != nil {
			t.Fatal(err)
		}
		if in.Dialysis != nil {
			t.Error("absent dialysis should decode to nil")
		}
	})
}
