// Package schema validates decoded case data against embedded CUE schemas
// before it reaches the calculators. The schemas check field kinds, numeric
// domains, and reject unknown fields; presence and derivation rules remain
// the calculators' responsibility.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/dotcommander/riskcalc/internal/validation"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// definitionNames maps a calculator name to its CUE definition path.
var definitionNames = map[string]string{
	"rcri":     "#RCRI",
	"stopbang": "#STOPBANG",
	"apfel":    "#Apfel",
	"meld":     "#MELD",
}

// Validator holds the compiled CUE schemas.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator compiles every embedded schema. Each .cue file holds the
// definition for the calculator it is named after.
func NewValidator() (*Validator, error) {
	v := &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schemas: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}
		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return nil, fmt.Errorf("compiling schema %s: %w", entry.Name(), instErr)
		}
		name := entry.Name()[:len(entry.Name())-len(".cue")]
		v.schemas[name] = inst.Value()
	}
	if len(v.schemas) == 0 {
		return nil, fmt.Errorf("no CUE schemas embedded")
	}
	return v, nil
}

// Validate checks decoded case data against the calculator's schema and
// returns the issues found. An unknown calculator name is a caller bug and
// returns an error rather than issues.
func (v *Validator) Validate(calculator string, data map[string]any) ([]validation.Issue, error) {
	schema, ok := v.schemas[calculator]
	if !ok {
		return nil, fmt.Errorf("no schema for calculator %q", calculator)
	}
	defName, ok := definitionNames[calculator]
	if !ok {
		return nil, fmt.Errorf("no definition name for calculator %q", calculator)
	}

	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("encoding case data: %w", encErr)
	}

	def := schema.LookupPath(cue.ParsePath(defName))
	if !def.Exists() {
		return nil, fmt.Errorf("schema for %q has no %s definition", calculator, defName)
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return issuesFromCUE(err), nil
	}
	if err := unified.Validate(); err != nil {
		return issuesFromCUE(err), nil
	}
	return nil, nil
}

// issuesFromCUE converts a CUE unification error into validation issues.
func issuesFromCUE(err error) []validation.Issue {
	return []validation.Issue{{
		Code:    validation.CodeWrongKind,
		Message: fmt.Sprintf("schema validation failed: %v", err),
	}}
}
