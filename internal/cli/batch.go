package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/riskcalc/internal/cases"
	"github.com/dotcommander/riskcalc/internal/output"
	"github.com/dotcommander/riskcalc/internal/schema"
	"github.com/dotcommander/riskcalc/internal/scoring"
	"github.com/dotcommander/riskcalc/internal/validation"
)

var batchCmd = &cobra.Command{
	Use:   "batch <glob>...",
	Short: "Evaluate case files",
	Long: `Evaluates every case file matched by the given glob patterns.

A case file is a YAML or JSON document:

    name: post-op cardiac workup
    calculator: rcri
    input:
      procedure: open aortic aneurysm repair
      ischemicHeartDisease: true
      ...
    demographics:        # optional, stopbang only
      age: 61
      gender: male

Patterns support doublestar globs, e.g. 'cases/**/*.yaml'. Each case is
checked against the calculator's schema, decoded, and scored; the report
lists successes and failures side by side.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(args)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(patterns []string) error {
	paths, err := cases.Discover(patterns)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no case files matched %v", patterns)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return err
	}

	report := output.NewReport()
	for _, path := range paths {
		evaluateCase(report, validator, path)
	}

	if err := renderReport(report); err != nil {
		return err
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d cases failed", report.Failed, report.Total)
	}
	return nil
}

func evaluateCase(report *output.Report, validator *schema.Validator, path string) {
	c, err := cases.Load(path)
	if err != nil {
		report.AddError("", "", path, err)
		return
	}

	if c.Input == nil {
		var r validation.Result
		r.Add(validation.CodeInvalidShape, "", "input must be a record")
		report.AddError(c.Calculator, c.Name, path, validation.CombinedError(r))
		return
	}

	issues, err := validator.Validate(c.Calculator, c.Input)
	if err != nil {
		report.AddError(c.Calculator, c.Name, path, err)
		return
	}
	if len(issues) > 0 {
		r := validation.Result{Issues: issues}
		report.AddError(c.Calculator, c.Name, path, validation.CombinedError(r))
		return
	}

	result, err := calculate(c)
	if err != nil {
		report.AddError(c.Calculator, c.Name, path, err)
		return
	}
	result.Name = c.Name
	result.Path = path
	report.Add(*result)
}

// calculate routes a decoded case to its calculator.
func calculate(c *cases.Case) (*output.CaseResult, error) {
	switch c.Calculator {
	case cases.CalculatorRCRI:
		in, err := cases.DecodeRCRI(c.Input)
		if err != nil {
			return nil, err
		}
		res, err := scoring.CalculateRCRI(in)
		if err != nil {
			return nil, err
		}
		cr := output.FromRCRI(res)
		return &cr, nil
	case cases.CalculatorSTOPBANG:
		in, demo, err := cases.DecodeSTOPBANG(c.Input, c.Demographics)
		if err != nil {
			return nil, err
		}
		res, err := scoring.CalculateSTOPBANG(in, demo)
		if err != nil {
			return nil, err
		}
		cr := output.FromSTOPBANG(res)
		return &cr, nil
	case cases.CalculatorApfel:
		in, err := cases.DecodeApfel(c.Input)
		if err != nil {
			return nil, err
		}
		res, err := scoring.CalculateApfel(in)
		if err != nil {
			return nil, err
		}
		cr := output.FromApfel(res)
		return &cr, nil
	case cases.CalculatorMELD:
		in, err := cases.DecodeMELD(c.Input)
		if err != nil {
			return nil, err
		}
		res, err := scoring.CalculateMELD(in)
		if err != nil {
			return nil, err
		}
		cr := output.FromMELD(res)
		return &cr, nil
	default:
		return nil, fmt.Errorf("unknown calculator %q", c.Calculator)
	}
}
