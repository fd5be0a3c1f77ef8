package output

import (
	"fmt"
	"os"
	"strings"
)

// MarkdownFormatter renders a report as a markdown document.
type MarkdownFormatter struct {
	outputFile string // empty means stdout
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{outputFile: outputFile}
}

// Format writes the report as markdown.
func (f *MarkdownFormatter) Format(report *Report) error {
	var b strings.Builder
	b.WriteString("# Risk Calculation Report\n\n")
	fmt.Fprintf(&b, "%d cases: %d succeeded, %d failed\n\n",
		report.Total, report.Succeeded, report.Failed)

	for _, res := range report.Results {
		header := res.Calculator
		if res.Name != "" {
			header = fmt.Sprintf("%s (%s)", res.Name, res.Calculator)
		}
		fmt.Fprintf(&b, "## %s\n\n", header)

		if !res.Success {
			fmt.Fprintf(&b, "**Failed:** %s\n\n", res.Error)
			for _, issue := range res.Issues {
				fmt.Fprintf(&b, "- `%s` %s\n", issue.Code, issue.Message)
			}
			b.WriteString("\n")
			continue
		}

		fmt.Fprintf(&b, "| Score | Tier |")
		if res.Percentage != "" {
			fmt.Fprintf(&b, " Risk |")
		}
		b.WriteString("\n|---|---|")
		if res.Percentage != "" {
			b.WriteString("---|")
		}
		fmt.Fprintf(&b, "\n| %d | %s |", res.Score, res.Tier)
		if res.Percentage != "" {
			fmt.Fprintf(&b, " %s |", res.Percentage)
		}
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "%s\n\n", res.Interpretation)
		for _, rec := range res.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	data := []byte(b.String())
	if f.outputFile != "" {
		return os.WriteFile(f.outputFile, data, 0o644)
	}
	_, err := os.Stdout.Write(data)
	return err
}
