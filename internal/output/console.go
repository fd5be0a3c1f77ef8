package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConsoleFormatter renders a report for terminal display.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose, colorize bool) *ConsoleFormatter {
	return &ConsoleFormatter{quiet: quiet, verbose: verbose, colorize: colorize}
}

// tierColors maps risk tiers to terminal colors shared across calculators.
var tierColors = map[string]lipgloss.Color{
	"I":            lipgloss.Color("10"), // green
	"low":          lipgloss.Color("10"),
	"II":           lipgloss.Color("11"), // yellow
	"moderate":     lipgloss.Color("11"),
	"intermediate": lipgloss.Color("11"),
	"III":          lipgloss.Color("208"), // orange
	"high":         lipgloss.Color("208"),
	"IV":           lipgloss.Color("9"), // red
	"very-high":    lipgloss.Color("9"),
}

// Format renders the report to stdout.
func (f *ConsoleFormatter) Format(report *Report) error {
	if f.quiet {
		return nil
	}

	for _, res := range report.Results {
		f.printResult(res)
	}

	if report.Total > 1 {
		summary := fmt.Sprintf("%d cases: %d succeeded, %d failed",
			report.Total, report.Succeeded, report.Failed)
		fmt.Println(f.style(lipgloss.Color("7")).Render(summary))
	}
	return nil
}

func (f *ConsoleFormatter) printResult(res CaseResult) {
	header := res.Calculator
	if res.Name != "" {
		header = fmt.Sprintf("%s (%s)", res.Name, res.Calculator)
	}

	if !res.Success {
		fmt.Printf("%s %s\n", f.style(lipgloss.Color("9")).Render("✗"), header)
		fmt.Printf("  %s\n", res.Error)
		if f.verbose {
			for _, issue := range res.Issues {
				fmt.Printf("    [%s] %s\n", issue.Code, issue.Message)
			}
		}
		return
	}

	tierStyle := f.style(tierColors[res.Tier])
	fmt.Printf("%s %s\n", f.style(lipgloss.Color("10")).Render("✓"), header)
	line := fmt.Sprintf("  score %d · %s", res.Score, tierStyle.Render(res.Tier))
	if res.Percentage != "" {
		line += fmt.Sprintf(" · %s", res.Percentage)
	}
	fmt.Println(line)
	fmt.Printf("  %s\n", res.Interpretation)
	for _, rec := range res.Recommendations {
		fmt.Printf("  • %s\n", rec)
	}
}

func (f *ConsoleFormatter) style(color lipgloss.Color) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(color)
}
