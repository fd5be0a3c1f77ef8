package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONFormatter renders a report as a JSON document.
type JSONFormatter struct {
	outputFile string // empty means stdout
}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter(outputFile string) *JSONFormatter {
	return &JSONFormatter{outputFile: outputFile}
}

// JSONReport is the top-level JSON document.
type JSONReport struct {
	Tool      string       `json:"tool"`
	Timestamp string       `json:"timestamp"`
	Total     int          `json:"total"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Results   []CaseResult `json:"results"`
}

// Format writes the report as indented JSON.
func (f *JSONFormatter) Format(report *Report) error {
	doc := JSONReport{
		Tool:      "riskcalc",
		Timestamp: time.Now().Format(time.RFC3339),
		Total:     report.Total,
		Succeeded: report.Succeeded,
		Failed:    report.Failed,
		Results:   report.Results,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	data = append(data, '\n')

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, data, 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}
