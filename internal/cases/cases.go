// Package cases loads calculator case files for the CLI. A case file is a
// YAML or JSON document naming a calculator, its input record, and an
// optional demographics record. Discovery uses doublestar globs; decoding
// reports WRONG_KIND for mistyped fields so calculator validation can stay
// focused on presence and range.
package cases

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Calculator names accepted in case files.
const (
	CalculatorRCRI     = "rcri"
	CalculatorSTOPBANG = "stopbang"
	CalculatorApfel    = "apfel"
	CalculatorMELD     = "meld"
)

// Case is one decoded case file.
type Case struct {
	Path         string         `yaml:"-"`
	Name         string         `yaml:"name"`
	Calculator   string         `yaml:"calculator"`
	Input        map[string]any `yaml:"input"`
	Demographics map[string]any `yaml:"demographics"`
}

// Discover expands the given doublestar patterns and returns the matching
// file paths, deduplicated and sorted.
func Discover(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Load reads and decodes one case file. YAML is a superset of JSON, so both
// formats go through the same decoder.
func Load(path string) (*Case, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file: %w", err)
	}
	return Parse(content, path)
}

// Parse decodes case file content.
func Parse(content []byte, path string) (*Case, error) {
	var c Case
	if err := yaml.Unmarshal(content, &c); err != nil {
		return nil, fmt.Errorf("parsing case file %s: %w", path, err)
	}
	c.Path = path
	switch c.Calculator {
	case CalculatorRCRI, CalculatorSTOPBANG, CalculatorApfel, CalculatorMELD:
	case "":
		return nil, fmt.Errorf("case file %s: missing calculator", path)
	default:
		return nil, fmt.Errorf("case file %s: unknown calculator %q", path, c.Calculator)
	}
	return &c, nil
}
