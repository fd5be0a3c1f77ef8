package output

import (
	"fmt"

	"github.com/dotcommander/riskcalc/internal/config"
)

// Formatter renders a report in one output format.
type Formatter interface {
	Format(report *Report) error
}

// NewFormatter selects the formatter for the configured format.
func NewFormatter(cfg *config.Config) (Formatter, error) {
	switch cfg.Format {
	case "console":
		return NewConsoleFormatter(cfg.Quiet, cfg.Verbose, cfg.Color), nil
	case "json":
		return NewJSONFormatter(cfg.Output), nil
	case "markdown":
		return NewMarkdownFormatter(cfg.Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}
