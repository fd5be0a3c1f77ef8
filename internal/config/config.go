// Package config loads CLI configuration from defaults, an optional rc file,
// and flag bindings, in that precedence order (lowest to highest).
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the CLI settings.
type Config struct {
	Format  string `mapstructure:"format"` // console, json, markdown
	Output  string `mapstructure:"output"` // output file; empty means stdout
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`
	Color   bool   `mapstructure:"color"`
}

// rc file locations probed in order; first existing file wins.
var configPaths = []string{".riskcalcrc.json", ".riskcalcrc.yaml", ".riskcalcrc.yml"}

// Load builds the configuration. Flags bound through viper by the commands
// override anything read from the rc file.
func Load() (*Config, error) {
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("color", true)

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file %s: %w", path, err)
			}
			break
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case "console", "json", "markdown":
		return nil
	default:
		return fmt.Errorf("invalid format %q (expected console, json, or markdown)", c.Format)
	}
}
