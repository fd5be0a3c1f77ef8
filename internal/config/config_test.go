package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Format != "console" {
		t.Errorf("format = %q, want console", cfg.Format)
	}
	if cfg.Quiet || cfg.Verbose {
		t.Error("quiet and verbose should default to false")
	}
	if !cfg.Color {
		t.Error("color should default to true")
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("format", "xml")
	if _, err := Load(); err == nil {
		t.Error("invalid format should be rejected")
	}
}

func TestLoadHonorsOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("format", "json")
	viper.Set("quiet", true)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Format != "json" || !cfg.Quiet {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}
