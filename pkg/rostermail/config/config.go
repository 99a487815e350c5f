// Package config loads session configuration from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "30s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Mail configures the dispatch endpoint.
type Mail struct {
	// Endpoint is the mail-send API URL.
	Endpoint string `yaml:"endpoint"`
	// Timeout bounds each individual send call.
	Timeout Duration `yaml:"timeout"`
}

// Config holds the session settings. Zero values fall back to Default.
type Config struct {
	// Sheet is the schedule sheet name, matched exactly including case.
	Sheet string `yaml:"sheet"`
	// Locator selects the header-location strategy: "dynamic" or "fixed".
	Locator string `yaml:"locator"`
	Mail    Mail   `yaml:"mail"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Sheet:   "Schedule",
		Locator: "dynamic",
		Mail:    Mail{Timeout: Duration(30 * time.Second)},
	}
}

// Load reads a YAML file over the defaults. Fields absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Sheet == "" {
		cfg.Sheet = "Schedule"
	}
	if cfg.Mail.Timeout <= 0 {
		cfg.Mail.Timeout = Duration(30 * time.Second)
	}
	return cfg, nil
}
