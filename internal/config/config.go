package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"EuriborChart/internal/model"
)

// DefaultOutputPath is the report filename when the config does not override it.
const DefaultOutputPath = "euribor_cost_chart.html"

// Config holds all application configuration.
type Config struct {
	Data struct {
		Dir   string   `yaml:"dir"`
		Files []string `yaml:"files"` // one per tenor, shortest term first
	} `yaml:"data"`
	Output struct {
		HTMLPath string `yaml:"html_path"`
	} `yaml:"output"`
	Average struct {
		DefaultWindowDays int `yaml:"default_window_days"`
	} `yaml:"average"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"` // empty disables the run recorder
	} `yaml:"database"`
}

// Load reads config from a YAML file and applies defaults. A missing file is
// not an error: the defaults describe a complete run.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Defaults
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "."
	}
	if len(cfg.Data.Files) == 0 {
		names := DefaultFileNames()
		cfg.Data.Files = names[:]
	}
	if cfg.Output.HTMLPath == "" {
		cfg.Output.HTMLPath = DefaultOutputPath
	}
	if cfg.Average.DefaultWindowDays == 0 {
		cfg.Average.DefaultWindowDays = 360
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if len(c.Data.Files) != model.NumTenors {
		return fmt.Errorf("data.files must list exactly %d files in tenor order, got %d",
			model.NumTenors, len(c.Data.Files))
	}
	if c.Average.DefaultWindowDays <= 0 {
		return fmt.Errorf("average.default_window_days must be positive")
	}
	return nil
}

// FileNames returns the input filenames indexed by tenor.
func (c *Config) FileNames() [model.NumTenors]string {
	var names [model.NumTenors]string
	copy(names[:], c.Data.Files)
	return names
}

// DefaultFileNames returns the Bundesbank export filenames for each tenor.
func DefaultFileNames() [model.NumTenors]string {
	var names [model.NumTenors]string
	for _, t := range model.AllTenors {
		names[t] = fmt.Sprintf("BBIG1.D.D0.EUR.MMKT.EURIBOR.%s.BID._Z.csv", t.Spec().Code)
	}
	return names
}
