// Package config loads and validates simulation scenario files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/stochastic/gbm"
	"gopkg.in/yaml.v3"
)

// Config represents a complete simulation scenario.
type Config struct {
	Model   ModelConfig   `json:"model" yaml:"model"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Chart   ChartConfig   `json:"chart" yaml:"chart"`
}

// ModelConfig carries the GBM parameters.
type ModelConfig struct {
	S0      float64 `json:"s0" yaml:"s0"`
	Mu      float64 `json:"mu" yaml:"mu"`
	Sigma   float64 `json:"sigma" yaml:"sigma"`
	Horizon float64 `json:"horizon" yaml:"horizon"`
	Steps   int     `json:"steps" yaml:"steps"`
	Seed    *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// Params converts the model section into simulator parameters.
func (m ModelConfig) Params() gbm.Params {
	return gbm.Params{
		S0:    m.S0,
		Mu:    m.Mu,
		Sigma: m.Sigma,
		T:     m.Horizon,
		Steps: m.Steps,
		Seed:  m.Seed,
	}
}

// JournalConfig selects where runs are recorded.
type JournalConfig struct {
	Type        string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	RunsFile    string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	SamplesFile string `json:"samples_file,omitempty" yaml:"samples_file,omitempty"`
	DBPath      string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// ChartConfig controls the optional rendered chart.
type ChartConfig struct {
	Path   string `json:"path,omitempty" yaml:"path,omitempty"` // empty disables rendering
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	XLabel string `json:"x_label,omitempty" yaml:"x_label,omitempty"`
	YLabel string `json:"y_label,omitempty" yaml:"y_label,omitempty"`
}

// LoadFromFile loads a scenario from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves the scenario to a file (format by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the scenario is valid. Model constraints are the
// simulator's own, so a config that passes here cannot fail in Simulate.
func (c *Config) Validate() error {
	if err := c.Model.Params().Validate(); err != nil {
		return fmt.Errorf("model: %w", err)
	}

	switch c.Journal.Type {
	case "csv":
		if c.Journal.RunsFile == "" || c.Journal.SamplesFile == "" {
			return fmt.Errorf("journal runs_file and samples_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	case "none", "":
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}

	return nil
}

// Default returns a scenario with sensible defaults.
func Default() *Config {
	seed := uint64(42)
	return &Config{
		Model: ModelConfig{
			S0:      100,
			Mu:      0.05,
			Sigma:   0.2,
			Horizon: 1,
			Steps:   252,
			Seed:    &seed,
		},
		Journal: JournalConfig{
			Type:        "csv",
			RunsFile:    "./runs.csv",
			SamplesFile: "./samples.csv",
		},
		Chart: ChartConfig{
			Title: "GBM sample path",
		},
	}
}
