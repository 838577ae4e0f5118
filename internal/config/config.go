package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Output format names accepted in the config file and on the command line.
const (
	OutputDefault = "default"
	OutputJSONL   = "jsonl"
)

// Config represents the top-level corridor.yml configuration.
type Config struct {
	Version string       `yaml:"version"`
	Solver  SolverConfig `yaml:"solver,omitempty"`
	Output  string       `yaml:"output,omitempty"` // default or jsonl
}

// SolverConfig specifies solver behavior.
type SolverConfig struct {
	Deadline string `yaml:"deadline,omitempty"` // Go duration; empty = no deadline
	Progress bool   `yaml:"progress,omitempty"` // print each improved solution as it is found
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output:  OutputDefault,
	}
}

// Validate performs strict validation on the configuration and applies
// defaults for omitted fields.
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Output == "" {
		c.Output = OutputDefault
	}
	if c.Output != OutputDefault && c.Output != OutputJSONL {
		return fmt.Errorf("invalid output format: %s (must be '%s' or '%s')", c.Output, OutputDefault, OutputJSONL)
	}

	if c.Solver.Deadline != "" {
		d, err := time.ParseDuration(c.Solver.Deadline)
		if err != nil {
			return fmt.Errorf("invalid solver.deadline: %s (use a Go duration like '30s' or '1m30s')", c.Solver.Deadline)
		}
		if d <= 0 {
			return fmt.Errorf("solver.deadline must be positive, got %s", c.Solver.Deadline)
		}
	}

	return nil
}

// DeadlineDuration returns the parsed solver deadline, or zero when none is
// configured. Call Validate first.
func (c *Config) DeadlineDuration() time.Duration {
	if c.Solver.Deadline == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Solver.Deadline)
	return d
}

// Load reads and validates corridor.yml from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
