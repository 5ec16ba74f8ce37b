package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete drawodds configuration
type Config struct {
	Sampling SamplingSettings `hcl:"sampling,block"`
	Output   OutputSettings   `hcl:"output,block"`
}

// SamplingSettings controls the Monte Carlo estimator
type SamplingSettings struct {
	Samples int   `hcl:"samples,optional"`
	Workers int   `hcl:"workers,optional"`
	Seed    int64 `hcl:"seed,optional"`
	Seeded  bool  `hcl:"seeded,optional"`
}

// OutputSettings controls result rendering
type OutputSettings struct {
	Table bool   `hcl:"table,optional"`
	Color bool   `hcl:"color,optional"`
	Log   string `hcl:"log_level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Sampling: SamplingSettings{
			Samples: 750000,
			Workers: 0, // 0 means one per CPU
		},
		Output: OutputSettings{
			Table: false,
			Color: true,
			Log:   "warn",
		},
	}
}

// Load loads configuration from an HCL file. A missing file is not an
// error: it yields the defaults, so the config file stays optional.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()

	if cfg.Sampling.Samples == 0 {
		cfg.Sampling.Samples = defaults.Sampling.Samples
	}
	if cfg.Output.Log == "" {
		cfg.Output.Log = defaults.Output.Log
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Sampling.Samples <= 0 {
		return fmt.Errorf("samples must be positive")
	}

	if c.Sampling.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}

	switch c.Output.Log {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Output.Log)
	}

	return nil
}
