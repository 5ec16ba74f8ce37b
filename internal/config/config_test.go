package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	content := `
sampling {
  samples = 10000
  workers = 4
  seed    = 42
  seeded  = true
}

output {
  table     = true
  color     = false
  log_level = "debug"
}
`
	path := writeConfig(t, content)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10000, cfg.Sampling.Samples)
	assert.Equal(t, 4, cfg.Sampling.Workers)
	assert.Equal(t, int64(42), cfg.Sampling.Seed)
	assert.True(t, cfg.Sampling.Seeded)
	assert.True(t, cfg.Output.Table)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, "debug", cfg.Output.Log)
}

func TestLoadAppliesDefaultsForMissingValues(t *testing.T) {
	content := `
sampling {
  workers = 2
}

output {
}
`
	path := writeConfig(t, content)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Default().Sampling.Samples, cfg.Sampling.Samples)
	assert.Equal(t, 2, cfg.Sampling.Workers)
	assert.Equal(t, Default().Output.Log, cfg.Output.Log)
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, "sampling {")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "zero samples", mutate: func(c *Config) { c.Sampling.Samples = 0 }, wantErr: true},
		{name: "negative samples", mutate: func(c *Config) { c.Sampling.Samples = -1 }, wantErr: true},
		{name: "negative workers", mutate: func(c *Config) { c.Sampling.Workers = -1 }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.Output.Log = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drawodds.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
