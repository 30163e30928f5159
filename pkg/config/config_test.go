package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 45, cfg.Width)
	assert.Equal(t, PrefixConfig{X: "x", Y: "y", Z: "z"}, cfg.Prefixes)
	assert.Equal(t, 2, cfg.Localizer.OperandBits)
	assert.Equal(t, 1, cfg.Localizer.ClusterExtension)
	assert.Zero(t, cfg.Repair.MaxSuspects)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("GATEREPAIR_WIDTH", "")
	t.Setenv("GATEREPAIR_LOG_LEVEL", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "gate-repair.yaml")

	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Repair.MaxSuspects = 400
	cfg.Check.Answers = []Answer{{File: "sample.txt", Part: 1, Answer: "4"}}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, loaded.Width)
	assert.Equal(t, 400, loaded.Repair.MaxSuspects)
	require.Len(t, loaded.Check.Answers, 1)
	assert.Equal(t, filepath.Join(dir, "nested", "sample.txt"), loaded.Check.Answers[0].File)
	assert.Equal(t, "4", loaded.Check.Answers[0].Answer)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("GATEREPAIR_WIDTH", "")
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 20\nlocalizer:\n  cluster_extension: 2\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 2, cfg.Localizer.ClusterExtension)
	assert.Equal(t, 2, cfg.Localizer.OperandBits)
	assert.Equal(t, "z", cfg.Prefixes.Z)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("GATEREPAIR_WIDTH", "")
	t.Setenv("GATEREPAIR_LOG_LEVEL", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [1, 2"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GATEREPAIR_WIDTH", "32")
	t.Setenv("GATEREPAIR_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, "debug", cfg.Logging.Level)

	t.Setenv("GATEREPAIR_WIDTH", "wide")
	cfg = DefaultConfig()
	cfg.applyEnvOverrides()
	assert.Equal(t, 45, cfg.Width, "unparseable width is ignored")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"width too small", func(c *Config) { c.Width = 1 }},
		{"width too large", func(c *Config) { c.Width = 63 }},
		{"empty prefix", func(c *Config) { c.Prefixes.Y = "" }},
		{"shared prefix", func(c *Config) { c.Prefixes.Z = "x" }},
		{"operand bits", func(c *Config) { c.Localizer.OperandBits = 0 }},
		{"negative extension", func(c *Config) { c.Localizer.ClusterExtension = -1 }},
		{"negative suspects", func(c *Config) { c.Repair.MaxSuspects = -1 }},
		{"no concurrency", func(c *Config) { c.Check.Concurrency = 0 }},
		{"answer without file", func(c *Config) { c.Check.Answers = []Answer{{Part: 1}} }},
		{"answer with bad part", func(c *Config) { c.Check.Answers = []Answer{{File: "f", Part: 3}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
