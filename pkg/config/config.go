package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all gate-repair configuration.
type Config struct {
	// Width of the x and y operands in bits; z carries one extra bit.
	Width int `yaml:"width"`

	Prefixes  PrefixConfig    `yaml:"prefixes"`
	Localizer LocalizerConfig `yaml:"localizer"`
	Repair    RepairConfig    `yaml:"repair"`
	Logging   LoggingConfig   `yaml:"logging"`
	Check     CheckConfig     `yaml:"check"`
}

// PrefixConfig names the wire families of the adder.
type PrefixConfig struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
	Z string `yaml:"z"`
}

// LocalizerConfig tunes the local adder tests and cluster boundaries.
type LocalizerConfig struct {
	// Operands a and b range over [0, 2^OperandBits) before shifting.
	OperandBits int `yaml:"operand_bits"`
	// Bits added above the highest failing position when closing a cluster.
	ClusterExtension int `yaml:"cluster_extension"`
}

// RepairConfig bounds the swap search.
type RepairConfig struct {
	// Clusters with more suspects than this are left unresolved (0 = no limit).
	MaxSuspects int `yaml:"max_suspects"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// CheckConfig lists known answers replayed by the check command.
type CheckConfig struct {
	Concurrency int      `yaml:"concurrency"`
	Answers     []Answer `yaml:"answers"`
}

// Answer is the expected result of one part on one input file.
type Answer struct {
	File   string `yaml:"file"`
	Part   int    `yaml:"part"`
	Answer string `yaml:"answer"`
}

// DefaultConfig returns the configuration for the reference 45-bit adder.
func DefaultConfig() *Config {
	return &Config{
		Width: 45,
		Prefixes: PrefixConfig{
			X: "x",
			Y: "y",
			Z: "z",
		},
		Localizer: LocalizerConfig{
			OperandBits:      2,
			ClusterExtension: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Check: CheckConfig{
			Concurrency: 4,
		},
	}
}

// Load reads a YAML config file on top of the defaults and applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnvOverrides()

	// Answer files are relative to the config file
	base := filepath.Dir(path)
	for i := range cfg.Check.Answers {
		if f := cfg.Check.Answers[i].File; f != "" && !filepath.IsAbs(f) {
			cfg.Check.Answers[i].File = filepath.Join(base, f)
		}
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the config for values the algorithms cannot run with.
func (c *Config) Validate() error {
	if c.Width < 2 || c.Width > 62 {
		return fmt.Errorf("width must be in [2, 62], got %d", c.Width)
	}
	if c.Prefixes.X == "" || c.Prefixes.Y == "" || c.Prefixes.Z == "" {
		return fmt.Errorf("wire prefixes must not be empty")
	}
	if c.Prefixes.X == c.Prefixes.Y || c.Prefixes.X == c.Prefixes.Z || c.Prefixes.Y == c.Prefixes.Z {
		return fmt.Errorf("wire prefixes must be distinct")
	}
	if c.Localizer.OperandBits < 1 || c.Localizer.OperandBits > 8 {
		return fmt.Errorf("localizer.operand_bits must be in [1, 8], got %d", c.Localizer.OperandBits)
	}
	if c.Localizer.ClusterExtension < 0 {
		return fmt.Errorf("localizer.cluster_extension must not be negative")
	}
	if c.Repair.MaxSuspects < 0 {
		return fmt.Errorf("repair.max_suspects must not be negative")
	}
	if c.Check.Concurrency < 1 {
		return fmt.Errorf("check.concurrency must be at least 1")
	}
	for i, a := range c.Check.Answers {
		if a.File == "" {
			return fmt.Errorf("check.answers[%d]: file is required", i)
		}
		if a.Part != 1 && a.Part != 2 {
			return fmt.Errorf("check.answers[%d]: part must be 1 or 2, got %d", i, a.Part)
		}
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GATEREPAIR_WIDTH"); v != "" {
		if width, err := strconv.Atoi(v); err == nil {
			c.Width = width
		}
	}
	if v := os.Getenv("GATEREPAIR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
