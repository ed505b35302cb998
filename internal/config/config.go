// Package config loads the advent runner configuration from YAML with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up in the working
// directory.
const DefaultPath = "advent.yaml"

// Config holds all runner configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Workers int           `yaml:"workers"` // almanac seed range fan-out
	Logging LoggingConfig `yaml:"logging"`
	Bag     BagConfig     `yaml:"bag"`
}

// InputConfig locates puzzle inputs.
type InputConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"` // fmt pattern taking the day, e.g. "day%02d.txt"
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// BagConfig is the cube bag checked by day 2.
type BagConfig struct {
	Red   int64 `yaml:"red"`
	Green int64 `yaml:"green"`
	Blue  int64 `yaml:"blue"`
}

// ValidLevels are the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir:     "inputs",
			Pattern: "day%02d.txt",
		},
		Workers: 4,
		Logging: LoggingConfig{
			Level: "info",
			JSON:  true,
		},
		Bag: BagConfig{Red: 12, Green: 13, Blue: 14},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
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

func (c *Config) applyEnvOverrides() error {
	if dir := os.Getenv("ADVENT_INPUT_DIR"); dir != "" {
		c.Input.Dir = dir
	}
	if v := os.Getenv("ADVENT_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ADVENT_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if level := os.Getenv("ADVENT_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	return nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Input.Pattern == "" {
		return fmt.Errorf("input pattern must not be empty")
	}
	if !strings.Contains(c.Input.Pattern, "%") {
		return fmt.Errorf("input pattern %q has no day verb", c.Input.Pattern)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	valid := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if c.Bag.Red < 0 || c.Bag.Green < 0 || c.Bag.Blue < 0 {
		return fmt.Errorf("bag counts must not be negative")
	}
	return nil
}

// InputPath returns the input file of a day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.Input.Dir, fmt.Sprintf(c.Input.Pattern, day))
}
