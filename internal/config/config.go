// Package config loads esql-check settings from a YAML file and the
// environment. Command-line flags are applied on top by the CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/foundry-zero/esqlcheck/internal/logging"
)

// Environment variables that override file settings.
const (
	EnvSchema   = "ESQL_CHECK_SCHEMA"
	EnvFormat   = "ESQL_CHECK_FORMAT"
	EnvStrict   = "ESQL_CHECK_STRICT"
	EnvMaxDepth = "ESQL_CHECK_MAX_DEPTH"
	EnvMaxNodes = "ESQL_CHECK_MAX_NODES"
	EnvLogLevel = logging.EnvLevel
)

// DefaultCacheSize is the number of field schemas the checker keeps loaded.
const DefaultCacheSize = 16

// DefaultPaths are searched, in order, when no config file is given.
var DefaultPaths = []string{
	"esql-check.yaml",
	"esql-check.yml",
	".esql-check.yaml",
	"configs/esql-check.yaml",
}

// Config holds every setting the CLI understands.
type Config struct {
	Schema    string `yaml:"schema"`     // field schema file
	Format    string `yaml:"format"`     // "text" or "json"
	Strict    bool   `yaml:"strict"`     // warnings fail the run
	MaxDepth  int    `yaml:"max_depth"`  // 0 disables the tree depth limit
	MaxNodes  int    `yaml:"max_nodes"`  // 0 disables the tree size limit
	CacheSize int    `yaml:"cache_size"` // field schemas kept in memory
	LogLevel  string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Format:    "text",
		MaxDepth:  512,
		MaxNodes:  100000,
		CacheSize: DefaultCacheSize,
		LogLevel:  "WARNING",
	}
}

// Load builds a Config from defaults, then the config file (configPath, or
// the first of DefaultPaths that exists), then the environment.
func Load(configPath string) (*Config, error) {
	c := DefaultConfig()

	if configPath == "" {
		configPath = findDefault()
	}
	if configPath != "" {
		if err := c.LoadFromFile(configPath); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := c.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func findDefault() string {
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadFromFile merges settings from a YAML file into c.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return nil
}

// LoadFromEnv overrides settings from environment variables.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv(EnvSchema); v != "" {
		c.Schema = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvStrict); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrict, err)
		}
		c.Strict = b
	}
	if v := os.Getenv(EnvMaxDepth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxDepth, err)
		}
		c.MaxDepth = n
	}
	if v := os.Getenv(EnvMaxNodes); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxNodes, err)
		}
		c.MaxNodes = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (use text or json)", c.Format)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth cannot be negative")
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("max_nodes cannot be negative")
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("cache_size must be at least 1")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	return nil
}
