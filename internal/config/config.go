// Package config loads scopelist options from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when loaded options fail validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root scopelist configuration.
type Config struct {
	Tags         []string  `yaml:"tags"          env:"SCOPELIST_TAGS"          env-default:"tags"`
	MethodKinds  []string  `yaml:"method_kinds"  env:"SCOPELIST_METHOD_KINDS"  env-default:"m"`
	SkipPrefixes []string  `yaml:"skip_prefixes" env:"SCOPELIST_SKIP_PREFIXES" env-default:"_,anonymous"`
	SkipNames    []string  `yaml:"skip_names"    env:"SCOPELIST_SKIP_NAMES"    env-default:"constructor"`
	ExcludeFrom  string    `yaml:"exclude_from"  env:"SCOPELIST_EXCLUDE_FROM"`
	Strict       bool      `yaml:"strict"        env:"SCOPELIST_STRICT"`
	Log          LogConfig `yaml:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"SCOPELIST_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"SCOPELIST_LOG_FORMAT" env-default:"text"`
}

// Default returns the built-in settings, ignoring the environment.
func Default() *Config {
	return &Config{
		Tags:         []string{"tags"},
		MethodKinds:  []string{"m"},
		SkipPrefixes: []string{"_", "anonymous"},
		SkipNames:    []string{"constructor"},
		Log:          LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). An empty path
// reads the environment only. Callers overlay flags and then Validate.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}

// Validate checks option values.
func (c *Config) Validate() error {
	if len(c.Tags) == 0 {
		return fmt.Errorf("%w: at least one tags file is required", ErrInvalidConfig)
	}
	for _, k := range c.MethodKinds {
		if k == "" {
			return fmt.Errorf("%w: method_kinds contains an empty kind", ErrInvalidConfig)
		}
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// YAML returns the configuration in the format Load reads.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("config: encode: %w", err)
	}
	return string(out), nil
}
