package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/spektr-org/prototypes/helpers"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// DefaultPath is where the CLI looks for a config file.
const DefaultPath = "prototypes.yaml"

// Config holds all CLI configuration.
type Config struct {
	// Fixtures is a directory overriding the embedded fixture files.
	Fixtures    string        `yaml:"fixtures"`
	Format      string        `yaml:"format"`
	Parallelism int           `yaml:"parallelism"`
	Logging     LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Format:      helpers.FormatPretty,
		Parallelism: 4,
		Logging:     LoggingConfig{Level: "info"},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if dir := os.Getenv("PROTOTYPES_FIXTURES"); dir != "" {
		c.Fixtures = dir
	}
	if format := os.Getenv("PROTOTYPES_FORMAT"); format != "" {
		c.Format = format
	}
	if n := os.Getenv("PROTOTYPES_PARALLELISM"); n != "" {
		v, err := strconv.Atoi(n)
		if err != nil {
			return fmt.Errorf("%w: PROTOTYPES_PARALLELISM=%q: %v", ErrInvalid, n, err)
		}
		c.Parallelism = v
	}
	if level := os.Getenv("PROTOTYPES_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !helpers.ValidFormat(c.Format) {
		return fmt.Errorf("%w: format %q (valid: %v)", ErrInvalid, c.Format, helpers.Formats())
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be at least 1, got %d", ErrInvalid, c.Parallelism)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	return nil
}

// ZapLevel parses the configured level.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: logging level: %v", ErrInvalid, err)
	}
	return lvl, nil
}
