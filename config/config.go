// Package config loads the YAML configuration and graph seed files of the
// fwpath menu and builds its logger.
//
// Configuration is layered: Default() first, then the YAML file (only the
// keys present override), then the LOG_LEVEL environment variable. The
// result is validated with struct tags before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by Load, LoadSeed and Validate.
var (
	// ErrInvalidConfig indicates an unreadable, malformed or invalid configuration.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidSeed indicates an unreadable, malformed or invalid seed file.
	ErrInvalidSeed = errors.New("config: invalid seed")
)

// EnvLogLevel overrides Log.Level when set.
const EnvLogLevel = "LOG_LEVEL"

// DefaultPrompt is the prompt shown before each menu command.
const DefaultPrompt = "What would you like to do? "

// Config is the top-level configuration.
type Config struct {
	Log  LogConfig  `yaml:"log"`
	Menu MenuConfig `yaml:"menu"`

	// Seed is an optional path to a graph seed file applied at start-up.
	Seed string `yaml:"seed"`
}

// LogConfig selects the logger level, encoding and colors.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error disabled"`
	Format string `yaml:"format" validate:"oneof=console json"`
	Color  bool   `yaml:"color"`
}

// MenuConfig controls the interactive session.
type MenuConfig struct {
	Prompt string `yaml:"prompt" validate:"required"`
	Banner bool   `yaml:"banner"`
	Styled bool   `yaml:"styled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
			Color:  false,
		},
		Menu: MenuConfig{
			Prompt: DefaultPrompt,
			Banner: true,
			Styled: true,
		},
	}
}

// Load reads path (if non-empty) over Default(), applies the environment
// override and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = strings.ToLower(level)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every struct tag constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// validate is shared; validator caches struct metadata per type.
var validate = validator.New()
