// Package config loads the kata CLI settings from YAML.
//
// Without a path Load falls back to Default. A path that cannot be read and
// unknown keys are both errors, so typos surface instead of being ignored.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/kata/radix"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Defaults.
const (
	DefaultMaxFibLength = 10000
	DefaultBase         = 10
	DefaultLogLevel     = "info"
)

// Config is the root of the YAML document.
type Config struct {
	Fibonacci FibonacciConfig `yaml:"fibonacci"`
	Radix     RadixConfig     `yaml:"radix"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
}

// FibonacciConfig bounds what the CLI asks the generator for.
type FibonacciConfig struct {
	MaxLength int  `yaml:"max_length"` // 0 disables the bound
	Big       bool `yaml:"big"`        // arbitrary precision by default
}

// RadixConfig holds the base used when --base is not given.
type RadixConfig struct {
	DefaultBase int `yaml:"default_base"`
}

// OutputConfig selects how reports are rendered.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// LogConfig selects the zap level by name.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Fibonacci: FibonacciConfig{MaxLength: DefaultMaxFibLength},
		Radix:     RadixConfig{DefaultBase: DefaultBase},
		Output:    OutputConfig{Format: FormatText},
		Log:       LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads path on top of Default. An empty path yields the defaults;
// a named file must exist.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document on top of Default and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	if c.Fibonacci.MaxLength < 0 {
		return fmt.Errorf("%w: fibonacci.max_length must be >= 0 (got %d)", ErrInvalidConfig, c.Fibonacci.MaxLength)
	}
	if c.Radix.DefaultBase < radix.MinBase || c.Radix.DefaultBase > radix.MaxBase {
		return fmt.Errorf("%w: radix.default_base must be between %d and %d (got %d)",
			ErrInvalidConfig, radix.MinBase, radix.MaxBase, c.Radix.DefaultBase)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: output.format must be %q or %q (got %q)", ErrInvalidConfig, FormatText, FormatYAML, c.Output.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q is not one of debug, info, warn, error", ErrInvalidConfig, c.Log.Level)
	}

	return nil
}
