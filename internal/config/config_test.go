package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultMaxFibLength, cfg.Fibonacci.MaxLength)
	assert.Equal(t, DefaultBase, cfg.Radix.DefaultBase)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
fibonacci:
  max_length: 50
  big: true
radix:
  default_base: 16
output:
  format: yaml
`))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Fibonacci.MaxLength)
	assert.True(t, cfg.Fibonacci.Big)
	assert.Equal(t, 16, cfg.Radix.DefaultBase)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level, "untouched keys keep defaults")
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("radix:\n  defualt_base: 8\n"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative max":  "fibonacci:\n  max_length: -1\n",
		"base too low":  "radix:\n  default_base: 1\n",
		"base too high": "radix:\n  default_base: 37\n",
		"format":        "output:\n  format: json\n",
		"level":         "log:\n  level: trace\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist, "a named config file must exist")

	path := filepath.Join(t.TempDir(), "kata.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}
