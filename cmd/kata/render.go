package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/kata/internal/config"
	"gopkg.in/yaml.v3"
)

// separator closes every text report block.
var separator = strings.Repeat("-", 50)

// render writes v as YAML when the configured format asks for it, and
// falls back to text(w) otherwise.
func (a *app) render(w io.Writer, v interface{}, text func(io.Writer) error) error {
	if a.cfg.Output.Format != config.FormatYAML {
		return text(w)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
