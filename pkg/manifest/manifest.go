// Package manifest loads and validates the YAML run manifest that configures
// a conformance run: which fixture trees to load under which draft, which
// known failures to ignore, and an optional check filter.
package manifest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SuiteRef names one fixture directory tree and the schema draft its files
// are written against.
type SuiteRef struct {
	Dir   string `yaml:"dir" json:"dir" jsonschema:"required"`
	Draft string `yaml:"draft,omitempty" json:"draft,omitempty"`
}

// Manifest is the top-level run configuration.
type Manifest struct {
	Suites  []SuiteRef `yaml:"suites" json:"suites" jsonschema:"required"`
	Ignores []string   `yaml:"ignores,omitempty" json:"ignores,omitempty"`
	Filter  string     `yaml:"filter,omitempty" json:"filter,omitempty"`
	Verbose bool       `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// LoadFile reads and structurally decodes a run manifest.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a run manifest from a reader.
func Load(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true) // strict: reject unknown fields
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("structural decode: %w", err)
	}
	return &m, nil
}
