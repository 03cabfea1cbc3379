package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	// Ensure Rules map is initialized
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleConfig)
	}

	return cfg, nil
}

// Template returns a commented starter configuration for `siglint init`.
func Template() []byte {
	return []byte(`# siglint configuration
# See "siglint rules" for the full rule list.

# Column budget for synthesized signatures. A generated sig that would
# exceed this width switches to the multi-line block form. 0 = unbounded.
line_length: 120

severity_default: warning

rules:
  signature-required:
    enabled: true
    severity: warning
  no-gap-after-sig:
    enabled: true
    severity: warning

# Glob patterns to skip.
ignore:
  - "vendor/**"
  - "db/schema.rb"

backups:
  enabled: false
  mode: sidecar
`)
}
