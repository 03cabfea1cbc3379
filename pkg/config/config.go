// Package config defines core configuration types for siglint.
// These types are pure data structures with no dependency on the
// loader; see internal/configloader for discovery and merging.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	AutoFix  *bool          `yaml:"auto_fix"`
	Options  map[string]any `yaml:"options"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "signature-required"
	RuleFormatID       RuleFormat = "id"       // "SG001"
	RuleFormatCombined RuleFormat = "combined" // "SG001/signature-required"
)

// FormatRuleID renders a rule identifier according to the format.
func FormatRuleID(format RuleFormat, id, name string) string {
	switch format {
	case RuleFormatID:
		return id
	case RuleFormatCombined:
		if name == "" {
			return id
		}
		return id + "/" + name
	default:
		if name == "" {
			return id
		}
		return name
	}
}

// Config is the root configuration structure for siglint.
type Config struct {
	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default"`

	// LineLength is the column budget signature synthesis must fit
	// within. Zero means unbounded: synthesized signatures always use
	// the single-line form.
	LineLength int `yaml:"line_length"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// EnableRules force-enables the listed rules (IDs or names).
	EnableRules []string `yaml:"enable"`

	// DisableRules excludes the listed rules (IDs or names).
	DisableRules []string `yaml:"disable"`

	// Fix enables auto-fix mode.
	Fix bool `yaml:"fix"`

	// DryRun shows fixes as diffs without writing files.
	DryRun bool `yaml:"dry_run"`

	// Jobs is the maximum number of concurrent workers (0 = auto).
	Jobs int `yaml:"jobs"`

	// Format is the output format.
	Format OutputFormat `yaml:"format"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"rule_format"`

	// Backups controls backup creation before writes.
	Backups BackupsConfig `yaml:"backups"`
}

// DefaultLineLength is the default signature line budget, matching
// the common RuboCop default.
const DefaultLineLength = 120

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		LineLength:      DefaultLineLength,
		Rules:           make(map[string]RuleConfig),
		Format:          FormatText,
		RuleFormat:      RuleFormatName,
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    "sidecar",
		},
	}
}

// RuleFor returns the RuleConfig for the given rule key, or nil.
func (c *Config) RuleFor(key string) *RuleConfig {
	if c == nil || c.Rules == nil {
		return nil
	}
	if rc, ok := c.Rules[key]; ok {
		return &rc
	}
	return nil
}
