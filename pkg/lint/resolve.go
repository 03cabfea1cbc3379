package lint

import "github.com/yaklabco/siglint/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for diagnostics from this rule.
	Severity config.Severity

	// AutoFix indicates whether auto-fix is enabled for this rule.
	AutoFix bool

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules with their resolved configuration.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
		AutoFix:  rule.CanFix(),
	}

	if cfg == nil {
		return rr
	}

	// Explicit enable/disable from CLI, matched by ID or name.
	for _, key := range cfg.EnableRules {
		if key == rule.ID() || key == rule.Name() {
			rr.Enabled = true
			break
		}
	}
	for _, key := range cfg.DisableRules {
		if key == rule.ID() || key == rule.Name() {
			rr.Enabled = false
			break
		}
	}

	// Rule-specific config, keyed by ID or name.
	ruleCfg := cfg.RuleFor(rule.ID())
	if ruleCfg == nil {
		ruleCfg = cfg.RuleFor(rule.Name())
	}
	if ruleCfg != nil {
		rr.Config = ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			rr.Severity = config.Severity(*ruleCfg.Severity)
		}
		if ruleCfg.AutoFix != nil {
			rr.AutoFix = *ruleCfg.AutoFix && rule.CanFix()
		}
	}

	// Auto-fix only applies when --fix is set.
	if !cfg.Fix {
		rr.AutoFix = false
	}

	return rr
}
