package lint

import (
	"context"

	"github.com/yaklabco/siglint/pkg/config"
	"github.com/yaklabco/siglint/pkg/rubyast"
)

// RuleContext provides all context needed by a rule to perform linting.
//
// Design note: RuleContext stores context.Context as a field (Ctx)
// rather than passing it as a method parameter. RuleContext is a
// short-lived parameter object created per-rule-invocation, not a
// long-lived struct; this keeps the Rule interface to a single Apply
// method while still providing cancellation via Cancelled().
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the parsed FileSnapshot.
	File *rubyast.FileSnapshot

	// Tree is the syntax tree (convenience alias for File.Tree).
	Tree *rubyast.Tree

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig
}

// NewRuleContext creates a RuleContext for the given file and configuration.
func NewRuleContext(
	ctx context.Context,
	file *rubyast.FileSnapshot,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	var tree *rubyast.Tree
	if file != nil {
		tree = file.Tree
	}

	return &RuleContext{
		Ctx:        ctx,
		File:       file,
		Tree:       tree,
		Config:     cfg,
		RuleConfig: ruleCfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// LineBudget returns the effective signature line budget for this
// rule invocation: the per-rule "line_length" option when present,
// otherwise the global config value. Zero means unbounded.
func (rc *RuleContext) LineBudget() int {
	budget := 0
	if rc.Config != nil {
		budget = rc.Config.LineLength
	}
	return rc.OptionInt("line_length", budget)
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}
