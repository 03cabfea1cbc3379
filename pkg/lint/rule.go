// Package lint provides the rule engine, diagnostics, and registry for siglint.
package lint

import (
	"github.com/yaklabco/siglint/pkg/config"
	"github.com/yaklabco/siglint/pkg/fix"
	"github.com/yaklabco/siglint/pkg/rubyast"
)

// UnknownPath is substituted into messages and output when a file
// path cannot be resolved (in-memory content, for example).
const UnknownPath = "(unknown)"

// Diagnostic represents a single offense found in a file.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "signature-required").
	RuleName string

	// Message is the human-readable description of the offense.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file containing the offense.
	FilePath string

	// Node is the anchoring node in the file's tree.
	Node rubyast.NodeID

	// StartLine / StartColumn are the 1-based start of the offense.
	StartLine   int
	StartColumn int

	// EndLine / EndColumn are the 1-based end of the offense.
	EndLine   int
	EndColumn int

	// Suggestion is an optional human-readable fix suggestion.
	Suggestion string

	// FixEdits contains the text edits to correct this offense (may
	// be empty). All offsets address the original buffer; edits from
	// one diagnostic never overlap each other.
	FixEdits []fix.TextEdit
}

// HasFix returns true if this diagnostic has associated fix edits.
func (d *Diagnostic) HasFix() bool {
	return len(d.FixEdits) > 0
}

// SourcePosition returns the diagnostic position as a SourcePosition.
func (d *Diagnostic) SourcePosition() rubyast.SourcePosition {
	return rubyast.SourcePosition{
		StartLine:   d.StartLine,
		StartColumn: d.StartColumn,
		EndLine:     d.EndLine,
		EndColumn:   d.EndColumn,
	}
}

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "SG001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["signatures"]).
	Tags() []string

	// CanFix returns whether this rule can auto-fix offenses.
	CanFix() bool

	// Apply executes the rule against the given context and returns diagnostics.
	//
	// Rules must:
	//   - Return diagnostics for each offense found.
	//   - Express fixes as edits against the original buffer.
	//   - Respect context cancellation.
	//   - Return error only for internal failures, not offenses.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}
