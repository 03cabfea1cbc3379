package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/siglint/pkg/config"
	"github.com/yaklabco/siglint/pkg/fix"
	"github.com/yaklabco/siglint/pkg/rubyast"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Snapshot is the parsed file.
	Snapshot *rubyast.FileSnapshot

	// Diagnostics contains all offenses found, in document order.
	Diagnostics []Diagnostic

	// Edits contains validated, sorted, deduplicated edits for
	// auto-fix. Empty if no fixes are available or --fix was not
	// requested.
	Edits []fix.TextEdit

	// RuleErrors contains any errors from rule execution.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// HasFixes returns true if any fixes are available.
func (fr *FileResult) HasFixes() bool {
	return len(fr.Edits) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// FixableCount returns the number of diagnostics with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.HasFix() {
			count++
		}
	}
	return count
}

// Engine coordinates parsing and rule execution for linting.
type Engine struct {
	// Parser parses Ruby files into FileSnapshots.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and lints a single file.
//
// Edits from all rules are resolved against the original buffer and
// merged in ascending-offset order; identical edits proposed by more
// than one offense collapse to one. A genuine overlap between
// distinct edits is a rule bug and fails the whole file rather than
// risking corrupted output.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		Snapshot:   snapshot,
		RuleErrors: make(map[string]error),
	}

	var allEdits []fix.TextEdit

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, snapshot, cfg, rr.Config)

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range diags {
			diags[i].Severity = rr.Severity

			if diags[i].FilePath == "" || diags[i].FilePath == UnknownPath {
				if path != "" {
					diags[i].FilePath = path
				}
			}
			if diags[i].RuleName == "" {
				diags[i].RuleName = rr.Rule.Name()
			}

			if rr.AutoFix && len(diags[i].FixEdits) > 0 {
				allEdits = append(allEdits, diags[i].FixEdits...)
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	if len(allEdits) > 0 {
		prepared, err := fix.PrepareEdits(allEdits, len(content))
		if err != nil {
			return nil, fmt.Errorf("prepare edits for %s: %w", path, err)
		}
		result.Edits = prepared
	}

	return result, nil
}
