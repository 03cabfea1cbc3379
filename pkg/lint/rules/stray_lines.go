package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/siglint/pkg/config"
	"github.com/yaklabco/siglint/pkg/fix"
	"github.com/yaklabco/siglint/pkg/lint"
	"github.com/yaklabco/siglint/pkg/rubyast"
)

// NoGapAfterSigRule flags sig blocks separated from their method by
// blank lines or stray comment lines.
type NoGapAfterSigRule struct {
	lint.BaseRule
}

// NewNoGapAfterSigRule creates a new no-gap-after-sig rule.
func NewNoGapAfterSigRule() *NoGapAfterSigRule {
	return &NoGapAfterSigRule{
		BaseRule: lint.NewBaseRule(
			"SG002",
			"no-gap-after-sig",
			"Signature not immediately followed by its method",
			[]string{"sorbet", "signature", "whitespace"},
			true,
		),
	}
}

// Apply inspects every sig block's next sibling. When that sibling is
// a signable definition and more than one line break separates the
// two, the gap is collapsed to a single line break. Comment lines
// caught in the gap are not discarded: they move to sit directly
// above the sig, where they still describe the signed method.
func (r *NoGapAfterSigRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil || ctx.File.Tree == nil {
		return nil, nil
	}

	tree := ctx.File.Tree
	var diags []lint.Diagnostic

	for _, sigID := range tree.FindByKind(rubyast.NodeSig) {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		// Comment lines caught in the gap parse as siblings of their
		// own; the signed definition is the first non-comment sibling.
		nextID := tree.NextSibling(sigID)
		for nextID != rubyast.NoNode && tree.Node(nextID).Kind == rubyast.NodeComment {
			nextID = tree.NextSibling(nextID)
		}
		if nextID == rubyast.NoNode {
			continue
		}
		defNode := signableTarget(tree, nextID)
		if defNode == nil {
			continue
		}

		if !lint.CollapseSpansLines(ctx.File, sigID, nextID) {
			continue
		}

		builder := fix.NewEditBuilder()
		comments := strayComments(ctx.File, sigID, nextID)

		if len(comments) == 0 {
			edit, ok := lint.Collapse(ctx.File, sigID, nextID)
			if !ok {
				continue
			}
			builder.ReplaceRange(edit.StartOffset, edit.EndOffset, edit.NewText)
		} else {
			// Empty the gap entirely, then re-insert the de-blanked
			// comment lines above the sig's own line.
			gap := lint.BetweenRange(ctx.File, sigID, nextID)
			seg := string(ctx.File.Content[gap.StartOffset:gap.EndOffset])
			last := strings.LastIndexByte(seg, '\n')
			builder.ReplaceRange(gap.StartOffset, gap.EndOffset, "\n"+seg[last+1:])

			moved := lint.InsertBefore(ctx.File, sigID, strings.Join(comments, "\n")+"\n")
			builder.Insert(moved.StartOffset, moved.NewText)
		}

		name := lint.MethodDisplayName(defNode)
		diag := lint.NewDiagnostic(r.ID(), ctx.File, sigID,
			fmt.Sprintf("Signature for %q is separated from its definition", name)).
			WithSeverity(config.SeverityWarning).
			WithSuggestion("Keep the sig block on the line directly above the definition").
			WithFix(builder).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// signableTarget resolves the node a sig's next sibling defines: the
// sibling itself when signable, or the wrapped definition when the
// sibling is a decorator call.
func signableTarget(tree *rubyast.Tree, id rubyast.NodeID) *rubyast.Node {
	n := tree.Node(id)
	if n == nil {
		return nil
	}
	if lint.IsSignable(n) {
		return n
	}
	if n.Kind == rubyast.NodeCall && len(n.Children) == 1 {
		if child := tree.Node(n.Children[0]); lint.IsSignable(child) {
			return child
		}
	}
	return nil
}

// strayComments returns the non-blank lines caught between a sig and
// its definition, verbatim with their original indentation.
func strayComments(file *rubyast.FileSnapshot, sigID, nextID rubyast.NodeID) []string {
	var comments []string
	for _, line := range lint.InnerLines(file, sigID, nextID) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		comments = append(comments, strings.TrimRight(line, "\r"))
	}
	return comments
}
