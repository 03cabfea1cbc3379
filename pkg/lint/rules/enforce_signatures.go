package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/siglint/pkg/config"
	"github.com/yaklabco/siglint/pkg/fix"
	"github.com/yaklabco/siglint/pkg/lint"
	"github.com/yaklabco/siglint/pkg/rubyast"
)

// capabilityDecl is the scope-level statement that lets a class or
// module host signature blocks.
const capabilityDecl = "extend T::Sig"

// SignatureRequiredRule flags method definitions, singleton
// definitions, and attr-accessor declarations that lack an immediately
// preceding sig block.
type SignatureRequiredRule struct {
	lint.BaseRule
}

// NewSignatureRequiredRule creates a new signature-required rule.
func NewSignatureRequiredRule() *SignatureRequiredRule {
	return &SignatureRequiredRule{
		BaseRule: lint.NewBaseRule(
			"SG001",
			"signature-required",
			"Method definition lacks a Sorbet type signature",
			[]string{"sorbet", "signature"},
			true,
		),
	}
}

// Apply flags signable definitions whose preceding sibling is not a
// sig block and synthesizes the missing signature.
//
// Files under `# typed: strict` or `# typed: strong` are skipped
// entirely: the static checker already rejects unsigned methods
// there, so flagging them again would be noise. In all other files a
// definition is only flagged when the file opts into signatures
// (`# typed: true`) or its enclosing scope already extends T::Sig.
func (r *SignatureRequiredRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil || ctx.File.Tree == nil {
		return nil, nil
	}
	if ctx.File.Typed.IsStrict() {
		return nil, nil
	}

	tree := ctx.File.Tree
	sigsEnabled := ctx.File.Typed.SignaturesEnabled()
	budget := ctx.LineBudget()

	var diags []lint.Diagnostic

	for _, id := range tree.FindAll(lint.IsSignable) {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		node := tree.Node(id)

		// Signatures precede the outermost syntactic form: for a
		// decorator-wrapped definition the wrapping call, otherwise
		// the definition itself.
		target := lint.DecoratedNode(tree, id)
		if lint.PrecededBySig(tree, target) {
			continue
		}

		scope := tree.EnclosingScope(id)
		hasCapability := scope != rubyast.NoNode && lint.ExtendsTSig(tree, scope)
		if !sigsEnabled && !hasCapability {
			continue
		}

		indent := lint.IndentColumn(ctx.File, target)
		sigText := SynthesizeSignature(node.Params, indent, budget)

		builder := fix.NewEditBuilder()

		// The capability declaration goes in first so that, when
		// both edits anchor at the same line (the scope's first
		// statement is the flagged definition), it lands above the
		// signature. Identical declaration edits from sibling
		// offenses in the same scope dedupe at apply time, so the
		// scope gains the statement exactly once. A missing scope
		// never blocks the signature edit itself.
		if scope != rubyast.NoNode && !hasCapability {
			if edit, ok := capabilityEdit(ctx.File, tree, scope); ok {
				builder.Insert(edit.StartOffset, edit.NewText)
			}
		}

		sigEdit := lint.InsertBefore(ctx.File, target, sigText)
		builder.Insert(sigEdit.StartOffset, sigEdit.NewText)

		name := lint.MethodDisplayName(node)
		diag := lint.NewDiagnostic(r.ID(), ctx.File, id,
			fmt.Sprintf("Method %q has no Sorbet signature", name)).
			WithSeverity(config.SeverityWarning).
			WithSuggestion("Add a sig block directly above the definition").
			WithFix(builder).
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

// capabilityEdit builds the insertion placing "extend T::Sig" as the
// first statement of the scope body, followed by a blank line. The
// anchor is the scope's first child so every offense in the scope
// produces the identical edit.
func capabilityEdit(file *rubyast.FileSnapshot, tree *rubyast.Tree, scope rubyast.NodeID) (fix.TextEdit, bool) {
	s := tree.Node(scope)
	if s == nil || len(s.Children) == 0 {
		return fix.TextEdit{}, false
	}

	first := s.Children[0]
	indent := strings.Repeat(" ", lint.IndentColumn(file, first))
	return lint.InsertBefore(file, first, indent+capabilityDecl+"\n\n"), true
}
