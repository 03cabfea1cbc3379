package rules

import (
	"strings"

	"github.com/yaklabco/siglint/pkg/rubyast"
)

// PlaceholderType is the Sorbet type token used when no real type can
// be inferred for a synthesized signature.
const PlaceholderType = "T.untyped"

// SynthesizeSignature builds the signature text for a method with the
// given parameters. The result is fully indented to column indent and
// ends with a newline, ready for insertion above the definition.
//
// A single-line form is used when budget is unset (<= 0) or the line
// fits within it; otherwise the block form puts each parameter on its
// own line so the fix never violates the very line-length convention
// the file is held to.
func SynthesizeSignature(params []rubyast.Param, indent, budget int) string {
	entries := paramEntries(params)
	pad := strings.Repeat(" ", indent)

	single := singleLineSig(entries)
	if budget <= 0 || indent+len(single) <= budget {
		return pad + single + "\n"
	}

	inner := pad + "  "
	argPad := pad + "    "

	var b strings.Builder
	b.WriteString(pad + "sig do\n")
	if len(entries) == 0 {
		b.WriteString(inner + "returns(" + PlaceholderType + ")\n")
	} else {
		b.WriteString(inner + "params(\n")
		for i, entry := range entries {
			b.WriteString(argPad + entry)
			if i < len(entries)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(inner + ").returns(" + PlaceholderType + ")\n")
	}
	b.WriteString(pad + "end\n")
	return b.String()
}

// singleLineSig composes the one-line candidate form.
func singleLineSig(entries []string) string {
	if len(entries) == 0 {
		return "sig { returns(" + PlaceholderType + ") }"
	}
	return "sig { params(" + strings.Join(entries, ", ") + ").returns(" + PlaceholderType + ") }"
}

// paramEntries renders one "name: T.untyped" entry per named
// parameter. Destructured groups arrive already flattened to their
// leaf names; anonymous rest and block markers carry no name and are
// skipped.
func paramEntries(params []rubyast.Param) []string {
	var entries []string
	for _, p := range params {
		if p.Name == "" {
			continue
		}
		entries = append(entries, p.Name+": "+PlaceholderType)
	}
	return entries
}
