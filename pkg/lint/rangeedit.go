package lint

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yaklabco/siglint/pkg/fix"
	"github.com/yaklabco/siglint/pkg/rubyast"
)

// Range editing primitives shared by both signature rules. All
// operations compute edits against the original buffer; callers only
// ever pass true sibling pairs in document order, so an inverted
// range is a caller bug and panics rather than returning an error.

// BetweenRange returns the byte range strictly between the end of
// nodeA and the start of nodeB.
func BetweenRange(file *rubyast.FileSnapshot, nodeA, nodeB rubyast.NodeID) rubyast.SourceRange {
	a := file.NodeRange(nodeA)
	b := file.NodeRange(nodeB)
	if b.StartOffset < a.EndOffset {
		panic(fmt.Sprintf("rangeedit: nodes out of document order: [%d:%d] then [%d:%d]",
			a.StartOffset, a.EndOffset, b.StartOffset, b.EndOffset))
	}
	return rubyast.SourceRange{StartOffset: a.EndOffset, EndOffset: b.StartOffset}
}

// Collapse computes an edit reducing the region between two sibling
// nodes to a single line break. Non-blank lines in the region (stray
// comments) are preserved in place; blank lines are stripped. Returns
// ok=false when the region contains no line break at all (same-line
// siblings, which is never an offense) or is already collapsed.
func Collapse(file *rubyast.FileSnapshot, nodeA, nodeB rubyast.NodeID) (fix.TextEdit, bool) {
	r := BetweenRange(file, nodeA, nodeB)
	seg := file.Content[r.StartOffset:r.EndOffset]

	normalized, ok := collapseText(seg)
	if !ok || normalized == string(seg) {
		return fix.TextEdit{}, false
	}

	return fix.TextEdit{
		StartOffset: r.StartOffset,
		EndOffset:   r.EndOffset,
		NewText:     normalized,
	}, true
}

// CollapseSpansLines reports whether the region between the nodes
// spans more than one line break, i.e. whether Collapse would change
// anything beyond trailing whitespace.
func CollapseSpansLines(file *rubyast.FileSnapshot, nodeA, nodeB rubyast.NodeID) bool {
	r := BetweenRange(file, nodeA, nodeB)
	seg := file.Content[r.StartOffset:r.EndOffset]
	return bytes.Count(seg, []byte("\n")) > 1
}

// InnerLines returns the full lines strictly between the two nodes
// (excluding the partial line each node sits on), without trailing
// newlines.
func InnerLines(file *rubyast.FileSnapshot, nodeA, nodeB rubyast.NodeID) []string {
	r := BetweenRange(file, nodeA, nodeB)
	seg := string(file.Content[r.StartOffset:r.EndOffset])

	first := strings.IndexByte(seg, '\n')
	last := strings.LastIndexByte(seg, '\n')
	if first < 0 || first == last {
		return nil
	}

	inner := seg[first+1 : last]
	return strings.Split(inner, "\n")
}

// InsertBefore computes an edit splicing text immediately before the
// node's enclosing whole source line, so inserted lines are never
// spliced mid-statement. The text must include its own trailing line
// break and indentation for continuation lines.
func InsertBefore(file *rubyast.FileSnapshot, node rubyast.NodeID, text string) fix.TextEdit {
	anchor := file.LineStart(file.NodeRange(node).StartOffset)
	return fix.TextEdit{
		StartOffset: anchor,
		EndOffset:   anchor,
		NewText:     text,
	}
}

// collapseText normalizes an inter-sibling gap to exactly one line
// break. The final segment (the second node's line indentation) is
// kept verbatim; interior blank lines are dropped; interior non-blank
// lines survive with their own line breaks. Returns ok=false when the
// gap has no line break.
func collapseText(seg []byte) (string, bool) {
	first := bytes.IndexByte(seg, '\n')
	if first < 0 {
		return "", false
	}
	last := bytes.LastIndexByte(seg, '\n')

	var out strings.Builder
	out.WriteByte('\n')

	if first != last {
		inner := seg[first+1 : last+1]
		for _, line := range bytes.SplitAfter(inner, []byte("\n")) {
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			out.Write(line)
		}
	}

	// Indentation of the second node's own line.
	out.Write(seg[last+1:])

	return out.String(), true
}
