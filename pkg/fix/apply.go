package fix

import "bytes"

// ApplyEdits splices each edit's replacement text over its byte range,
// resolving every offset against the original buffer. The edits must
// come out of PrepareEdits: ascending, duplicate-free, non-overlapping.
// One left-to-right pass then covers all three edit shapes: a pure
// insertion contributes an empty source range, a removal an empty
// NewText, and a replacement both.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	finalLen := len(content)
	for _, edit := range edits {
		finalLen += len(edit.NewText) - (edit.EndOffset - edit.StartOffset)
	}

	var buf bytes.Buffer
	buf.Grow(finalLen)

	next := 0
	for _, edit := range edits {
		buf.Write(content[next:edit.StartOffset])
		buf.WriteString(edit.NewText)
		next = edit.EndOffset
	}
	buf.Write(content[next:])

	return buf.Bytes()
}
