// Package rubyast provides the syntax tree representation siglint
// operates on. It defines an immutable view of a Ruby source file:
// - FileSnapshot: content, line metadata, and per-file typing flags
// - Tree: an arena of nodes addressed by NodeID
// - Node: structural representation with byte-range source locations
package rubyast

// TypedLevel is the Sorbet strictness declared by a file's magic
// comment ("# typed: LEVEL"). TypedNone means no marker was found.
type TypedLevel string

const (
	TypedNone   TypedLevel = ""
	TypedIgnore TypedLevel = "ignore"
	TypedFalse  TypedLevel = "false"
	TypedTrue   TypedLevel = "true"
	TypedStrict TypedLevel = "strict"
	TypedStrong TypedLevel = "strong"
)

// IsStrict returns true for levels where static checking already
// requires signatures, so siglint stays silent.
func (l TypedLevel) IsStrict() bool {
	return l == TypedStrict || l == TypedStrong
}

// SignaturesEnabled returns true when the file-level marker opts the
// file into signature enforcement.
func (l TypedLevel) SignaturesEnabled() bool {
	return l == TypedTrue
}

// FileSnapshot is an immutable view of a Ruby source file at a
// specific time. It holds the raw content, line metadata, the parsed
// tree, and the typing level derived from leading magic comments.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Tree is the parsed syntax tree.
	Tree *Tree

	// Typed is the Sorbet strictness level from the magic comment.
	Typed TypedLevel
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFileSnapshot creates a FileSnapshot from content. It builds the
// line index but does not parse (that requires a Parser).
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// NodeRange returns the byte range for the given node ID.
// Returns an empty range for invalid IDs.
func (f *FileSnapshot) NodeRange(id NodeID) SourceRange {
	if f.Tree == nil {
		return SourceRange{}
	}
	n := f.Tree.Node(id)
	if n == nil {
		return SourceRange{}
	}
	return n.Range
}

// NodePosition returns the line/column range for the given node ID.
// Returns an invalid position for invalid IDs.
func (f *FileSnapshot) NodePosition(id NodeID) SourcePosition {
	r := f.NodeRange(id)
	if r.IsEmpty() && r.StartOffset == 0 && (f.Tree == nil || f.Tree.Node(id) == nil) {
		return SourcePosition{}
	}

	startLine, startCol := f.LineAt(r.StartOffset)
	endLine, endCol := f.LineAt(r.EndOffset)

	return SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

// NodeText returns the source text covered by the given node ID.
// Returns nil for invalid IDs or out-of-bounds ranges.
func (f *FileSnapshot) NodeText(id NodeID) []byte {
	r := f.NodeRange(id)
	if r.StartOffset < 0 || r.EndOffset > len(f.Content) || r.IsEmpty() {
		return nil
	}
	return f.Content[r.StartOffset:r.EndOffset]
}
