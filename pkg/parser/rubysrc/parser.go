// Package rubysrc implements the lint.Parser interface with a
// structural parser for the Ruby subset the signature rules need:
// class/module scopes, method definitions (including singleton and
// decorator-wrapped forms), Sorbet sig blocks, attr-accessor family
// calls, bare call statements, and comments. Statement bodies are
// tracked only far enough to match every opener with its "end"; the
// tree never descends into expression structure.
package rubysrc

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/siglint/pkg/rubyast"
)

// Parser parses Ruby source into a rubyast.FileSnapshot.
// The zero value is ready to use; Parser is stateless and safe for
// concurrent use.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// frameKind classifies an entry on the open-construct stack.
type frameKind uint8

const (
	frameScope frameKind = iota // class/module: children become tree nodes
	frameBody                   // def, sig do, control flow: contents are opaque
)

// frame is one open construct awaiting its "end".
type frame struct {
	kind frameKind

	// node is the tree node this frame closes, or NoNode for
	// anonymous constructs (control flow inside a body).
	node rubyast.NodeID

	// wrapper is a decorator call node that closes together with
	// node ("memoize def x" closes both at the same "end").
	wrapper rubyast.NodeID
}

// Parse converts raw Ruby bytes into a fully-populated FileSnapshot.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*rubyast.FileSnapshot, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("parse cancelled: %w", ctx.Err())
	default:
	}

	snapshot := rubyast.NewFileSnapshot(path, content)
	snapshot.Typed = scanTypedLevel(snapshot)

	tree := rubyast.NewTree(len(content))
	snapshot.Tree = tree

	st := &scanState{
		snapshot: snapshot,
		tree:     tree,
		stack:    []frame{{kind: frameScope, node: tree.Root()}},
	}

	for lineNum := 1; lineNum <= snapshot.LineCount(); lineNum++ {
		st.scanLine(lineNum)
	}

	// Unclosed constructs (truncated input) close at end of file.
	for len(st.stack) > 1 {
		st.closeFrame(len(content))
	}

	return snapshot, nil
}

// scanState carries the parser's per-file state.
type scanState struct {
	snapshot *rubyast.FileSnapshot
	tree     *rubyast.Tree
	stack    []frame
}

// top returns the innermost open frame.
func (st *scanState) top() frame {
	return st.stack[len(st.stack)-1]
}

// container returns the node new children attach to.
func (st *scanState) container() rubyast.NodeID {
	return st.top().node
}

// push opens a frame.
func (st *scanState) push(f frame) {
	st.stack = append(st.stack, f)
}

// closeFrame pops the innermost frame and seals its node ranges at
// the given end offset.
func (st *scanState) closeFrame(end int) {
	f := st.top()
	st.stack = st.stack[:len(st.stack)-1]

	if f.node != rubyast.NoNode {
		st.tree.Node(f.node).Range.EndOffset = end
	}
	if f.wrapper != rubyast.NoNode {
		st.tree.Node(f.wrapper).Range.EndOffset = end
	}
}

// scanLine processes one 1-based source line.
func (st *scanState) scanLine(lineNum int) {
	info := st.snapshot.Lines[lineNum-1]
	raw := string(st.snapshot.LineContent(lineNum))

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}

	indent := len(raw) - len(strings.TrimLeft(raw, " \t"))
	start := info.StartOffset + indent
	lineEnd := info.NewlineStart

	// "end" closes the innermost frame wherever it appears.
	if firstWord(trimmed) == "end" {
		st.closeFrame(start + len("end"))
		return
	}

	inBody := st.top().kind == frameBody

	if strings.HasPrefix(trimmed, "#") {
		if !inBody {
			st.tree.Append(st.container(), rubyast.Node{
				Kind:  rubyast.NodeComment,
				Range: rubyast.SourceRange{StartOffset: start, EndOffset: lineEnd},
			})
		}
		return
	}

	code := stripTrailingComment(trimmed)
	word := firstWord(code)

	// Inside an opaque body only opener bookkeeping matters.
	if inBody {
		if opensBlock(code, word) {
			st.push(frame{kind: frameBody, node: rubyast.NoNode, wrapper: rubyast.NoNode})
		}
		return
	}

	switch {
	case word == "class" || word == "module":
		kind := rubyast.NodeClass
		if word == "module" {
			kind = rubyast.NodeModule
		}
		id := st.tree.Append(st.container(), rubyast.Node{
			Kind:  kind,
			Name:  scopeName(code),
			Range: rubyast.SourceRange{StartOffset: start, EndOffset: lineEnd},
		})
		st.push(frame{kind: frameScope, node: id, wrapper: rubyast.NoNode})

	case word == "def":
		st.scanDef(code, start, lineEnd, rubyast.NoNode)

	case word == "sig":
		st.scanSig(code, start, lineEnd)

	case word == "attr_reader" || word == "attr_writer" || word == "attr_accessor":
		st.tree.Append(st.container(), rubyast.Node{
			Kind:  rubyast.NodeAttrAccessor,
			Name:  word,
			Args:  callArgs(code[len(word):]),
			Range: rubyast.SourceRange{StartOffset: start, EndOffset: lineEnd},
		})

	case isDecoratedDef(code, word):
		// Decorator call wrapping a definition: "memoize def x",
		// "private def y". The call is the outermost form.
		wrapper := st.tree.Append(st.container(), rubyast.Node{
			Kind:  rubyast.NodeCall,
			Name:  word,
			Range: rubyast.SourceRange{StartOffset: start, EndOffset: lineEnd},
		})
		rest := strings.TrimSpace(code[len(word):])
		defStart := start + strings.Index(code, rest)
		st.stack = append(st.stack, frame{kind: frameScope, node: wrapper})
		st.scanDef(rest, defStart, lineEnd, wrapper)
		// scanDef either pushed a body frame carrying the wrapper or
		// closed a one-liner; either way the temporary scope frame
		// must not stay behind.
		st.removeFrameFor(wrapper)

	case opensBlock(code, word):
		// Control flow at scope level (if/begin/... or a trailing
		// "do"): opaque, no node.
		st.push(frame{kind: frameBody, node: rubyast.NoNode, wrapper: rubyast.NoNode})

	default:
		// Any other statement is recorded as a generic call node so
		// sibling navigation sees it.
		st.tree.Append(st.container(), rubyast.Node{
			Kind:  rubyast.NodeCall,
			Name:  word,
			Args:  callArgs(code[len(word):]),
			Range: rubyast.SourceRange{StartOffset: start, EndOffset: lineEnd},
		})
	}
}

// scanDef handles a "def ..." statement beginning at start. wrapper,
// when valid, is the decorator call node that must close with the def.
func (st *scanState) scanDef(code string, start, lineEnd int, wrapper rubyast.NodeID) {
	name, receiver, params := parseDefClause(code)

	kind := rubyast.NodeMethodDef
	if receiver != "" {
		kind = rubyast.NodeSingletonMethodDef
	}

	id := st.tree.Append(st.container(), rubyast.Node{
		Kind:     kind,
		Name:     name,
		Receiver: receiver,
		Params:   params,
		Range:    rubyast.SourceRange{StartOffset: start, EndOffset: lineEnd},
	})

	if isEndlessDef(code) {
		// Ruby 3 endless method: no matching "end".
		if wrapper != rubyast.NoNode {
			st.tree.Node(wrapper).Range.EndOffset = lineEnd
		}
		return
	}

	st.push(frame{kind: frameBody, node: id, wrapper: wrapper})
}

// scanSig handles a "sig ..." statement.
func (st *scanState) scanSig(code string, start, lineEnd int) {
	id := st.tree.Append(st.container(), rubyast.Node{
		Kind:  rubyast.NodeSig,
		Name:  "sig",
		Range: rubyast.SourceRange{StartOffset: start, EndOffset: lineEnd},
	})

	// Brace form is complete on one line; do-form runs to "end".
	if strings.Contains(code, "{") {
		return
	}
	if strings.HasSuffix(code, "do") || strings.Contains(code, " do ") {
		st.push(frame{kind: frameBody, node: id, wrapper: rubyast.NoNode})
	}
}

// removeFrameFor drops the temporary scope frame created for a
// decorator wrapper, wherever it now sits on the stack.
func (st *scanState) removeFrameFor(wrapper rubyast.NodeID) {
	for i := len(st.stack) - 1; i > 0; i-- {
		if st.stack[i].kind == frameScope && st.stack[i].node == wrapper {
			st.stack = append(st.stack[:i], st.stack[i+1:]...)
			return
		}
	}
}

// firstWord returns the leading identifier or keyword of a trimmed line.
func firstWord(s string) string {
	for i := range len(s) {
		c := s[i]
		if c == '_' || c == '?' || c == '!' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			continue
		}
		return s[:i]
	}
	return s
}

// stripTrailingComment removes an unquoted trailing comment.
func stripTrailingComment(s string) string {
	inSingle, inDouble := false, false
	for i := range len(s) {
		switch s[i] {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '#':
			if !inSingle && !inDouble {
				return strings.TrimSpace(s[:i])
			}
		}
	}
	return s
}

// blockKeywords open a construct closed by "end" when they lead a line.
var blockKeywords = map[string]bool{
	"if":     true,
	"unless": true,
	"while":  true,
	"until":  true,
	"case":   true,
	"begin":  true,
	"for":    true,
	"def":    true,
	"class":  true,
	"module": true,
}

// opensBlock reports whether the code line opens an end-terminated
// construct: a leading block keyword or a trailing "do" block.
func opensBlock(code, word string) bool {
	if blockKeywords[word] {
		return !(word == "def" && isEndlessDef(code))
	}
	if strings.HasSuffix(code, " do") || code == "do" {
		return true
	}
	// "do |x|" block argument form.
	if idx := strings.LastIndex(code, " do |"); idx >= 0 && strings.HasSuffix(code, "|") {
		return true
	}
	return false
}

// isDecoratedDef reports the "wrapper def name" decorator-call shape.
func isDecoratedDef(code, word string) bool {
	if word == "" || blockKeywords[word] {
		return false
	}
	rest := strings.TrimSpace(code[len(word):])
	return strings.HasPrefix(rest, "def ")
}

// scopeName extracts the constant path from "class Foo < Bar" or
// "module Foo::Baz".
func scopeName(code string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(code, "class"), "module"))
	if idx := strings.IndexAny(rest, " <;"); idx >= 0 {
		return rest[:idx]
	}
	return rest
}

// callArgs splits the argument text of a bare call into trimmed
// top-level pieces, with symbol colons removed (":foo" -> "foo").
func callArgs(rest string) []string {
	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, "(")
	rest = strings.TrimSuffix(rest, ")")
	if rest == "" {
		return nil
	}

	var args []string
	for _, piece := range splitTopLevel(rest) {
		piece = strings.TrimSpace(piece)
		piece = strings.TrimPrefix(piece, ":")
		if piece != "" {
			args = append(args, piece)
		}
	}
	return args
}
