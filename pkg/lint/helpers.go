package lint

import (
	"github.com/yaklabco/siglint/pkg/rubyast"
)

// Shape predicates over the closed node-kind enum. These replace the
// declarative pattern sublanguage of other linters with plain checks:
// kind tests plus structural guards, no dynamic dispatch.

// IsSignable returns true for nodes a signature can precede: plain
// defs, singleton defs, and attr-accessor declaration calls.
func IsSignable(n *rubyast.Node) bool {
	if n == nil {
		return false
	}
	return n.IsMethodDef() || n.Kind == rubyast.NodeAttrAccessor
}

// IsSigBlock returns true for Sorbet signature blocks.
func IsSigBlock(n *rubyast.Node) bool {
	return n != nil && n.Kind == rubyast.NodeSig
}

// DecoratedNode returns the node a signature must precede: if the
// definition is the argument to a wrapping call (a decorator such as
// "memoize def x"), the wrapping call is the outermost syntactic form
// and signatures go above it. Otherwise the definition itself.
func DecoratedNode(tree *rubyast.Tree, id rubyast.NodeID) rubyast.NodeID {
	n := tree.Node(id)
	if n == nil || n.Parent == rubyast.NoNode {
		return id
	}
	parent := tree.Node(n.Parent)
	if parent.Kind == rubyast.NodeCall && len(parent.Children) == 1 {
		return n.Parent
	}
	return id
}

// ExtendsTSig reports whether the scope node has an "extend T::Sig"
// statement among its direct children.
func ExtendsTSig(tree *rubyast.Tree, scope rubyast.NodeID) bool {
	s := tree.Node(scope)
	if s == nil {
		return false
	}
	for _, child := range s.Children {
		c := tree.Node(child)
		if c.Kind != rubyast.NodeCall || c.Name != "extend" {
			continue
		}
		for _, arg := range c.Args {
			if arg == "T::Sig" {
				return true
			}
		}
	}
	return false
}

// PrecededBySig reports whether the node's preceding sibling is a
// signature block. Comment siblings are looked through: a sig merely
// separated from its method by stray comments still belongs to it
// (that separation is a different offense).
func PrecededBySig(tree *rubyast.Tree, id rubyast.NodeID) bool {
	prev := tree.PrevSibling(id)
	for prev != rubyast.NoNode && tree.Node(prev).Kind == rubyast.NodeComment {
		prev = tree.PrevSibling(prev)
	}
	if prev == rubyast.NoNode {
		return false
	}
	return IsSigBlock(tree.Node(prev))
}

// IndentColumn returns the zero-based column at which the node
// starts on its line, used as the indentation width for synthesized
// text placed above it.
func IndentColumn(file *rubyast.FileSnapshot, id rubyast.NodeID) int {
	r := file.NodeRange(id)
	return r.StartOffset - file.LineStart(r.StartOffset)
}

// MethodDisplayName returns the name a diagnostic message should use
// for a signable node: the method name for defs, the first declared
// attribute for accessor calls.
func MethodDisplayName(n *rubyast.Node) string {
	if n == nil {
		return ""
	}
	if n.Kind == rubyast.NodeAttrAccessor && len(n.Args) > 0 {
		return n.Args[0]
	}
	return n.Name
}
