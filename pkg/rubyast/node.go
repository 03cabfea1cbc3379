package rubyast

//go:generate stringer -type=NodeKind -trimprefix=Node

// NodeKind classifies the type of an AST node.
type NodeKind uint8

// Node kinds for the Ruby subset siglint understands.
const (
	// NodeSource is the root node covering the whole file.
	NodeSource NodeKind = iota

	// Scope-forming nodes.
	NodeClass
	NodeModule

	// Definition nodes.
	NodeMethodDef          // def name(...)
	NodeSingletonMethodDef // def self.name(...)
	NodeAttrAccessor       // attr_reader / attr_writer / attr_accessor

	// NodeSig is a Sorbet signature block, either brace or do..end form.
	NodeSig

	// NodeCall is a bare method call statement (e.g. "extend T::Sig"),
	// or a decorator call wrapping a definition ("memoize def x").
	NodeCall

	// NodeComment is a standalone comment line.
	NodeComment
)

// ParamKind classifies a method parameter.
type ParamKind uint8

const (
	ParamPositional ParamKind = iota
	ParamKeyword
	ParamRest
	ParamBlock
	ParamDestructured
)

// Param describes a single method parameter.
// Destructured parameter groups are flattened to their leaf names
// during parsing, one Param per leaf.
type Param struct {
	Name string
	Kind ParamKind
}

// NodeID addresses a node within a Tree's arena.
// NoNode marks an absent node (no parent, no sibling).
type NodeID int32

// NoNode is the invalid node ID.
const NoNode NodeID = -1

// Node is a single node in the syntax tree. Nodes are stored in a
// Tree arena and reference relatives by ID rather than by pointer.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Parent is the ID of the parent node, or NoNode for the root.
	Parent NodeID

	// Children holds the IDs of direct children in document order.
	Children []NodeID

	// Range is the byte range this node covers in the source.
	Range SourceRange

	// Name is the declared name: method name for defs, constant path
	// for classes and modules, callee name for calls.
	Name string

	// Receiver is the call receiver, if any ("self" for singleton
	// defs, "T::Sig" is an argument rather than a receiver).
	Receiver string

	// Args holds raw call arguments for NodeCall and NodeAttrAccessor
	// (e.g. "T::Sig", ":reader_name").
	Args []string

	// Params holds declared parameters for method definitions.
	Params []Param
}

// IsScope returns true for class-like and module-like nodes.
func (n *Node) IsScope() bool {
	return n.Kind == NodeClass || n.Kind == NodeModule
}

// IsMethodDef returns true for plain and singleton method definitions.
func (n *Node) IsMethodDef() bool {
	return n.Kind == NodeMethodDef || n.Kind == NodeSingletonMethodDef
}

// Tree is an arena of nodes. Node 0 is always the NodeSource root.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree containing only a root node spanning the
// given content length.
func NewTree(contentLen int) *Tree {
	t := &Tree{}
	t.nodes = append(t.nodes, Node{
		Kind:   NodeSource,
		Parent: NoNode,
		Range:  SourceRange{StartOffset: 0, EndOffset: contentLen},
	})
	return t
}

// Root returns the ID of the root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Node returns the node for the given ID. The returned pointer stays
// valid for the lifetime of the tree; IDs never move inside the arena.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Append adds a node as the last child of parent and returns its ID.
func (t *Tree) Append(parent NodeID, n Node) NodeID {
	n.Parent = parent
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	if p := t.Node(parent); p != nil {
		p.Children = append(p.Children, id)
	}
	return id
}

// childIndex returns the position of id within its parent's child
// list, or -1 if the node is the root or detached.
func (t *Tree) childIndex(id NodeID) int {
	n := t.Node(id)
	if n == nil || n.Parent == NoNode {
		return -1
	}
	for i, c := range t.Node(n.Parent).Children {
		if c == id {
			return i
		}
	}
	return -1
}

// PrevSibling returns the previous sibling of id, or NoNode.
func (t *Tree) PrevSibling(id NodeID) NodeID {
	idx := t.childIndex(id)
	if idx <= 0 {
		return NoNode
	}
	return t.Node(t.Node(id).Parent).Children[idx-1]
}

// NextSibling returns the next sibling of id, or NoNode.
func (t *Tree) NextSibling(id NodeID) NodeID {
	idx := t.childIndex(id)
	if idx < 0 {
		return NoNode
	}
	siblings := t.Node(t.Node(id).Parent).Children
	if idx+1 >= len(siblings) {
		return NoNode
	}
	return siblings[idx+1]
}

// EnclosingScope returns the nearest class or module ancestor of id,
// or NoNode when the node sits at top level.
func (t *Tree) EnclosingScope(id NodeID) NodeID {
	n := t.Node(id)
	if n == nil {
		return NoNode
	}
	for p := n.Parent; p != NoNode; p = t.Node(p).Parent {
		if t.Node(p).IsScope() {
			return p
		}
	}
	return NoNode
}
