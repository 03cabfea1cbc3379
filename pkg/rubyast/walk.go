package rubyast

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(id NodeID, n *Node) error

// Walk performs a pre-order traversal of the tree starting at id.
// The callback is called for each node. If it returns a non-nil
// error, the walk stops immediately and returns that error.
func (t *Tree) Walk(id NodeID, fn WalkFunc) error {
	n := t.Node(id)
	if n == nil {
		return nil
	}

	if err := fn(id, n); err != nil {
		return err
	}

	for _, child := range n.Children {
		if err := t.Walk(child, fn); err != nil {
			return err
		}
	}

	return nil
}

// FindAll returns all node IDs matching the predicate, in document order.
func (t *Tree) FindAll(predicate func(n *Node) bool) []NodeID {
	var result []NodeID

	//nolint:errcheck // Walk only returns nil errors in this usage
	t.Walk(t.Root(), func(id NodeID, n *Node) error {
		if predicate(n) {
			result = append(result, id)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node ID matching the predicate, or NoNode.
func (t *Tree) FindFirst(predicate func(n *Node) bool) NodeID {
	found := NoNode

	//nolint:errcheck // errStopWalk is expected and intentionally ignored
	t.Walk(t.Root(), func(id NodeID, n *Node) error {
		if predicate(n) {
			found = id
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByKind returns all node IDs of the specified kind.
func (t *Tree) FindByKind(kind NodeKind) []NodeID {
	return t.FindAll(func(n *Node) bool {
		return n.Kind == kind
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
