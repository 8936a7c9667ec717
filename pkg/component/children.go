package component

import "slices"

// Children returns the node's child list in render order. Callers must not
// mutate the returned slice; the child-management operations below are the
// only supported mutation path, and they are what keep the keyed invariants
// intact.
func (n *Node) Children() []Component { return n.children }

// AddChild inserts child into the child list, deduplicating by key. If no
// existing child shares child's key, it is appended, preserving insertion
// order. If one does, child replaces it at the same position. Either way the
// child's parent is pointed at this node and at most one child with the key
// remains. A nil child is ignored.
func (n *Node) AddChild(child Component) {
	if child == nil {
		return
	}
	i := slices.IndexFunc(n.children, func(c Component) bool {
		return c.Key() == child.Key()
	})
	if i < 0 {
		n.children = append(n.children, child)
	} else {
		n.children[i].Base().SetParent(nil)
		n.children[i] = child
	}
	child.Base().SetParent(n.self)
}

// AddChildren applies AddChild to each child in order. There is no batching
// and no atomicity; it is exactly equivalent to repeated single calls.
func (n *Node) AddChildren(children ...Component) {
	for _, child := range children {
		n.AddChild(child)
	}
}

// RemoveChild removes child from the child list, matching by its key.
// Remaining children keep their relative order. A nil child, or one whose
// key is not present, is ignored.
func (n *Node) RemoveChild(child Component) {
	if child == nil {
		return
	}
	n.RemoveChildByKey(child.Key())
}

// RemoveChildByKey removes the child with the given key, if present, and
// clears its parent back-reference. Remaining children keep their relative
// order. An absent key is ignored.
func (n *Node) RemoveChildByKey(key string) {
	i := slices.IndexFunc(n.children, func(c Component) bool {
		return c.Key() == key
	})
	if i < 0 {
		return
	}
	n.children[i].Base().SetParent(nil)
	n.children = slices.Delete(n.children, i, i+1)
}

// RemoveChildren empties the child list, clearing each removed child's
// parent back-reference so no orphan holds a dangling pointer.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Base().SetParent(nil)
	}
	n.children = nil
}

// ChildByKey returns the child with the given key, if present.
func (n *Node) ChildByKey(key string) (Component, bool) {
	i := slices.IndexFunc(n.children, func(c Component) bool {
		return c.Key() == key
	})
	if i < 0 {
		return nil, false
	}
	return n.children[i], true
}

// VisitChildren calls visitor on each child in order. The visitor returns
// false to stop early.
func (n *Node) VisitChildren(visitor func(Component) bool) {
	for _, child := range n.children {
		if !visitor(child) {
			return
		}
	}
}

// FindAncestor walks the parent chain looking for a component satisfying
// predicate, returning nil when the chain is exhausted.
func (n *Node) FindAncestor(predicate func(Component) bool) Component {
	current := n.parent
	for current != nil {
		if predicate(current) {
			return current
		}
		current = current.Base().Parent()
	}
	return nil
}

// Depth returns the node's distance from the root of its tree: zero for a
// root, one for its direct children, and so on.
func (n *Node) Depth() int {
	depth := 0
	current := n.parent
	for current != nil {
		depth++
		current = current.Base().Parent()
	}
	return depth
}
