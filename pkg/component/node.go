package component

import (
	"time"

	"github.com/go-frond/frond/pkg/errors"
)

// Node is the embeddable base for components. It owns the tree bookkeeping
// (key, props, state, children, parent) and drives the update protocol.
// Embed it in your component struct and call Init from your constructor:
//
//	type Badge struct {
//	    component.Node
//	}
//
//	func NewBadge(key string, props component.Props) *Badge {
//	    b := &Badge{}
//	    b.Init(b, key, props)
//	    return b
//	}
//
//	func (b *Badge) Render(forced bool) { ... }
//
// Node supplies defaults for every Component method except Render, which the
// embedding type must implement itself.
type Node struct {
	self     Component
	key      string
	props    Props
	state    State
	children []Component
	parent   Component
}

// Init wires the embedding component to its base and establishes the node's
// identity. self must be the embedding component itself; it is how the base
// dispatches overridden hooks and Render on the concrete type. key is fixed
// for the node's lifetime. Initial children pass through the same keyed
// dedup path as AddChild.
func (n *Node) Init(self Component, key string, props Props, children ...Component) {
	n.self = self
	n.key = key
	n.props = props
	n.state = State{}
	n.AddChildren(children...)
}

// Base returns the node itself, satisfying Component for embedding types.
func (n *Node) Base() *Node { return n }

// Key returns the node's identifying key.
func (n *Node) Key() string { return n.key }

// Props returns the configuration supplied at construction.
func (n *Node) Props() Props { return n.props }

// State returns the node's current state. Callers must treat the returned
// map as read-only; state advances only through SetState.
func (n *Node) State() State { return n.state }

// Parent returns the component currently holding this node in its child
// list, or nil for a root. The reference is non-owning: a node's lifetime
// belongs to whichever parent holds it, never to the node via this pointer.
func (n *Node) Parent() Component { return n.parent }

// SetParent replaces the parent back-reference. Normally maintained by the
// child-management operations; exposed for owners that adopt nodes directly.
func (n *Node) SetParent(parent Component) { n.parent = parent }

// SetState shallow-merges partial into the node's state and runs the update
// protocol. The merged candidate is offered to the ShouldUpdate gate:
//
//   - gate true: WillUpdate, then Render in forced mode, then DidUpdate,
//     strictly in that order within this call.
//   - gate false: none of the three fire.
//
// In both cases the candidate is then committed as the node's state, so
// state always advances even when no render occurs, and done (if non-nil)
// is invoked with the replaced state and the current props. At most one
// render happens per call.
func (n *Node) SetState(partial State, done StateCallback) {
	self := n.mustSelf("component.SetState")
	prev := n.state
	next := prev.merge(partial)
	if self.ShouldUpdate(n.props, next) {
		self.WillUpdate(n.props, next)
		n.ForceUpdate()
		self.DidUpdate(n.props, prev)
	}
	n.state = next
	if done != nil {
		done(prev, n.props)
	}
}

// ForceUpdate invokes Render in forced mode directly, bypassing the gate and
// both hooks. Use it when a repaint is required regardless of state or props.
func (n *Node) ForceUpdate() {
	n.mustSelf("component.ForceUpdate").Render(true)
}

// mustSelf returns the component wired by Init. A node that was never wired
// has no component to dispatch hooks or Render on; that is a contract
// violation and faults fatally.
func (n *Node) mustSelf(op string) Component {
	if n.self == nil {
		panic(&errors.RenderError{
			Component: n.key,
			Op:        op,
			Timestamp: time.Now(),
		})
	}
	return n.self
}

// ShouldUpdate is the default gate: always update. State may be mutated in
// place by callers, so re-rendering unconditionally is the safe default.
// Components that keep props and state immutable can override this and
// compare next against the current values with whatever equality suits them.
func (n *Node) ShouldUpdate(props Props, next State) bool { return true }

// WillUpdate is a no-op default. Override to observe an update before it
// renders; next is the state about to be committed.
func (n *Node) WillUpdate(props Props, next State) {}

// DidUpdate is a no-op default. Override to observe an update after it
// renders; prev is the state being replaced.
func (n *Node) DidUpdate(props Props, prev State) {}
