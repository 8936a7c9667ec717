package component

import "maps"

// Props is the configuration handed to a component by its owner. A component
// treats its own props as read-only; only an external owner replaces them,
// and no prop-update entry point exists in this package.
type Props map[string]any

// State is a component's private mutable state. It is advanced only through
// the SetState protocol and is never nil after Init.
type State map[string]any

// merge returns a fresh map holding the shallow merge of s and partial:
// keys in partial override, all other keys of s are retained. Neither input
// is mutated and nested values are not recursed into.
func (s State) merge(partial State) State {
	next := make(State, len(s)+len(partial))
	maps.Copy(next, s)
	maps.Copy(next, partial)
	return next
}

// StateCallback is invoked after a SetState commit with the state that was
// replaced and the component's current props.
type StateCallback func(prev State, props Props)

// Component is implemented by every node in the tree. Concrete components
// embed [Node], which supplies everything except Render: rendering is the
// one capability this package invokes but never defines.
//
// ShouldUpdate, WillUpdate, and DidUpdate are extension points of the update
// protocol. Node provides their defaults (gate always true, hooks no-op);
// override them on the embedding type to customize update behavior.
type Component interface {
	// Base returns the embedded Node, giving the framework access to the
	// tree bookkeeping regardless of the concrete component type.
	Base() *Node

	// Key identifies this component among its siblings. Stable for the
	// component's lifetime.
	Key() string

	// Render produces or patches the component's external representation.
	// forced reports that the call bypassed the ShouldUpdate gate. The
	// rendering mechanism is entirely the implementer's concern; this
	// package only guarantees when Render is called relative to the hooks
	// and the state commit.
	Render(forced bool)

	// ShouldUpdate gates the update protocol: it receives the current props
	// and the prospective merged state, and returns whether WillUpdate,
	// Render, and DidUpdate should fire for this update.
	ShouldUpdate(props Props, next State) bool

	// WillUpdate runs immediately before Render when an update passes the
	// gate, with the current props and the prospective merged state.
	WillUpdate(props Props, next State)

	// DidUpdate runs immediately after Render when an update passes the
	// gate, with the current props and the state that is being replaced.
	DidUpdate(props Props, prev State)
}
