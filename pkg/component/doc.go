// Package component provides the keyed component tree and its update protocol.
//
// This package defines the foundational types for component-level bookkeeping:
// Component, Node, Props, and State. A component owns mutable state, exposes
// lifecycle hooks around updates, and maintains a keyed collection of child
// components forming a tree. Rendering itself is an external concern: the
// framework only decides WHEN to render and in WHAT ORDER hooks fire around
// the render call.
//
// # Core Types
//
// Component is the interface every tree node implements. Concrete components
// embed Node to get the tree bookkeeping and default hook implementations,
// and supply Render themselves.
//
// Node is the embeddable base. It holds the node's key, props, state, child
// list, and parent back-reference, and drives the update protocol.
//
// # Defining a component
//
// Embed Node, call Init in your constructor, and implement Render:
//
//	type Counter struct {
//	    component.Node
//	    output io.Writer
//	}
//
//	func NewCounter(key string, props component.Props) *Counter {
//	    c := &Counter{output: os.Stdout}
//	    c.Init(c, key, props)
//	    return c
//	}
//
//	func (c *Counter) Render(forced bool) {
//	    fmt.Fprintf(c.output, "count=%v\n", c.State()["count"])
//	}
//
// # State Updates
//
// SetState shallow-merges partial state and runs the update protocol: the
// ShouldUpdate gate decides whether WillUpdate, Render, and DidUpdate fire,
// but the merged state is committed either way. Everything is synchronous;
// there is no queuing or batching across calls.
//
//	c.SetState(component.State{"count": 1}, nil)
//
// # Constructor Conventions
//
// Concrete components use NewX() constructors returning pointers that call
// Init before the component is handed to anyone else. A Node that was never
// wired through Init cannot render and faults fatally if asked to.
package component
