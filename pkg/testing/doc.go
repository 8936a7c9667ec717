// Package testing provides test doubles for exercising the component
// update protocol without a real renderer.
//
// RecordingComponent is a component whose gate, hooks, and Render feed an
// ordered event log, so tests can assert exactly which protocol steps fired
// and in what order:
//
//	c := comptest.NewRecordingComponent("root", nil)
//	c.SetState(component.State{"count": 1}, nil)
//	events := c.Rec.Events()
//	// ["shouldUpdate", "willUpdate", "render(forced=true)", "didUpdate"]
//
// Import under a distinct name to avoid clashing with the standard library:
//
//	import comptest "github.com/go-frond/frond/pkg/testing"
package testing
